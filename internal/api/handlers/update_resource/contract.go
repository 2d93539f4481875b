package update_resource

import (
	"context"

	"github.com/m04kA/SMC-GroupBookingService/internal/service/resources/models"
)

type ResourceService interface {
	Upsert(ctx context.Context, req *models.UpsertResourceRequest) (*models.ResourceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
