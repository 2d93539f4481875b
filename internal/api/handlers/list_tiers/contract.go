package list_tiers

import (
	"context"

	"github.com/m04kA/SMC-GroupBookingService/internal/service/tiers/models"
)

type TierService interface {
	List(ctx context.Context, resourceID int64) (*models.TierListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
