package create_tier

import (
	"context"

	"github.com/m04kA/SMC-GroupBookingService/internal/service/tiers/models"
)

type TierService interface {
	Create(ctx context.Context, req *models.CreateTierRequest) (*models.TierResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
