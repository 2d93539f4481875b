package pricing

import (
	"context"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
)

// TierFinder поиск ценового уровня для количества участников
type TierFinder interface {
	FindForQuantity(ctx context.Context, resourceID int64, quantity int) (*domain.PricingTier, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
