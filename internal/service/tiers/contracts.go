package tiers

import (
	"context"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
)

// TierRepository интерфейс репозитория ценовых уровней
type TierRepository interface {
	Create(ctx context.Context, tier *domain.PricingTier) (*domain.PricingTier, error)
	GetByResource(ctx context.Context, resourceID int64) ([]*domain.PricingTier, error)
	Delete(ctx context.Context, tierID int64) (int64, error)
}

// ResourceRepository проверка существования ресурса
type ResourceRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// QuoteCache сброс закэшированных расчетов цены ресурса
type QuoteCache interface {
	Invalidate(ctx context.Context, resourceID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
