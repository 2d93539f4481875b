package calculate_price

import (
	"context"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/internal/infra/cache/quote"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/pricing"
)

// ResourceResolver настройки ресурса с учетом глобальных значений
type ResourceResolver interface {
	Resource(ctx context.Context, resourceID int64) (*domain.ResourceConfig, error)
	Defaults() domain.GlobalDefaults
}

// PriceCalculator расчет цены с разбивкой
type PriceCalculator interface {
	GetPriceBreakdown(ctx context.Context, in pricing.Input) (*domain.PriceQuote, error)
}

// QuoteCache кэш рассчитанных цен
type QuoteCache interface {
	Get(ctx context.Context, key quote.Key) (*domain.PriceQuote, int64, error)
	Set(ctx context.Context, key quote.Key, version int64, q *domain.PriceQuote) error
}

// MetricsRecorder бизнес-метрики кэша цен
type MetricsRecorder interface {
	QuoteCache(hit bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
