package resources

import (
	"context"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
)

// ResourceRepository интерфейс репозитория настроек ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ResourceConfig, error)
	Upsert(ctx context.Context, res *domain.ResourceConfig) (*domain.ResourceConfig, error)
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
