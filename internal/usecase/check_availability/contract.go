package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

// ResourceResolver настройки ресурса с учетом глобальных значений
type ResourceResolver interface {
	Resource(ctx context.Context, resourceID int64) (*domain.ResourceConfig, error)
	Defaults() domain.GlobalDefaults
}

// SlotAvailability точечные запросы свободных мест в слоте
type SlotAvailability interface {
	GetMaxAvailable(ctx context.Context, resourceID int64, date time.Time, startTime types.TimeString) (int, error)
}

// MetricsRecorder бизнес-метрики решений о доступности
type MetricsRecorder interface {
	AvailabilityDecision(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
