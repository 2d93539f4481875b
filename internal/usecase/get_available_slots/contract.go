package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
)

// ScheduleServiceClient источник открытых слотов ресурса
type ScheduleServiceClient interface {
	GetSlots(ctx context.Context, resourceID int64, from, to time.Time) (domain.SlotMap, error)
}

// CapacityFilter отбор слотов по вместимости
type CapacityFilter interface {
	FilterByCapacity(ctx context.Context, slots domain.SlotMap, resourceID int64, quantity int) (domain.SlotMap, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
