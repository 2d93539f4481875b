package capacity

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

// ResourceRepository источник настроек ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ResourceConfig, error)
}

// OccupancyReader чтение занятости слотов из хранилища бронирований
type OccupancyReader interface {
	GetSlotOccupancy(ctx context.Context, resourceID int64, date time.Time, startTime types.TimeString, now time.Time) (int, error)
	GetOccupancyForDates(ctx context.Context, resourceID int64, dates []time.Time, now time.Time) (map[domain.SlotKey]int, error)
	GetSlotOccupants(ctx context.Context, resourceID int64, date time.Time, startTime types.TimeString, now time.Time) ([]domain.SlotOccupant, error)
}

// CapacityResolver определяет вместимость слота ресурса
type CapacityResolver interface {
	Capacity(ctx context.Context, resourceID int64) (int, error)
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
