package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/pricing"
	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	LockSlotOccupancy(ctx context.Context, resourceID int64, date time.Time, startTime types.TimeString, now time.Time) (int, error)
}

// ResourceResolver настройки ресурса с учетом глобальных значений
type ResourceResolver interface {
	Resource(ctx context.Context, resourceID int64) (*domain.ResourceConfig, error)
	Defaults() domain.GlobalDefaults
}

// AvailabilityChecker предварительная проверка мест без блокировок
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, resourceID int64, date time.Time, startTime types.TimeString, quantity int) (bool, error)
}

// PriceCalculator расчет цены бронирования
type PriceCalculator interface {
	GetPriceBreakdown(ctx context.Context, in pricing.Input) (*domain.PriceQuote, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder бизнес-метрики конфликтов бронирования
type MetricsRecorder interface {
	BookingConflict()
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
