package holdexpiry

import (
	"context"
	"time"
)

// HoldRepository переводит просроченные удержания в статус expired
type HoldRepository interface {
	ExpireHolds(ctx context.Context, now time.Time, limit int) (int64, error)
}

// MetricsRecorder учет освобожденных удержаний
type MetricsRecorder interface {
	HoldsExpired(count int)
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
