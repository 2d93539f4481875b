package delete_tier

import "context"

type TierService interface {
	Delete(ctx context.Context, tierID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
