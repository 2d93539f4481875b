package get_slot_occupants

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

type OccupancyService interface {
	GetSlotOccupants(ctx context.Context, resourceID int64, date time.Time, startTime types.TimeString) ([]domain.SlotOccupant, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
