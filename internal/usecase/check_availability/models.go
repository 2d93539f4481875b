package check_availability

import (
	"time"

	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

// Reason причина решения о доступности
type Reason string

const (
	ReasonAvailable      Reason = "available"
	ReasonBelowMinimum   Reason = "below_minimum"
	ReasonAboveMaximum   Reason = "above_maximum"
	ReasonAboveCapacity  Reason = "above_capacity"
	ReasonNotEnoughSpots Reason = "not_enough_spots"
)

// Request модель запроса проверки доступности
// Date и Time задаются вместе; без них проверяется только размер группы
type Request struct {
	ResourceID int64
	Quantity   int
	Date       *time.Time
	Time       *types.TimeString
}

// HasSlot сообщает, что запрос относится к конкретному слоту
func (r *Request) HasSlot() bool {
	return r.Date != nil && r.Time != nil
}

// Response структурированный результат проверки
// Ошибки валидации размера группы возвращаются здесь, а не через error
type Response struct {
	Available    bool
	MaxAvailable int
	Reason       Reason
	Message      string
}
