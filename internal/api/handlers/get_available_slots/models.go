package get_available_slots

import (
	"encoding/json"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-GroupBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ResourceID int64          `json:"resourceId"`
	Quantity   int            `json:"quantity"`
	From       string         `json:"from"`
	To         string         `json:"to"`
	Days       []AvailableDay `json:"days"`
}

// AvailableDay слоты одной даты в порядке расписания
type AvailableDay struct {
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime      string          `json:"startTime"`
	AvailableSpots int             `json:"availableSpots"`
	Data           json.RawMessage `json:"data,omitempty"` // данные слота из сервиса расписания, без изменений
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	days := make([]AvailableDay, 0, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]AvailableSlot, len(day.Slots))
		for i, slot := range day.Slots {
			slots[i] = AvailableSlot{
				StartTime:      slot.Time.String(),
				AvailableSpots: slot.Remaining,
				Data:           slot.Payload,
			}
		}
		days = append(days, AvailableDay{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: slots,
		})
	}

	return &AvailableSlotsResponse{
		ResourceID: resp.ResourceID,
		Quantity:   resp.Quantity,
		From:       resp.From.Format(domain.DateFormat),
		To:         resp.To.Format(domain.DateFormat),
		Days:       days,
	}
}
