package get_slot_occupants

import (
	"time"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

// OccupantsResponse HTTP response model
type OccupantsResponse struct {
	ResourceID    int64      `json:"resourceId"`
	Date          string     `json:"date"`
	StartTime     string     `json:"startTime"`
	TotalOccupied int        `json:"totalOccupied"`
	Occupants     []Occupant `json:"occupants"`
}

// Occupant бронирование, занимающее места в слоте
type Occupant struct {
	BookingID int64  `json:"bookingId"`
	UserID    int64  `json:"userId"`
	Quantity  int    `json:"quantity"`
	Status    string `json:"status"`
}

// FromDomainOccupants конвертирует занятость слота в HTTP response
func FromDomainOccupants(resourceID int64, date time.Time, startTime types.TimeString, occupants []domain.SlotOccupant) *OccupantsResponse {
	resp := &OccupantsResponse{
		ResourceID: resourceID,
		Date:       date.Format(domain.DateFormat),
		StartTime:  startTime.String(),
		Occupants:  make([]Occupant, 0, len(occupants)),
	}
	for _, o := range occupants {
		resp.Occupants = append(resp.Occupants, Occupant{
			BookingID: o.BookingID,
			UserID:    o.UserID,
			Quantity:  o.Quantity,
			Status:    string(o.Status),
		})
		resp.TotalOccupied += o.Quantity
	}
	return resp
}
