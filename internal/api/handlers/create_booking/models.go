package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-GroupBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ResourceID  int64   `json:"resourceId"`
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	Quantity    int     `json:"quantity"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64              `json:"id"`
	ResourceID    int64              `json:"resourceId"`
	UserID        int64              `json:"userId"`
	BookingDate   string             `json:"bookingDate"`
	StartTime     string             `json:"startTime"`
	Quantity      int                `json:"quantity"`
	Status        string             `json:"status"`
	TotalPrice    float64            `json:"totalPrice"`
	Breakdown     []domain.PriceLine `json:"breakdown"`
	HoldExpiresAt *string            `json:"holdExpiresAt,omitempty"`
	Notes         *string            `json:"notes,omitempty"`
	CreatedAt     string             `json:"createdAt"`
	UpdatedAt     string             `json:"updatedAt"`
}

var (
	errInvalidDate = errors.New("invalid bookingDate")
	errInvalidTime = errors.New("invalid startTime")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createBooking.Request{
		UserID:     userID,
		ResourceID: r.ResourceID,
		Date:       bookingDate,
		StartTime:  startTime,
		Quantity:   r.Quantity,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	result := &BookingResponse{
		ID:          resp.ID,
		ResourceID:  resp.ResourceID,
		UserID:      resp.UserID,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		Quantity:    resp.Quantity,
		Status:      resp.Status,
		TotalPrice:  resp.TotalPrice,
		Breakdown:   resp.Breakdown,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
	if result.Breakdown == nil {
		result.Breakdown = []domain.PriceLine{}
	}
	if resp.HoldExpiresAt != nil {
		expires := resp.HoldExpiresAt.Format(time.RFC3339)
		result.HoldExpiresAt = &expires
	}
	return result
}
