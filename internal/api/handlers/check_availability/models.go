package check_availability

import (
	checkAvailability "github.com/m04kA/SMC-GroupBookingService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available    bool   `json:"available"`
	MaxAvailable int    `json:"maxAvailable"`
	Reason       string `json:"reason"`
	Message      string `json:"message,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:    resp.Available,
		MaxAvailable: resp.MaxAvailable,
		Reason:       string(resp.Reason),
		Message:      resp.Message,
	}
}
