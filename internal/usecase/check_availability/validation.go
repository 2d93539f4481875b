package check_availability

import (
	"fmt"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.Quantity < domain.MinPartySize {
		return fmt.Errorf("%w: quantity must be at least %d", ErrInvalidInput, domain.MinPartySize)
	}

	if (req.Date == nil) != (req.Time == nil) {
		return fmt.Errorf("%w: date and time must be set together", ErrInvalidInput)
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time != nil {
		if err := req.Time.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
		}
	}

	return nil
}

// partySizeResponse формирует ответ для группы, не проходящей по ограничениям ресурса
func partySizeResponse(violation domain.PartySizeViolation, limits domain.PartySizeLimits, maxAvailable int) *Response {
	resp := &Response{MaxAvailable: maxAvailable}

	switch violation {
	case domain.PartySizeBelowMinimum:
		resp.Reason = ReasonBelowMinimum
		resp.Message = fmt.Sprintf("Минимальный размер группы: %d", limits.Min)
	case domain.PartySizeAboveMaximum:
		resp.Reason = ReasonAboveMaximum
		resp.Message = fmt.Sprintf("Максимальный размер группы: %d", limits.Max)
	case domain.PartySizeAboveCapacity:
		resp.Reason = ReasonAboveCapacity
		resp.Message = fmt.Sprintf("Вместимость слота: %d", limits.Capacity)
	}

	return resp
}
