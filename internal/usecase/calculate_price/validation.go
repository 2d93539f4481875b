package calculate_price

import (
	"fmt"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/pricing"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.Quantity < domain.MinPartySize || req.Quantity > pricing.MaxQuantity {
		return fmt.Errorf("%w: quantity must be between %d and %d", ErrInvalidInput, domain.MinPartySize, pricing.MaxQuantity)
	}

	if req.BasePrice != nil && !domain.IsValidAmount(*req.BasePrice) {
		return fmt.Errorf("%w: basePrice must be a number between 0 and %.2f", ErrInvalidInput, domain.MaxMoneyAmount)
	}

	if req.Mode != nil && !req.Mode.IsValid() {
		return fmt.Errorf("%w: unknown pricing mode %q", ErrInvalidInput, *req.Mode)
	}

	return nil
}
