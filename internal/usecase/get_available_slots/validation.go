package get_available_slots

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

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	from, to := civilDate(req.From), civilDate(req.To)
	if to.Before(from) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	// Период включает обе границы
	if days := int(to.Sub(from).Hours()/24) + 1; days > domain.MaxSlotsRangeDays {
		return fmt.Errorf("%w: %d days requested, at most %d allowed", ErrRangeTooLong, days, domain.MaxSlotsRangeDays)
	}

	return nil
}
