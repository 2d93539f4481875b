package tiers

import (
	"fmt"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/tiers/models"
)

// validateCreateRequest проверяет диапазон, цену и скидку уровня
// Хранилище не валидирует данные, поэтому все проверки здесь
func validateCreateRequest(req *models.CreateTierRequest) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceId must be positive", ErrInvalidInput)
	}

	if req.MinQuantity < domain.MinPartySize {
		return fmt.Errorf("%w: minQuantity must be at least %d", ErrInvalidInput, domain.MinPartySize)
	}

	if req.MaxQuantity < req.MinQuantity {
		return fmt.Errorf("%w: maxQuantity must not be less than minQuantity", ErrInvalidInput)
	}

	if req.MaxQuantity > domain.MaxTierQuantity {
		return fmt.Errorf("%w: maxQuantity must not exceed %d", ErrInvalidInput, domain.MaxTierQuantity)
	}

	if !domain.PriceType(req.PriceType).IsValid() {
		return fmt.Errorf("%w: unknown priceType %q", ErrInvalidInput, req.PriceType)
	}

	if !domain.IsValidAmount(req.Price) {
		return fmt.Errorf("%w: price must be between 0 and %.2f", ErrInvalidInput, domain.MaxMoneyAmount)
	}

	// Скидка задается парой type+value
	if (req.DiscountType == nil) != (req.DiscountValue == nil) {
		return fmt.Errorf("%w: discountType and discountValue must be set together", ErrInvalidInput)
	}

	if req.DiscountType != nil {
		discountType := domain.DiscountType(*req.DiscountType)
		if !discountType.IsValid() {
			return fmt.Errorf("%w: unknown discountType %q", ErrInvalidInput, *req.DiscountType)
		}
		if !domain.IsValidAmount(*req.DiscountValue) {
			return fmt.Errorf("%w: discountValue must be between 0 and %.2f", ErrInvalidInput, domain.MaxMoneyAmount)
		}
		if discountType == domain.DiscountPercentage && *req.DiscountValue > domain.MaxPercentageDiscount {
			return fmt.Errorf("%w: percentage discount must not exceed %d", ErrInvalidInput, domain.MaxPercentageDiscount)
		}
	}

	return nil
}
