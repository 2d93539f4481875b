package resources

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/internal/service/resources/models"
)

const maxNameLength = 255

// validateUpsertRequest проверяет настройки ресурса с учетом глобальных значений
func (s *Service) validateUpsertRequest(req *models.UpsertResourceRequest) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceId must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, maxNameLength)
	}

	if !domain.IsValidAmount(req.BasePrice) {
		return fmt.Errorf("%w: basePrice must be between 0 and %.2f", ErrInvalidInput, domain.MaxMoneyAmount)
	}

	if req.Capacity != nil && *req.Capacity < domain.MinPartySize {
		return fmt.Errorf("%w: capacity must be at least %d", ErrInvalidInput, domain.MinPartySize)
	}

	if req.PricingMode != nil && !domain.PricingMode(*req.PricingMode).IsValid() {
		return fmt.Errorf("%w: unknown pricingMode %q", ErrInvalidInput, *req.PricingMode)
	}

	if req.MinPartySize != nil && *req.MinPartySize < domain.MinPartySize {
		return fmt.Errorf("%w: minPartySize must be at least %d", ErrInvalidInput, domain.MinPartySize)
	}
	if req.MaxPartySize != nil && *req.MaxPartySize < domain.MinPartySize {
		return fmt.Errorf("%w: maxPartySize must be at least %d", ErrInvalidInput, domain.MinPartySize)
	}

	// Итоговые границы проверяем после подстановки глобальных значений
	res := req.ToDomainResource()
	minSize := res.EffectiveMinPartySize(s.defaults)
	maxSize := res.EffectiveMaxPartySize(s.defaults)
	if minSize > maxSize {
		return fmt.Errorf("%w: minPartySize %d exceeds maxPartySize %d", ErrInvalidInput, minSize, maxSize)
	}
	if capacity := res.EffectiveCapacity(s.defaults); minSize > capacity {
		return fmt.Errorf("%w: minPartySize %d exceeds capacity %d", ErrInvalidInput, minSize, capacity)
	}

	if req.Discount != nil {
		if err := validateDiscount(req.Discount); err != nil {
			return err
		}
	}

	return nil
}

func validateDiscount(d *models.DiscountRequest) error {
	// Переопределение действует только при заданных enabled и minQuantity
	if (d.Enabled == nil) != (d.MinQuantity == nil) {
		return fmt.Errorf("%w: discount.enabled and discount.minQuantity must be set together", ErrInvalidInput)
	}

	if d.MinQuantity != nil && *d.MinQuantity < domain.MinPartySize {
		return fmt.Errorf("%w: discount.minQuantity must be at least %d", ErrInvalidInput, domain.MinPartySize)
	}

	discountType := domain.DiscountPercentage
	if d.Type != nil {
		discountType = domain.DiscountType(*d.Type)
		if !discountType.IsValid() {
			return fmt.Errorf("%w: unknown discount.type %q", ErrInvalidInput, *d.Type)
		}
	}

	if d.Value != nil {
		if !domain.IsValidAmount(*d.Value) {
			return fmt.Errorf("%w: discount.value must be between 0 and %.2f", ErrInvalidInput, domain.MaxMoneyAmount)
		}
		if discountType == domain.DiscountPercentage && *d.Value > domain.MaxPercentageDiscount {
			return fmt.Errorf("%w: percentage discount must not exceed %d", ErrInvalidInput, domain.MaxPercentageDiscount)
		}
	}

	return nil
}
