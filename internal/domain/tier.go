package domain

import "time"

// PriceType defines how a tier price is applied
type PriceType string

const (
	PriceTypePerPerson PriceType = "per_person"
	PriceTypeFlat      PriceType = "flat"
)

// IsValid reports whether the price type is supported
func (t PriceType) IsValid() bool {
	return t == PriceTypePerPerson || t == PriceTypeFlat
}

// PricingTier is a quantity-range specific price rule of a resource.
// Tiers are never updated in place: delete and create a new one instead.
type PricingTier struct {
	ID            int64
	ResourceID    int64
	MinQuantity   int
	MaxQuantity   int // inclusive
	PriceType     PriceType
	Price         float64
	DiscountType  *DiscountType
	DiscountValue *float64
	CreatedAt     time.Time
}

// Matches returns true if the quantity falls into the closed range of the tier
func (t *PricingTier) Matches(quantity int) bool {
	return quantity >= t.MinQuantity && quantity <= t.MaxQuantity
}

// HasDiscount returns true if the tier carries its own discount
func (t *PricingTier) HasDiscount() bool {
	return t.DiscountType != nil && t.DiscountValue != nil && *t.DiscountValue > 0
}
