package domain

import "time"

// PricingMode defines how the subtotal of a booking is computed
type PricingMode string

const (
	PricingPerPerson PricingMode = "per_person"
	PricingFlatRate  PricingMode = "flat_rate"
	PricingTiered    PricingMode = "tiered"
)

// IsValid reports whether the pricing mode is supported
func (m PricingMode) IsValid() bool {
	return m == PricingPerPerson || m == PricingFlatRate || m == PricingTiered
}

// ResourceConfig represents a bookable resource with optional per-resource overrides.
// Nil fields mean "not configured" and fall back to GlobalDefaults.
type ResourceConfig struct {
	ID           int64
	Name         string
	BasePrice    float64
	Capacity     *int
	PricingMode  *PricingMode
	MinPartySize *int
	MaxPartySize *int
	Discount     DiscountOverride

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveCapacity returns the resource capacity, or the global default max party size.
// A nil resource (unknown id) resolves to defaults.
func (r *ResourceConfig) EffectiveCapacity(defaults GlobalDefaults) int {
	if r != nil && r.Capacity != nil && *r.Capacity > 0 {
		return *r.Capacity
	}
	return defaults.MaxPartySize
}

// EffectivePricingMode returns the resource pricing mode or the global default
func (r *ResourceConfig) EffectivePricingMode(defaults GlobalDefaults) PricingMode {
	if r != nil && r.PricingMode != nil && r.PricingMode.IsValid() {
		return *r.PricingMode
	}
	return defaults.PricingMode
}

// EffectiveMinPartySize returns the minimal allowed party size
func (r *ResourceConfig) EffectiveMinPartySize(defaults GlobalDefaults) int {
	if r != nil && r.MinPartySize != nil && *r.MinPartySize > 0 {
		return *r.MinPartySize
	}
	return defaults.MinPartySize
}

// EffectiveMaxPartySize returns the maximal allowed party size
func (r *ResourceConfig) EffectiveMaxPartySize(defaults GlobalDefaults) int {
	if r != nil && r.MaxPartySize != nil && *r.MaxPartySize > 0 {
		return *r.MaxPartySize
	}
	return defaults.MaxPartySize
}

// EffectiveBasePrice returns the base price of the resource, zero for unknown resources
func (r *ResourceConfig) EffectiveBasePrice() float64 {
	if r == nil {
		return 0
	}
	return r.BasePrice
}
