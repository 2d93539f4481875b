package domain

import "time"

// GlobalDefaults is the service-wide booking configuration.
// Resources without explicit overrides use these values.
type GlobalDefaults struct {
	MinPartySize int
	MaxPartySize int // also the default capacity of a slot
	PricingMode  PricingMode
	Discount     DiscountConfig
	HoldTTL      time.Duration // 0 = bookings are confirmed immediately
}

// HasHoldTTL returns true if new bookings start as provisional holds
func (d GlobalDefaults) HasHoldTTL() bool {
	return d.HoldTTL > 0
}
