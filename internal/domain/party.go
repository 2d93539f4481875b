package domain

// PartySizeViolation describes why a party size cannot be accepted
type PartySizeViolation string

const (
	PartySizeOK            PartySizeViolation = ""
	PartySizeBelowMinimum  PartySizeViolation = "below_minimum"
	PartySizeAboveMaximum  PartySizeViolation = "above_maximum"
	PartySizeAboveCapacity PartySizeViolation = "above_capacity"
)

// PartySizeLimits are the effective party size bounds of a resource
type PartySizeLimits struct {
	Min      int
	Max      int
	Capacity int
}

// PartySizeLimits resolves the bounds of the resource against the global defaults
func (r *ResourceConfig) PartySizeLimits(defaults GlobalDefaults) PartySizeLimits {
	return PartySizeLimits{
		Min:      r.EffectiveMinPartySize(defaults),
		Max:      r.EffectiveMaxPartySize(defaults),
		Capacity: r.EffectiveCapacity(defaults),
	}
}

// Check returns the first violated bound: minimum, then maximum, then capacity
func (l PartySizeLimits) Check(quantity int) PartySizeViolation {
	switch {
	case quantity < l.Min:
		return PartySizeBelowMinimum
	case quantity > l.Max:
		return PartySizeAboveMaximum
	case quantity > l.Capacity:
		return PartySizeAboveCapacity
	default:
		return PartySizeOK
	}
}
