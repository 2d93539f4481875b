package domain

// DiscountType defines how a discount value is applied
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// IsValid reports whether the discount type is supported
func (t DiscountType) IsValid() bool {
	return t == DiscountPercentage || t == DiscountFixed
}

// DiscountConfig is a complete group discount policy
type DiscountConfig struct {
	Enabled     bool
	MinQuantity int
	Type        DiscountType
	Value       float64
}

// AppliesTo returns true if the discount should be applied to a party of the given size
func (d DiscountConfig) AppliesTo(quantity int) bool {
	return d.Enabled && quantity >= d.MinQuantity && d.Value > 0
}

// DiscountOverride is the resource-level discount, every field is optional
type DiscountOverride struct {
	Enabled     *bool
	MinQuantity *int
	Type        *DiscountType
	Value       *float64
}

// IsSet returns true if the override is complete enough to replace the global policy
func (o DiscountOverride) IsSet() bool {
	return o.Enabled != nil && o.MinQuantity != nil
}

// PolicySource tells where the resolved discount policy came from
type PolicySource string

const (
	PolicySourceResource PolicySource = "resource"
	PolicySourceGlobal   PolicySource = "global"
)

// ResolvedPolicy is the discount policy in effect for a resource
type ResolvedPolicy struct {
	DiscountConfig
	Source PolicySource
}

// ResolveDiscountPolicy picks the discount policy for a resource.
// The resource override wins only when both Enabled and MinQuantity are set on it;
// otherwise the global policy is used as a whole, fields are never merged.
// Missing Type on a winning override means percentage, missing Value means zero.
func ResolveDiscountPolicy(resource *ResourceConfig, defaults GlobalDefaults) ResolvedPolicy {
	if resource == nil || !resource.Discount.IsSet() {
		return ResolvedPolicy{DiscountConfig: defaults.Discount, Source: PolicySourceGlobal}
	}

	o := resource.Discount
	policy := DiscountConfig{
		Enabled:     *o.Enabled,
		MinQuantity: *o.MinQuantity,
		Type:        DiscountPercentage,
	}
	if o.Type != nil && o.Type.IsValid() {
		policy.Type = *o.Type
	}
	if o.Value != nil {
		policy.Value = *o.Value
	}

	return ResolvedPolicy{DiscountConfig: policy, Source: PolicySourceResource}
}
