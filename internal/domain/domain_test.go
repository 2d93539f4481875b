package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-GroupBookingService/pkg/ptr"
)

var testDefaults = GlobalDefaults{
	MinPartySize: 1,
	MaxPartySize: 8,
	PricingMode:  PricingPerPerson,
	Discount: DiscountConfig{
		Enabled:     true,
		MinQuantity: 5,
		Type:        DiscountPercentage,
		Value:       10,
	},
}

func TestResolveDiscountPolicy(t *testing.T) {
	tests := []struct {
		name     string
		resource *ResourceConfig
		want     ResolvedPolicy
	}{
		{
			name:     "unknown resource uses global",
			resource: nil,
			want:     ResolvedPolicy{DiscountConfig: testDefaults.Discount, Source: PolicySourceGlobal},
		},
		{
			name:     "no override uses global",
			resource: &ResourceConfig{ID: 1},
			want:     ResolvedPolicy{DiscountConfig: testDefaults.Discount, Source: PolicySourceGlobal},
		},
		{
			name: "partial override without min quantity falls back to global in full",
			resource: &ResourceConfig{ID: 1, Discount: DiscountOverride{
				Enabled: ptr.Ptr(true),
				Value:   ptr.Ptr(50.0),
			}},
			want: ResolvedPolicy{DiscountConfig: testDefaults.Discount, Source: PolicySourceGlobal},
		},
		{
			name: "complete override wins",
			resource: &ResourceConfig{ID: 1, Discount: DiscountOverride{
				Enabled:     ptr.Ptr(true),
				MinQuantity: ptr.Ptr(3),
				Type:        ptr.Ptr(DiscountFixed),
				Value:       ptr.Ptr(20.0),
			}},
			want: ResolvedPolicy{
				DiscountConfig: DiscountConfig{Enabled: true, MinQuantity: 3, Type: DiscountFixed, Value: 20},
				Source:         PolicySourceResource,
			},
		},
		{
			name: "explicitly disabled override wins over enabled global",
			resource: &ResourceConfig{ID: 1, Discount: DiscountOverride{
				Enabled:     ptr.Ptr(false),
				MinQuantity: ptr.Ptr(1),
			}},
			want: ResolvedPolicy{
				DiscountConfig: DiscountConfig{Enabled: false, MinQuantity: 1, Type: DiscountPercentage},
				Source:         PolicySourceResource,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDiscountPolicy(tt.resource, testDefaults))
		})
	}
}

func TestIsValidAmount(t *testing.T) {
	assert.True(t, IsValidAmount(0))
	assert.True(t, IsValidAmount(19.99))
	assert.True(t, IsValidAmount(MaxMoneyAmount))

	assert.False(t, IsValidAmount(-0.01))
	assert.False(t, IsValidAmount(MaxMoneyAmount+1))
	assert.False(t, IsValidAmount(math.NaN()))
	assert.False(t, IsValidAmount(math.Inf(1)))
	assert.False(t, IsValidAmount(math.Inf(-1)))
}

func TestDiscountConfig_AppliesTo(t *testing.T) {
	d := DiscountConfig{Enabled: true, MinQuantity: 5, Type: DiscountPercentage, Value: 10}

	assert.False(t, d.AppliesTo(4))
	assert.True(t, d.AppliesTo(5))

	d.Value = 0
	assert.False(t, d.AppliesTo(10))

	d.Value = 10
	d.Enabled = false
	assert.False(t, d.AppliesTo(10))
}

func TestResourceConfig_Effective(t *testing.T) {
	var unknown *ResourceConfig
	assert.Equal(t, 8, unknown.EffectiveCapacity(testDefaults))
	assert.Equal(t, PricingPerPerson, unknown.EffectivePricingMode(testDefaults))
	assert.Equal(t, 1, unknown.EffectiveMinPartySize(testDefaults))
	assert.Equal(t, 8, unknown.EffectiveMaxPartySize(testDefaults))
	assert.Zero(t, unknown.EffectiveBasePrice())

	mode := PricingTiered
	r := &ResourceConfig{
		BasePrice:    100,
		Capacity:     ptr.Ptr(20),
		PricingMode:  &mode,
		MinPartySize: ptr.Ptr(2),
		MaxPartySize: ptr.Ptr(12),
	}
	assert.Equal(t, 20, r.EffectiveCapacity(testDefaults))
	assert.Equal(t, PricingTiered, r.EffectivePricingMode(testDefaults))
	assert.Equal(t, 2, r.EffectiveMinPartySize(testDefaults))
	assert.Equal(t, 12, r.EffectiveMaxPartySize(testDefaults))
	assert.Equal(t, 100.0, r.EffectiveBasePrice())
}

func TestBooking_Occupancy(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(10 * time.Minute)
	past := now.Add(-time.Minute)

	tests := []struct {
		name    string
		booking Booking
		occupy  bool
	}{
		{"live hold", Booking{Status: StatusPending, HoldExpiresAt: &future}, true},
		{"expired hold", Booking{Status: StatusPending, HoldExpiresAt: &past}, false},
		{"pending without ttl", Booking{Status: StatusPending}, true},
		{"pending confirmation", Booking{Status: StatusPendingConfirmation}, true},
		{"confirmed", Booking{Status: StatusConfirmed}, true},
		{"paid", Booking{Status: StatusPaid}, true},
		{"cancelled", Booking{Status: StatusCancelled}, false},
		{"rejected", Booking{Status: StatusRejected}, false},
		{"expired", Booking{Status: StatusExpired}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.occupy, tt.booking.OccupiesCapacity(now))
		})
	}
}

func TestBooking_PartySize(t *testing.T) {
	legacy := Booking{}
	assert.Equal(t, 1, legacy.PartySize())

	group := Booking{Quantity: ptr.Ptr(4)}
	assert.Equal(t, 4, group.PartySize())
}

func TestBooking_CanBeConfirmed(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Minute)

	assert.True(t, (&Booking{Status: StatusPending, HoldExpiresAt: &future}).CanBeConfirmed(now))
	assert.False(t, (&Booking{Status: StatusPending, HoldExpiresAt: &now}).CanBeConfirmed(now))
	assert.False(t, (&Booking{Status: StatusConfirmed}).CanBeConfirmed(now))
}

func TestPricingTier_Matches(t *testing.T) {
	tier := PricingTier{MinQuantity: 10, MaxQuantity: 20}

	assert.False(t, tier.Matches(9))
	assert.True(t, tier.Matches(10))
	assert.True(t, tier.Matches(20))
	assert.False(t, tier.Matches(21))
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPaid.IsValid())
	assert.True(t, StatusExpired.IsValid())
	assert.False(t, BookingStatus("no_show").IsValid())
}

func TestPartySizeLimits_Check(t *testing.T) {
	defaults := GlobalDefaults{MinPartySize: 1, MaxPartySize: 10}

	res := &ResourceConfig{
		Capacity:     ptr.Ptr(8),
		MinPartySize: ptr.Ptr(2),
		MaxPartySize: ptr.Ptr(12),
	}
	limits := res.PartySizeLimits(defaults)
	assert.Equal(t, PartySizeLimits{Min: 2, Max: 12, Capacity: 8}, limits)

	assert.Equal(t, PartySizeBelowMinimum, limits.Check(1))
	assert.Equal(t, PartySizeOK, limits.Check(2))
	assert.Equal(t, PartySizeOK, limits.Check(8))
	assert.Equal(t, PartySizeAboveCapacity, limits.Check(9))
	assert.Equal(t, PartySizeAboveMaximum, limits.Check(13))

	var unknown *ResourceConfig
	assert.Equal(t, PartySizeLimits{Min: 1, Max: 10, Capacity: 10}, unknown.PartySizeLimits(defaults))
}
