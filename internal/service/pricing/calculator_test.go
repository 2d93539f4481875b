package pricing

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	tierRepo "github.com/m04kA/SMC-GroupBookingService/internal/infra/storage/tier"
	"github.com/m04kA/SMC-GroupBookingService/pkg/logger"
	"github.com/m04kA/SMC-GroupBookingService/pkg/ptr"
)

type mockTierFinder struct {
	mock.Mock
}

func (m *mockTierFinder) FindForQuantity(ctx context.Context, resourceID int64, quantity int) (*domain.PricingTier, error) {
	args := m.Called(ctx, resourceID, quantity)
	tier, _ := args.Get(0).(*domain.PricingTier)
	return tier, args.Error(1)
}

var tenPercentFromFive = domain.DiscountConfig{
	Enabled:     true,
	MinQuantity: 5,
	Type:        domain.DiscountPercentage,
	Value:       10,
}

func sumCents(lines []domain.PriceLine) int64 {
	var sum int64
	for _, l := range lines {
		sum += toCents(l.Value)
	}
	return sum
}

func TestCalculatePrice_PerPersonNoDiscount(t *testing.T) {
	c := NewCalculator(&mockTierFinder{}, logger.NewNop())

	quote, err := c.GetPriceBreakdown(context.Background(), Input{
		ResourceID: 1, BasePrice: 100, Quantity: 5, Mode: domain.PricingPerPerson,
	})
	require.NoError(t, err)

	assert.Equal(t, 500.0, quote.Total)
	assert.Equal(t, "500.00", FormatMoney(quote.Total))
	require.Len(t, quote.Breakdown, 1)
	assert.Equal(t, "100.00 × 5 people", quote.Breakdown[0].Label)
	assert.Equal(t, 500.0, quote.Breakdown[0].Value)
	assert.False(t, quote.Breakdown[0].IsDiscount)
}

func TestCalculatePrice_PerPersonGroupDiscount(t *testing.T) {
	c := NewCalculator(&mockTierFinder{}, logger.NewNop())

	quote, err := c.GetPriceBreakdown(context.Background(), Input{
		ResourceID: 1, BasePrice: 100, Quantity: 5, Mode: domain.PricingPerPerson, Discount: tenPercentFromFive,
	})
	require.NoError(t, err)

	assert.Equal(t, 450.0, quote.Total)
	require.Len(t, quote.Breakdown, 2)
	assert.Equal(t, domain.PriceLine{Label: "Group discount (10%)", Value: -50, IsDiscount: true}, quote.Breakdown[1])

	total, err := c.CalculatePrice(context.Background(), Input{
		ResourceID: 1, BasePrice: 100, Quantity: 5, Mode: domain.PricingPerPerson, Discount: tenPercentFromFive,
	})
	require.NoError(t, err)
	assert.Equal(t, quote.Total, total)
}

func TestCalculatePrice_DiscountBelowThreshold(t *testing.T) {
	c := NewCalculator(&mockTierFinder{}, logger.NewNop())

	quote, err := c.GetPriceBreakdown(context.Background(), Input{
		ResourceID: 1, BasePrice: 100, Quantity: 4, Mode: domain.PricingPerPerson, Discount: tenPercentFromFive,
	})
	require.NoError(t, err)

	assert.Equal(t, 400.0, quote.Total)
	assert.Len(t, quote.Breakdown, 1)
}

func TestCalculatePrice_FlatRate(t *testing.T) {
	c := NewCalculator(&mockTierFinder{}, logger.NewNop())

	quote, err := c.GetPriceBreakdown(context.Background(), Input{
		ResourceID: 1, BasePrice: 250, Quantity: 8, Mode: domain.PricingFlatRate,
	})
	require.NoError(t, err)

	assert.Equal(t, 250.0, quote.Total)
	assert.Equal(t, "Flat rate", quote.Breakdown[0].Label)
}

func TestCalculatePrice_TierMatches(t *testing.T) {
	tiers := &mockTierFinder{}
	tiers.On("FindForQuantity", mock.Anything, int64(1), 15).Return(&domain.PricingTier{
		ID: 3, ResourceID: 1, MinQuantity: 10, MaxQuantity: 20, PriceType: domain.PriceTypeFlat, Price: 80,
	}, nil)
	c := NewCalculator(tiers, logger.NewNop())

	quote, err := c.GetPriceBreakdown(context.Background(), Input{
		ResourceID: 1, BasePrice: 100, Quantity: 15, Mode: domain.PricingTiered,
	})
	require.NoError(t, err)

	assert.Equal(t, 80.0, quote.Total)
	require.Len(t, quote.Breakdown, 1)
	assert.Equal(t, "Group rate (15 people)", quote.Breakdown[0].Label)
	tiers.AssertExpectations(t)
}

func TestCalculatePrice_TierDiscountFoldedBeforeGroupDiscount(t *testing.T) {
	tiers := &mockTierFinder{}
	tiers.On("FindForQuantity", mock.Anything, int64(1), 10).Return(&domain.PricingTier{
		MinQuantity:   5,
		MaxQuantity:   10,
		PriceType:     domain.PriceTypePerPerson,
		Price:         20,
		DiscountType:  ptr.Ptr(domain.DiscountFixed),
		DiscountValue: ptr.Ptr(50.0),
	}, nil)
	c := NewCalculator(tiers, logger.NewNop())

	quote, err := c.GetPriceBreakdown(context.Background(), Input{
		ResourceID: 1, BasePrice: 100, Quantity: 10, Mode: domain.PricingTiered, Discount: tenPercentFromFive,
	})
	require.NoError(t, err)

	// 20 × 10 = 200, tier -50 = 150, group -10% = 135
	assert.Equal(t, 150.0, quote.Breakdown[0].Value)
	assert.Equal(t, -15.0, quote.Breakdown[1].Value)
	assert.Equal(t, 135.0, quote.Total)
}

func TestCalculatePrice_TierFallbackEqualsPerPerson(t *testing.T) {
	tiers := &mockTierFinder{}
	tiers.On("FindForQuantity", mock.Anything, int64(1), 3).Return(nil, tierRepo.ErrTierNotFound)
	c := NewCalculator(tiers, logger.NewNop())

	tiered, err := c.GetPriceBreakdown(context.Background(), Input{
		ResourceID: 1, BasePrice: 42.5, Quantity: 3, Mode: domain.PricingTiered, Discount: tenPercentFromFive,
	})
	require.NoError(t, err)

	perPerson, err := c.GetPriceBreakdown(context.Background(), Input{
		ResourceID: 1, BasePrice: 42.5, Quantity: 3, Mode: domain.PricingPerPerson, Discount: tenPercentFromFive,
	})
	require.NoError(t, err)

	assert.Equal(t, perPerson, tiered)
	assert.Equal(t, 127.5, tiered.Total)
}

func TestCalculatePrice_TierStorageError(t *testing.T) {
	tiers := &mockTierFinder{}
	tiers.On("FindForQuantity", mock.Anything, int64(1), 3).Return(nil, errors.New("connection reset"))
	c := NewCalculator(tiers, logger.NewNop())

	_, err := c.CalculatePrice(context.Background(), Input{
		ResourceID: 1, BasePrice: 10, Quantity: 3, Mode: domain.PricingTiered,
	})
	assert.ErrorIs(t, err, ErrStorage)
}

func TestCalculatePrice_NonTieredModesDoNotQueryTiers(t *testing.T) {
	tiers := &mockTierFinder{}
	c := NewCalculator(tiers, logger.NewNop())

	for _, mode := range []domain.PricingMode{domain.PricingPerPerson, domain.PricingFlatRate} {
		_, err := c.CalculatePrice(context.Background(), Input{ResourceID: 1, BasePrice: 10, Quantity: 2, Mode: mode})
		require.NoError(t, err)
	}
	tiers.AssertNotCalled(t, "FindForQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestCalculatePrice_InvalidInput(t *testing.T) {
	c := NewCalculator(&mockTierFinder{}, logger.NewNop())

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{"zero quantity", Input{BasePrice: 10, Quantity: 0, Mode: domain.PricingPerPerson}, ErrInvalidQuantity},
		{"negative price", Input{BasePrice: -1, Quantity: 1, Mode: domain.PricingPerPerson}, ErrInvalidBasePrice},
		{"nan price", Input{BasePrice: math.NaN(), Quantity: 3, Mode: domain.PricingPerPerson}, ErrInvalidBasePrice},
		{"infinite price", Input{BasePrice: math.Inf(1), Quantity: 3, Mode: domain.PricingPerPerson}, ErrInvalidBasePrice},
		{"price above column bound", Input{BasePrice: 1e17, Quantity: 3, Mode: domain.PricingPerPerson}, ErrInvalidBasePrice},
		{"quantity above limit", Input{BasePrice: 10, Quantity: MaxQuantity + 1, Mode: domain.PricingPerPerson}, ErrInvalidQuantity},
		{"unknown mode", Input{BasePrice: 10, Quantity: 1, Mode: "hourly"}, ErrInvalidMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.CalculatePrice(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestQuote_DiscountNeverBelowZero(t *testing.T) {
	discounts := []domain.DiscountConfig{
		{Enabled: true, MinQuantity: 1, Type: domain.DiscountFixed, Value: 1e6},
		{Enabled: true, MinQuantity: 1, Type: domain.DiscountPercentage, Value: 150},
		{Enabled: true, MinQuantity: 1, Type: domain.DiscountPercentage, Value: 100},
		{Enabled: true, MinQuantity: 1, Type: domain.DiscountFixed, Value: 0.01},
	}
	modes := []domain.PricingMode{domain.PricingPerPerson, domain.PricingFlatRate, domain.PricingTiered}

	for _, d := range discounts {
		for _, mode := range modes {
			for _, quantity := range []int{1, 2, 7} {
				quote := Quote(Input{BasePrice: 33.33, Quantity: quantity, Mode: mode, Discount: d}, nil)
				assert.GreaterOrEqual(t, quote.Total, 0.0)
				assert.Equal(t, toCents(quote.Total), sumCents(quote.Breakdown))
			}
		}
	}
}

func TestQuote_BreakdownSumsToTotal(t *testing.T) {
	tier := &domain.PricingTier{
		MinQuantity:   1,
		MaxQuantity:   100,
		PriceType:     domain.PriceTypePerPerson,
		Price:         19.99,
		DiscountType:  ptr.Ptr(domain.DiscountPercentage),
		DiscountValue: ptr.Ptr(7.5),
	}
	discount := domain.DiscountConfig{Enabled: true, MinQuantity: 3, Type: domain.DiscountPercentage, Value: 12.5}

	for quantity := 1; quantity <= 25; quantity++ {
		for _, basePrice := range []float64{0, 0.1, 9.99, 17.35} {
			in := Input{BasePrice: basePrice, Quantity: quantity, Mode: domain.PricingTiered, Discount: discount}

			first := Quote(in, tier)
			second := Quote(in, tier)
			assert.Equal(t, first, second)

			assert.Equal(t, toCents(first.Total), sumCents(first.Breakdown), "quantity=%d", quantity)
			assert.Equal(t, first.Total, math.Round(first.Total*100)/100)
		}
	}
}

func TestCalculatePrice_LargestInputsStayNonNegative(t *testing.T) {
	c := NewCalculator(&mockTierFinder{}, logger.NewNop())

	for _, mode := range []domain.PricingMode{domain.PricingPerPerson, domain.PricingFlatRate} {
		quote, err := c.GetPriceBreakdown(context.Background(), Input{
			ResourceID: 1, BasePrice: domain.MaxMoneyAmount, Quantity: MaxQuantity, Mode: mode, Discount: tenPercentFromFive,
		})
		require.NoError(t, err)
		assert.Greater(t, quote.Total, 0.0, mode)
		assert.LessOrEqual(t, quote.Total, quote.Breakdown[0].Value, mode)
	}
}

func TestQuote_SubCentPriceRoundedOnce(t *testing.T) {
	quote := Quote(Input{BasePrice: 0.005, Quantity: 100, Mode: domain.PricingPerPerson}, nil)
	assert.Equal(t, 0.5, quote.Total)

	quote = Quote(Input{BasePrice: 19.99, Quantity: 3, Mode: domain.PricingPerPerson}, nil)
	assert.Equal(t, 59.97, quote.Total)
}

func TestDiscountCents(t *testing.T) {
	assert.Equal(t, int64(5000), discountCents(50000, domain.DiscountPercentage, 10))
	assert.Equal(t, int64(1500), discountCents(50000, domain.DiscountFixed, 15))
	assert.Equal(t, int64(1000), discountCents(1000, domain.DiscountFixed, 15))
	assert.Equal(t, int64(0), discountCents(1000, domain.DiscountFixed, 0))
	assert.Equal(t, int64(0), discountCents(0, domain.DiscountPercentage, 10))
	assert.Equal(t, int64(1000), discountCents(1000, domain.DiscountFixed, 1e300))
	assert.Equal(t, int64(0), discountCents(1000, domain.DiscountFixed, math.NaN()))
}
