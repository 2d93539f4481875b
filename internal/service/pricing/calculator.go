package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	tierRepo "github.com/m04kA/SMC-GroupBookingService/internal/infra/storage/tier"
)

// Calculator рассчитывает стоимость бронирования группы
// Не хранит состояния: результат зависит только от входных данных и ценовых уровней ресурса
type Calculator struct {
	tiers  TierFinder
	logger Logger
}

// NewCalculator создает новый экземпляр Calculator
func NewCalculator(tiers TierFinder, logger Logger) *Calculator {
	return &Calculator{
		tiers:  tiers,
		logger: logger,
	}
}

// CalculatePrice возвращает итоговую стоимость, округленную до копеек
func (c *Calculator) CalculatePrice(ctx context.Context, in Input) (float64, error) {
	quote, err := c.GetPriceBreakdown(ctx, in)
	if err != nil {
		return 0, err
	}
	return quote.Total, nil
}

// GetPriceBreakdown возвращает итог и построчную разбивку расчета
func (c *Calculator) GetPriceBreakdown(ctx context.Context, in Input) (*domain.PriceQuote, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var tier *domain.PricingTier
	if in.Mode == domain.PricingTiered {
		found, err := c.tiers.FindForQuantity(ctx, in.ResourceID, in.Quantity)
		switch {
		case err == nil:
			tier = found
		case errors.Is(err, tierRepo.ErrTierNotFound):
			c.logger.Info("GetPriceBreakdown: no tier for resource=%d quantity=%d, falling back to per_person",
				in.ResourceID, in.Quantity)
		default:
			c.logger.Error("GetPriceBreakdown: failed to find tier for resource=%d: %v", in.ResourceID, err)
			return nil, fmt.Errorf("%w: GetPriceBreakdown - %v", ErrStorage, err)
		}
	}

	quote := Quote(in, tier)
	return &quote, nil
}

// Quote рассчитывает цену для уже найденного ценового уровня (tier может быть nil)
func Quote(in Input, tier *domain.PricingTier) domain.PriceQuote {
	// 1. Промежуточная сумма по режиму ценообразования
	subtotal, label := subtotalCents(in, tier)

	// 2. Групповая скидка ресурса или глобальная
	var discount int64
	if in.Discount.AppliesTo(in.Quantity) {
		discount = discountCents(subtotal, in.Discount.Type, in.Discount.Value)
	}

	// 3. Разбивка: строка скидки только если скидка строго положительна
	breakdown := []domain.PriceLine{{Label: label, Value: fromCents(subtotal)}}
	if discount > 0 {
		breakdown = append(breakdown, domain.PriceLine{
			Label:      discountLabel(in.Discount),
			Value:      -fromCents(discount),
			IsDiscount: true,
		})
	}

	return domain.PriceQuote{
		Total:     fromCents(subtotal - discount),
		Breakdown: breakdown,
	}
}

// subtotalCents возвращает сумму до групповой скидки и подпись строки разбивки
// Скидка самого уровня уже учтена в сумме.
func subtotalCents(in Input, tier *domain.PricingTier) (int64, string) {
	switch in.Mode {
	case domain.PricingFlatRate:
		return toCents(in.BasePrice), "Flat rate"
	case domain.PricingTiered:
		if tier == nil {
			return perPerson(in.BasePrice, in.Quantity)
		}
		subtotal := toCents(tier.Price)
		if tier.PriceType == domain.PriceTypePerPerson {
			subtotal = toCents(tier.Price * float64(in.Quantity))
		}
		if tier.HasDiscount() {
			subtotal -= discountCents(subtotal, *tier.DiscountType, *tier.DiscountValue)
		}
		return subtotal, fmt.Sprintf("Group rate (%d people)", in.Quantity)
	default:
		return perPerson(in.BasePrice, in.Quantity)
	}
}

// Умножение до округления: округляется только сумма
func perPerson(basePrice float64, quantity int) (int64, string) {
	return toCents(basePrice * float64(quantity)),
		fmt.Sprintf("%s × %d people", FormatMoney(basePrice), quantity)
}

func discountLabel(d domain.DiscountConfig) string {
	if d.Type == domain.DiscountFixed {
		return "Group discount"
	}
	return fmt.Sprintf("Group discount (%s%%)", formatNumber(d.Value))
}

func validateInput(in Input) error {
	if in.Quantity < 1 || in.Quantity > MaxQuantity {
		return ErrInvalidQuantity
	}
	if !domain.IsValidAmount(in.BasePrice) {
		return ErrInvalidBasePrice
	}
	if !in.Mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, in.Mode)
	}
	return nil
}
