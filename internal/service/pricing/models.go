package pricing

import "github.com/m04kA/SMC-GroupBookingService/internal/domain"

// Input входные данные расчета цены
// Discount - уже разрешенная политика скидки (см. domain.ResolveDiscountPolicy)
type Input struct {
	ResourceID int64
	BasePrice  float64
	Quantity   int
	Mode       domain.PricingMode
	Discount   domain.DiscountConfig
}
