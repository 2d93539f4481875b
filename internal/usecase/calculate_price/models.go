package calculate_price

import "github.com/m04kA/SMC-GroupBookingService/internal/domain"

// Request модель запроса расчета цены
// BasePrice и Mode переопределяют настройки ресурса, если заданы
type Request struct {
	ResourceID int64
	Quantity   int
	BasePrice  *float64
	Mode       *domain.PricingMode
}

// Response модель ответа с рассчитанной ценой
type Response struct {
	Total          float64
	TotalFormatted string
	Breakdown      []domain.PriceLine
	Mode           domain.PricingMode
	DiscountSource domain.PolicySource
	Cached         bool
}
