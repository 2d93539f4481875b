package calculate_price

import (
	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	calculatePrice "github.com/m04kA/SMC-GroupBookingService/internal/usecase/calculate_price"
)

// PriceResponse HTTP response model
type PriceResponse struct {
	Total          float64            `json:"total"`
	TotalFormatted string             `json:"totalFormatted"`
	Breakdown      []domain.PriceLine `json:"breakdown"`
	Mode           string             `json:"mode"`
	DiscountSource string             `json:"discountSource"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *PriceResponse {
	breakdown := resp.Breakdown
	if breakdown == nil {
		breakdown = []domain.PriceLine{}
	}
	return &PriceResponse{
		Total:          resp.Total,
		TotalFormatted: resp.TotalFormatted,
		Breakdown:      breakdown,
		Mode:           string(resp.Mode),
		DiscountSource: string(resp.DiscountSource),
	}
}
