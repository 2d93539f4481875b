package update_resource

import (
	"github.com/m04kA/SMC-GroupBookingService/internal/service/resources/models"
)

// UpdateResourceRequest HTTP request model
// Тело заменяет настройки целиком: отсутствующее поле сбрасывается к глобальному значению
type UpdateResourceRequest struct {
	Name         string                  `json:"name"`
	BasePrice    float64                 `json:"basePrice"`
	Capacity     *int                    `json:"capacity,omitempty"`
	PricingMode  *string                 `json:"pricingMode,omitempty"`
	MinPartySize *int                    `json:"minPartySize,omitempty"`
	MaxPartySize *int                    `json:"maxPartySize,omitempty"`
	Discount     *models.DiscountRequest `json:"discount,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateResourceRequest) ToServiceRequest(resourceID int64) *models.UpsertResourceRequest {
	return &models.UpsertResourceRequest{
		ResourceID:   resourceID,
		Name:         r.Name,
		BasePrice:    r.BasePrice,
		Capacity:     r.Capacity,
		PricingMode:  r.PricingMode,
		MinPartySize: r.MinPartySize,
		MaxPartySize: r.MaxPartySize,
		Discount:     r.Discount,
	}
}
