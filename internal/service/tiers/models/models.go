package models

import (
	"time"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
)

// Request модели

// CreateTierRequest запрос на создание ценового уровня
type CreateTierRequest struct {
	ResourceID    int64    `json:"resourceId"`
	MinQuantity   int      `json:"minQuantity"`
	MaxQuantity   int      `json:"maxQuantity"`
	PriceType     string   `json:"priceType"` // per_person | flat
	Price         float64  `json:"price"`
	DiscountType  *string  `json:"discountType,omitempty"` // percentage | fixed
	DiscountValue *float64 `json:"discountValue,omitempty"`
}

// ToDomainTier конвертирует request в domain модель
func (r *CreateTierRequest) ToDomainTier() *domain.PricingTier {
	tier := &domain.PricingTier{
		ResourceID:    r.ResourceID,
		MinQuantity:   r.MinQuantity,
		MaxQuantity:   r.MaxQuantity,
		PriceType:     domain.PriceType(r.PriceType),
		Price:         r.Price,
		DiscountValue: r.DiscountValue,
	}
	if r.DiscountType != nil {
		dt := domain.DiscountType(*r.DiscountType)
		tier.DiscountType = &dt
	}
	return tier
}

// Response модели

// TierResponse ответ с данными ценового уровня
type TierResponse struct {
	ID            int64     `json:"id"`
	ResourceID    int64     `json:"resourceId"`
	MinQuantity   int       `json:"minQuantity"`
	MaxQuantity   int       `json:"maxQuantity"`
	PriceType     string    `json:"priceType"`
	Price         float64   `json:"price"`
	DiscountType  *string   `json:"discountType,omitempty"`
	DiscountValue *float64  `json:"discountValue,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TierListResponse ответ со списком ценовых уровней
type TierListResponse struct {
	Tiers []TierResponse `json:"tiers"`
}

// Методы конвертации

// FromDomainTier конвертирует domain модель в DTO
func FromDomainTier(t *domain.PricingTier) *TierResponse {
	if t == nil {
		return nil
	}

	resp := &TierResponse{
		ID:            t.ID,
		ResourceID:    t.ResourceID,
		MinQuantity:   t.MinQuantity,
		MaxQuantity:   t.MaxQuantity,
		PriceType:     string(t.PriceType),
		Price:         t.Price,
		DiscountValue: t.DiscountValue,
		CreatedAt:     t.CreatedAt,
	}
	if t.DiscountType != nil {
		dt := string(*t.DiscountType)
		resp.DiscountType = &dt
	}
	return resp
}

// FromDomainTierList конвертирует список domain моделей в DTO
func FromDomainTierList(tiers []*domain.PricingTier) *TierListResponse {
	resp := &TierListResponse{
		Tiers: make([]TierResponse, 0, len(tiers)),
	}
	for _, t := range tiers {
		if tierResp := FromDomainTier(t); tierResp != nil {
			resp.Tiers = append(resp.Tiers, *tierResp)
		}
	}
	return resp
}
