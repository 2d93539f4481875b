package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
)

// Request модели

// UpsertResourceRequest запрос на сохранение настроек ресурса
// Nil поля означают "не настроено" и берутся из глобальных значений
type UpsertResourceRequest struct {
	ResourceID   int64            `json:"-"` // из пути запроса
	Name         string           `json:"name"`
	BasePrice    float64          `json:"basePrice"`
	Capacity     *int             `json:"capacity,omitempty"`
	PricingMode  *string          `json:"pricingMode,omitempty"` // per_person | flat_rate | tiered
	MinPartySize *int             `json:"minPartySize,omitempty"`
	MaxPartySize *int             `json:"maxPartySize,omitempty"`
	Discount     *DiscountRequest `json:"discount,omitempty"`
}

// DiscountRequest переопределение групповой скидки ресурса
type DiscountRequest struct {
	Enabled     *bool    `json:"enabled,omitempty"`
	MinQuantity *int     `json:"minQuantity,omitempty"`
	Type        *string  `json:"type,omitempty"` // percentage | fixed
	Value       *float64 `json:"value,omitempty"`
}

// ToDomainResource конвертирует request в domain модель
func (r *UpsertResourceRequest) ToDomainResource() *domain.ResourceConfig {
	res := &domain.ResourceConfig{
		ID:           r.ResourceID,
		Name:         strings.TrimSpace(r.Name),
		BasePrice:    r.BasePrice,
		Capacity:     r.Capacity,
		MinPartySize: r.MinPartySize,
		MaxPartySize: r.MaxPartySize,
	}
	if r.PricingMode != nil {
		mode := domain.PricingMode(*r.PricingMode)
		res.PricingMode = &mode
	}
	if r.Discount != nil {
		res.Discount = domain.DiscountOverride{
			Enabled:     r.Discount.Enabled,
			MinQuantity: r.Discount.MinQuantity,
			Value:       r.Discount.Value,
		}
		if r.Discount.Type != nil {
			dt := domain.DiscountType(*r.Discount.Type)
			res.Discount.Type = &dt
		}
	}
	return res
}

// Response модели

// ResourceResponse ответ с настройками ресурса
type ResourceResponse struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	BasePrice    float64          `json:"basePrice"`
	Capacity     *int             `json:"capacity,omitempty"`
	PricingMode  *string          `json:"pricingMode,omitempty"`
	MinPartySize *int             `json:"minPartySize,omitempty"`
	MaxPartySize *int             `json:"maxPartySize,omitempty"`
	Discount     *DiscountRequest `json:"discount,omitempty"`
	Effective    EffectiveConfig  `json:"effective"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// EffectiveConfig действующие значения после подстановки глобальных настроек
type EffectiveConfig struct {
	Capacity     int               `json:"capacity"`
	PricingMode  string            `json:"pricingMode"`
	MinPartySize int               `json:"minPartySize"`
	MaxPartySize int               `json:"maxPartySize"`
	Discount     EffectiveDiscount `json:"discount"`
}

// EffectiveDiscount действующая политика групповой скидки
type EffectiveDiscount struct {
	Enabled     bool    `json:"enabled"`
	MinQuantity int     `json:"minQuantity"`
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
	Source      string  `json:"source"` // resource | global
}

// Методы конвертации

// FromDomainResource конвертирует domain модель в DTO
func FromDomainResource(r *domain.ResourceConfig, defaults domain.GlobalDefaults) *ResourceResponse {
	if r == nil {
		return nil
	}

	policy := domain.ResolveDiscountPolicy(r, defaults)

	resp := &ResourceResponse{
		ID:           r.ID,
		Name:         r.Name,
		BasePrice:    r.BasePrice,
		Capacity:     r.Capacity,
		MinPartySize: r.MinPartySize,
		MaxPartySize: r.MaxPartySize,
		Effective: EffectiveConfig{
			Capacity:     r.EffectiveCapacity(defaults),
			PricingMode:  string(r.EffectivePricingMode(defaults)),
			MinPartySize: r.EffectiveMinPartySize(defaults),
			MaxPartySize: r.EffectiveMaxPartySize(defaults),
			Discount: EffectiveDiscount{
				Enabled:     policy.Enabled,
				MinQuantity: policy.MinQuantity,
				Type:        string(policy.Type),
				Value:       policy.Value,
				Source:      string(policy.Source),
			},
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.PricingMode != nil {
		mode := string(*r.PricingMode)
		resp.PricingMode = &mode
	}
	if d := r.Discount; d.Enabled != nil || d.MinQuantity != nil || d.Type != nil || d.Value != nil {
		resp.Discount = &DiscountRequest{
			Enabled:     d.Enabled,
			MinQuantity: d.MinQuantity,
			Value:       d.Value,
		}
		if d.Type != nil {
			dt := string(*d.Type)
			resp.Discount.Type = &dt
		}
	}
	return resp
}
