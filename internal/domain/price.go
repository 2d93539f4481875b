package domain

import "math"

// MaxMoneyAmount is the largest amount a NUMERIC(12,2) column holds
const MaxMoneyAmount = 9999999999.99

// IsValidAmount reports whether v is a finite amount in [0, MaxMoneyAmount]
func IsValidAmount(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= 0 && v <= MaxMoneyAmount
}

// PriceLine is a display-ready line of a price breakdown
type PriceLine struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	IsDiscount bool    `json:"isDiscount,omitempty"`
}

// PriceQuote is the result of a price calculation.
// The sum of Breakdown values always equals Total.
type PriceQuote struct {
	Total     float64     `json:"total"`
	Breakdown []PriceLine `json:"breakdown"`
}
