package pricing

import (
	"math"
	"strconv"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
)

// Расчеты ведутся в копейках, чтобы сумма строк разбивки совпадала с итогом

// MaxQuantity верхняя граница количества участников в расчете.
// Вместе с domain.MaxMoneyAmount держит сумму в копейках далеко от переполнения int64.
const MaxQuantity = 1_000_000

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func fromCents(cents int64) float64 {
	return float64(cents) / 100
}

// FormatMoney форматирует сумму с точностью до копеек
func FormatMoney(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// discountCents возвращает размер скидки, не превышающий сумму
func discountCents(subtotal int64, discountType domain.DiscountType, value float64) int64 {
	if subtotal <= 0 || !(value > 0) {
		return 0
	}

	var discount int64
	switch discountType {
	case domain.DiscountFixed:
		if value*100 >= float64(subtotal) {
			return subtotal
		}
		discount = toCents(value)
	default:
		percent := math.Min(value, domain.MaxPercentageDiscount)
		discount = int64(math.Round(float64(subtotal) * percent / 100))
	}

	if discount > subtotal {
		return subtotal
	}
	return discount
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
