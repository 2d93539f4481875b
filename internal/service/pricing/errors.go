package pricing

import "errors"

var (
	// ErrStorage возвращается при ошибке чтения ценовых уровней
	ErrStorage = errors.New("pricing: storage error")

	// ErrInvalidQuantity возвращается при количестве участников вне [1, MaxQuantity]
	ErrInvalidQuantity = errors.New("pricing: quantity out of range")

	// ErrInvalidBasePrice возвращается при отрицательной, нечисловой или слишком большой базовой цене
	ErrInvalidBasePrice = errors.New("pricing: base price out of range")

	// ErrInvalidMode возвращается при неизвестном режиме ценообразования
	ErrInvalidMode = errors.New("pricing: unknown pricing mode")
)
