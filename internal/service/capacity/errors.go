package capacity

import "errors"

var (
	// ErrStorage возвращается при ошибке хранилища; не означает "мест нет"
	ErrStorage = errors.New("capacity: storage error")

	// ErrInvalidQuantity возвращается при неположительном количестве мест
	ErrInvalidQuantity = errors.New("capacity: quantity must be positive")
)
