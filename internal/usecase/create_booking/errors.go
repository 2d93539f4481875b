package create_booking

import "errors"

var (
	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrTooLateToBook возвращается, когда слот сегодняшнего дня уже начался
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrPartyTooSmall возвращается, когда группа меньше минимального размера ресурса
	ErrPartyTooSmall = errors.New("create_booking: party size is below the minimum")

	// ErrPartyTooLarge возвращается, когда группа больше максимального размера ресурса
	ErrPartyTooLarge = errors.New("create_booking: party size is above the maximum")

	// ErrExceedsCapacity возвращается, когда группа больше вместимости слота
	ErrExceedsCapacity = errors.New("create_booking: party size exceeds slot capacity")

	// ErrSlotNotAvailable возвращается, когда в слоте не хватает мест
	// Ошибка временная: повторный запрос может пройти после отмены или истечения удержаний
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
