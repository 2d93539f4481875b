package get_available_slots

import "errors"

var (
	// ErrResourceNotFound возвращается, когда у ресурса нет расписания
	ErrResourceNotFound = errors.New("get_available_slots: resource not found")

	// ErrRangeTooLong возвращается, когда период превышает MaxSlotsRangeDays
	ErrRangeTooLong = errors.New("get_available_slots: date range is too long")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
