package scheduleservice

import "errors"

var (
	// ErrResourceNotFound возвращается, когда расписание ресурса не найдено
	ErrResourceNotFound = errors.New("scheduleservice client: resource not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("scheduleservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("scheduleservice client: invalid response")
)
