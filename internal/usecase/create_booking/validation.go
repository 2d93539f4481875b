package create_booking

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.Quantity < domain.MinPartySize {
		return fmt.Errorf("%w: quantity must be at least %d", ErrInvalidInput, domain.MinPartySize)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateSlotTime проверяет, что слот еще не начался
func validateSlotTime(bookingDate time.Time, startTime types.TimeString, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	// Для сегодняшнего дня время начала должно быть в будущем
	if isSameDay(bookingDate, now) && !startTime.IsAfter(types.NewTimeString(now)) {
		return ErrTooLateToBook
	}

	return nil
}

// partySizeError переводит нарушение ограничений ресурса в ошибку
func partySizeError(violation domain.PartySizeViolation, limits domain.PartySizeLimits) error {
	switch violation {
	case domain.PartySizeBelowMinimum:
		return fmt.Errorf("%w: minimum is %d", ErrPartyTooSmall, limits.Min)
	case domain.PartySizeAboveMaximum:
		return fmt.Errorf("%w: maximum is %d", ErrPartyTooLarge, limits.Max)
	case domain.PartySizeAboveCapacity:
		return fmt.Errorf("%w: capacity is %d", ErrExceedsCapacity, limits.Capacity)
	default:
		return nil
	}
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	dateOnly := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
