package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-GroupBookingService/internal/domain"
	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

// dropPastSlots убирает прошедшие дни и уже начавшиеся слоты сегодняшнего дня
// Порядок дней и слотов сохраняется
func dropPastSlots(slots domain.SlotMap, now time.Time) domain.SlotMap {
	today := civilDate(now)
	currentTime := types.NewTimeString(now)

	result := make(domain.SlotMap, 0, len(slots))
	for _, day := range slots {
		date := civilDate(day.Date)
		if date.Before(today) {
			continue
		}

		if !date.Equal(today) {
			result = append(result, day)
			continue
		}

		upcoming := make([]domain.Slot, 0, len(day.Slots))
		for _, slot := range day.Slots {
			if slot.Time.IsAfter(currentTime) {
				upcoming = append(upcoming, slot)
			}
		}
		if len(upcoming) > 0 {
			result = append(result, domain.DaySlots{Date: day.Date, Slots: upcoming})
		}
	}

	return result
}

// civilDate переносит календарную дату в UTC, чтобы сравнивать даты из разных зон
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
