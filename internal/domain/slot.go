package domain

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

// Slot is a single time entry of a day with an opaque payload from the schedule source
type Slot struct {
	Time      types.TimeString
	Payload   json.RawMessage
	Remaining int // free seats, filled by the capacity filter
}

// DaySlots holds the ordered slots of one date
type DaySlots struct {
	Date  time.Time
	Slots []Slot
}

// SlotMap is an ordered mapping date -> time -> payload
type SlotMap []DaySlots

// Dates returns the dates of the map in order
func (m SlotMap) Dates() []time.Time {
	dates := make([]time.Time, 0, len(m))
	for _, day := range m {
		dates = append(dates, day.Date)
	}
	return dates
}

// SlotCount returns the total number of slots across all dates
func (m SlotMap) SlotCount() int {
	count := 0
	for _, day := range m {
		count += len(day.Slots)
	}
	return count
}

// SlotKey identifies a slot of a resource
type SlotKey struct {
	Date string // YYYY-MM-DD
	Time types.TimeString
}

// NewSlotKey builds a key from a date and a slot time
func NewSlotKey(date time.Time, t types.TimeString) SlotKey {
	return SlotKey{Date: date.Format(DateFormat), Time: t}
}
