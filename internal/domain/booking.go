package domain

import (
	"time"

	"github.com/m04kA/SMC-GroupBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending" // provisional hold, expires at HoldExpiresAt
	StatusPendingConfirmation BookingStatus = "pending_confirmation"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusPaid                BookingStatus = "paid"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelled           BookingStatus = "cancelled"
	StatusRejected            BookingStatus = "rejected"
	StatusExpired             BookingStatus = "expired"
)

// IsValid reports whether the status is one of the known values
func (s BookingStatus) IsValid() bool {
	for _, known := range OccupyingStatuses {
		if s == known {
			return true
		}
	}
	for _, known := range TerminalStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal returns true for statuses that never occupy capacity
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusRejected || s == StatusExpired
}

// Booking represents a group booking of a resource slot
type Booking struct {
	ID          int64
	ResourceID  int64
	UserID      int64
	BookingDate time.Time
	StartTime   types.TimeString
	Quantity    *int // NULL для старых одноместных бронирований
	Status      BookingStatus
	TotalPrice  float64

	HoldExpiresAt *time.Time
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PartySize returns the number of seats the booking takes.
// Bookings without an explicit quantity count as a single seat.
func (b *Booking) PartySize() int {
	if b.Quantity == nil {
		return 1
	}
	return *b.Quantity
}

// IsHoldExpired returns true if the booking is a provisional hold whose TTL has passed
func (b *Booking) IsHoldExpired(now time.Time) bool {
	return b.Status == StatusPending && b.HoldExpiresAt != nil && !now.Before(*b.HoldExpiresAt)
}

// OccupiesCapacity returns true if the booking reserves seats at the given moment
func (b *Booking) OccupiesCapacity(now time.Time) bool {
	if b.Status.IsTerminal() {
		return false
	}
	return !b.IsHoldExpired(now)
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending ||
		b.Status == StatusPendingConfirmation ||
		b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the hold is still alive and can be turned into a confirmed booking
func (b *Booking) CanBeConfirmed(now time.Time) bool {
	return b.Status == StatusPending && !b.IsHoldExpired(now)
}

// SlotOccupant is a single booking contributing to slot occupancy
type SlotOccupant struct {
	BookingID int64
	UserID    int64
	Quantity  int
	Status    BookingStatus
}
