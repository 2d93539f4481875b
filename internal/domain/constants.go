package domain

// Business validation constants
const (
	MinPartySize                = 1
	MaxTierQuantity             = 10000
	MaxPercentageDiscount       = 100
	MaxSlotsRangeDays           = 31
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses статусы, резервирующие места в слоте
// pending учитывается только пока не истек hold_expires_at
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusPendingConfirmation,
	StatusConfirmed,
	StatusPaid,
	StatusCompleted,
}

// TerminalStatuses статусы, которые никогда не занимают места
var TerminalStatuses = []BookingStatus{
	StatusCancelled,
	StatusRejected,
	StatusExpired,
}
