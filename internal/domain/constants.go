package domain

// Default slot grid configuration
const (
	DefaultSlotDurationMinutes = 30
	DefaultBusinessHoursStart  = "08:00"
	DefaultBusinessHoursEnd    = "18:00"
	DefaultUTCOffsetHours      = 7
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 5
	MaxSlotDurationMinutes      = 480 // 8 hours
	MaxTitleLength              = 200
	MaxDescriptionLength        = 1000
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не участвующих в проверке конфликтов
// на уровне выборок из БД
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
