package domain

import "time"

// SlotStatus статус слота в сетке расписания комнаты
type SlotStatus string

const (
	SlotFree   SlotStatus = "free"
	SlotBooked SlotStatus = "booked"
)

// ScheduleSlot represents one cell of a room's per-day slot grid.
// The closing slot of the business day has zero width.
type ScheduleSlot struct {
	StartTime       time.Time
	DurationMinutes int
	Status          SlotStatus
}

// IsFree returns true if the slot has no conflict-relevant booking
func (s *ScheduleSlot) IsFree() bool {
	return s.Status == SlotFree
}
