package domain

import "time"

// Room represents a meeting room in the catalog.
// Rooms are created and edited by the administrative service;
// this service treats the catalog as read-only.
type Room struct {
	ID       int64
	Name     string // Уникально в рамках каталога, используется только для отображения
	Capacity int
	Location string
	Equipment *string

	IsAvailable bool // false - комната занята активным бронированием (флаг ведет админ-сервис)
	Working     bool // false - комната на обслуживании

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the room passes administrative gating:
// a room under maintenance or flagged unavailable is excluded from
// availability regardless of its bookings.
func (r *Room) IsBookable() bool {
	return r.Working && r.IsAvailable
}
