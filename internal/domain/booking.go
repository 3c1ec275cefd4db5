package domain

import "time"

// BookingStatus represents the stored status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// EffectiveStatus represents the scheduling status of a booking recomputed
// from the current time. The stored status field is not trusted for
// scheduling decisions: only the terminal states (cancelled, completed)
// are sticky and override recomputation.
type EffectiveStatus string

const (
	EffectiveUpcoming   EffectiveStatus = "upcoming"
	EffectiveInProgress EffectiveStatus = "in_progress"
	EffectiveCompleted  EffectiveStatus = "completed"
	EffectiveCancelled  EffectiveStatus = "cancelled"
)

// Booking represents a meeting-room booking.
// The interval is half-open: [StartTime, EndTime).
type Booking struct {
	ID          int64
	RoomID      *int64 // nil для легаси-записей без идентификатора комнаты
	RoomName    string
	Title       string
	Description *string

	StartTime time.Time
	EndTime   time.Time

	OrganizerCode string
	AttendeeCodes []string

	Status BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveStatus recomputes the scheduling status of the booking at the
// given moment. Cancelled and completed stored statuses are sticky terminal
// states; everything else is derived from now vs. the interval.
// The in-progress window is inclusive on both ends.
func (b *Booking) EffectiveStatus(now time.Time) EffectiveStatus {
	switch b.Status {
	case StatusCancelled:
		return EffectiveCancelled
	case StatusCompleted:
		return EffectiveCompleted
	}

	switch {
	case now.Before(b.StartTime):
		return EffectiveUpcoming
	case !now.After(b.EndTime): // StartTime <= now <= EndTime
		return EffectiveInProgress
	default:
		return EffectiveCompleted
	}
}

// IsConflictRelevant reports whether the booking counts for room
// availability at the given moment: only upcoming and in-progress
// bookings can conflict with a request.
func (b *Booking) IsConflictRelevant(now time.Time) bool {
	status := b.EffectiveStatus(now)
	return status == EffectiveUpcoming || status == EffectiveInProgress
}

// Overlaps проверяет пересечение бронирования с полуоткрытым интервалом
// [reqStart, reqEnd). Строгие неравенства: интервалы, граничащие точно
// по краю (reqEnd == StartTime или reqStart == EndTime), НЕ пересекаются,
// что позволяет бронировать встречи впритык.
func (b *Booking) Overlaps(reqStart, reqEnd time.Time) bool {
	return reqStart.Before(b.EndTime) && reqEnd.After(b.StartTime)
}

// MatchesRoom проверяет, относится ли бронирование к комнате.
// Сопоставление идет по RoomID; сравнение по имени - только
// compatibility shim для легаси-записей без идентификатора
// (имя комнаты не уникально после переименований).
func (b *Booking) MatchesRoom(r *Room) bool {
	if b.RoomID != nil {
		return *b.RoomID == r.ID
	}
	return b.RoomName == r.Name
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	RoomID          *int64         // Фильтр по комнате (опционально)
	OrganizerCode   *string        // Фильтр по организатору (опционально)
	AttendeeCode    *string        // Фильтр по участнику (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}
