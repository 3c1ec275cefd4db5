package get_room_schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// buildSlotGrid строит сетку слотов комнаты на день.
//
// День разбивается на слоты фиксированной ширины от начала до конца рабочих
// часов; граница закрытия (18:00 по умолчанию) включается как замыкающий
// слот нулевой ширины. Слот помечается booked, если его НАЧАЛО попадает
// внутрь полуоткрытого интервала [StartTime, EndTime) какого-либо
// conflict-relevant бронирования этой комнаты.
//
// Это проекция того же overlap-примитива, что и в поиске свободных комнат,
// не отдельный алгоритм: слот нулевой ширины по определению может быть
// только проверкой принадлежности начала.
func buildSlotGrid(
	day time.Time,
	cfg SlotConfig,
	room *domain.Room,
	bookings []*domain.Booking,
	now time.Time,
) ([]domain.ScheduleSlot, error) {
	openMinutes, err := parseHHMM(cfg.BusinessHoursStart)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidBusinessHours, err)
	}

	closeMinutes, err := parseHHMM(cfg.BusinessHoursEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrInvalidBusinessHours, err)
	}

	if closeMinutes <= openMinutes {
		return nil, fmt.Errorf("%w: close %s is not after open %s",
			ErrInvalidBusinessHours, cfg.BusinessHoursEnd, cfg.BusinessHoursStart)
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, cfg.Location)

	slots := make([]domain.ScheduleSlot, 0, (closeMinutes-openMinutes)/cfg.SlotDurationMinutes+1)

	for minutes := openMinutes; minutes < closeMinutes; minutes += cfg.SlotDurationMinutes {
		slotStart := dayStart.Add(time.Duration(minutes) * time.Minute)
		slots = append(slots, domain.ScheduleSlot{
			StartTime:       slotStart,
			DurationMinutes: cfg.SlotDurationMinutes,
			Status:          slotStatus(slotStart, room, bookings, now),
		})
	}

	// Замыкающий слот нулевой ширины на границе закрытия
	closeStart := dayStart.Add(time.Duration(closeMinutes) * time.Minute)
	slots = append(slots, domain.ScheduleSlot{
		StartTime:       closeStart,
		DurationMinutes: 0,
		Status:          slotStatus(closeStart, room, bookings, now),
	})

	return slots, nil
}

// slotStatus определяет статус слота по принадлежности его начала
// интервалу какого-либо conflict-relevant бронирования комнаты
func slotStatus(slotStart time.Time, room *domain.Room, bookings []*domain.Booking, now time.Time) domain.SlotStatus {
	for _, b := range bookings {
		if !b.MatchesRoom(room) {
			continue
		}
		if !b.IsConflictRelevant(now) {
			continue
		}
		// slotStart ∈ [b.StartTime, b.EndTime)
		if !slotStart.Before(b.StartTime) && slotStart.Before(b.EndTime) {
			return domain.SlotBooked
		}
	}
	return domain.SlotFree
}

// parseHHMM парсит "HH:MM" в минуты от полуночи
func parseHHMM(s string) (int, error) {
	t, err := time.Parse(domain.TimeFormat, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
