package get_available_rooms

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// FilterAvailableRooms возвращает комнаты, свободные на полуоткрытом
// интервале [reqStart, reqEnd). Чистая функция: порядок входного каталога
// сохраняется, входные слайсы не модифицируются, часы не читаются -
// текущее время передается явно.
//
// Комната свободна, если:
//  1. она проходит административный гейтинг (working и is_available) -
//     комната на обслуживании исключается независимо от бронирований;
//  2. ни одно conflict-relevant бронирование этой комнаты не пересекает
//     запрошенный интервал.
//
// Пересечение считается по строгим неравенствам: бронирования впритык
// (reqEnd == b.StartTime или reqStart == b.EndTime) конфликтом не являются.
func FilterAvailableRooms(
	rooms []*domain.Room,
	bookings []*domain.Booking,
	reqStart, reqEnd time.Time,
	now time.Time,
) []*domain.Room {
	available := make([]*domain.Room, 0, len(rooms))

	for _, room := range rooms {
		if !room.IsBookable() {
			continue
		}
		if hasConflict(room, bookings, reqStart, reqEnd, now) {
			continue
		}
		available = append(available, room)
	}

	return available
}

// hasConflict проверяет, есть ли у комнаты конфликтующее бронирование
func hasConflict(
	room *domain.Room,
	bookings []*domain.Booking,
	reqStart, reqEnd time.Time,
	now time.Time,
) bool {
	for _, b := range bookings {
		if !b.MatchesRoom(room) {
			continue
		}
		if !b.IsConflictRelevant(now) {
			continue
		}
		if b.Overlaps(reqStart, reqEnd) {
			return true
		}
	}
	return false
}
