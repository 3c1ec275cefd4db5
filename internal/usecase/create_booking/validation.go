package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// validateRequest валидирует запрос в фиксированном порядке, каждая проверка
// падает со своей ошибкой:
//  1. тема встречи непуста после trim
//  2. комната выбрана
//  3. начало строго раньше конца
//  4. начало не в прошлом относительно now
//
// Проверка конфликта комнаты (п.5 контракта) выполняется отдельно внутри
// сериализуемой транзакции, см. usecase.go.
func validateRequest(req *Request, now time.Time) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrMissingTitle
	}

	if req.RoomID <= 0 {
		return ErrMissingRoom
	}

	if !req.StartTime.Before(req.EndTime) {
		return ErrInvalidInterval
	}

	if req.StartTime.Before(now) {
		return ErrPastStartTime
	}

	if strings.TrimSpace(req.OrganizerCode) == "" {
		return fmt.Errorf("%w: organizerCode is required", ErrInvalidInput)
	}

	if len(strings.TrimSpace(req.Title)) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	return nil
}

// normalizeAttendees возвращает список участников с гарантированным
// включением организатора и без дубликатов. Отсутствие организатора
// в списке - не ошибка: он добавляется автоматически, порядок
// остальных участников сохраняется.
func normalizeAttendees(organizerCode string, attendeeCodes []string) []string {
	normalized := make([]string, 0, len(attendeeCodes)+1)
	seen := make(map[string]struct{}, len(attendeeCodes)+1)

	for _, code := range attendeeCodes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		normalized = append(normalized, code)
	}

	if _, ok := seen[organizerCode]; !ok {
		normalized = append(normalized, organizerCode)
	}

	return normalized
}

// hasRoomConflict проверяет, пересекает ли какое-либо conflict-relevant
// бронирование комнаты полуоткрытый интервал [reqStart, reqEnd).
// Тот же overlap-примитив, что и в get_available_rooms.
func hasRoomConflict(
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
