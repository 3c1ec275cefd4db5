package create_booking

import "errors"

var (
	// ErrMissingTitle возвращается, когда тема встречи пуста после trim
	ErrMissingTitle = errors.New("create_booking: title is required")

	// ErrMissingRoom возвращается, когда комната не выбрана
	ErrMissingRoom = errors.New("create_booking: room is required")

	// ErrInvalidInterval возвращается, когда конец интервала не позже начала
	ErrInvalidInterval = errors.New("create_booking: end time must be after start time")

	// ErrPastStartTime возвращается, когда начало встречи в прошлом.
	// UI ограничивает date picker сегодняшним днем, но ограничение обходится,
	// поэтому проверка обязана повторяться здесь.
	ErrPastStartTime = errors.New("create_booking: start time is in the past")

	// ErrRoomConflict возвращается, когда комната занята на запрошенный интервал
	ErrRoomConflict = errors.New("create_booking: room is already booked for this interval")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomUnavailable возвращается, когда комната снята с бронирования
	// админ-сервисом (обслуживание или флаг занятости)
	ErrRoomUnavailable = errors.New("create_booking: room is not bookable")

	// ErrOrganizerNotFound возвращается, когда организатор не найден в PersonnelService
	ErrOrganizerNotFound = errors.New("create_booking: organizer not found")

	// ErrAttendeeNotFound возвращается, когда участник не найден в PersonnelService
	ErrAttendeeNotFound = errors.New("create_booking: attendee not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
