package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrAccessDenied возвращается при попытке операции без прав доступа
	ErrAccessDenied = errors.New("bookings.service: access denied")

	// ErrCannotCancel возвращается, когда бронирование нельзя отменить
	// (уже отменено или завершено)
	ErrCannotCancel = errors.New("bookings.service: booking cannot be cancelled")

	// ErrReasonRequired возвращается при отмене без указания причины
	ErrReasonRequired = errors.New("bookings.service: cancellation reason is required")

	// ErrDepartmentNotFound возвращается, когда отдел не найден
	ErrDepartmentNotFound = errors.New("bookings.service: department not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
