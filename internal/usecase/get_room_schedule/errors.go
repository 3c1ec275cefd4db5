package get_room_schedule

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("get_room_schedule: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_room_schedule: invalid input data")

	// ErrInvalidBusinessHours возвращается при некорректной конфигурации рабочих часов
	ErrInvalidBusinessHours = errors.New("get_room_schedule: invalid business hours configuration")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_room_schedule: internal error")
)
