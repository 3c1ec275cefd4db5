package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("rooms.service: room not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rooms.service: internal error")
)
