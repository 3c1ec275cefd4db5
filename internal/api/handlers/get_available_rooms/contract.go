package get_available_rooms

import (
	"context"

	availableRooms "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/get_available_rooms"
)

type GetAvailableRoomsUseCase interface {
	Execute(ctx context.Context, req *availableRooms.Request) (*availableRooms.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
