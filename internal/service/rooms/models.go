package rooms

import (
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// RoomResponse модель комнаты для ответа сервиса
type RoomResponse struct {
	ID          int64
	Name        string
	Capacity    int
	Location    string
	Equipment   *string
	IsAvailable bool
	Working     bool
}

// RoomListResponse список комнат каталога
type RoomListResponse struct {
	Rooms []*RoomResponse
	Total int
}

func fromDomainRoom(r *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:          r.ID,
		Name:        r.Name,
		Capacity:    r.Capacity,
		Location:    r.Location,
		Equipment:   r.Equipment,
		IsAvailable: r.IsAvailable,
		Working:     r.Working,
	}
}
