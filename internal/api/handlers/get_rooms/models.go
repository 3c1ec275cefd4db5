package get_rooms

import (
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/rooms"
)

// RoomResponse HTTP response model
type RoomResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	Location    string  `json:"location"`
	Equipment   *string `json:"equipment,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
	Working     bool    `json:"working"`
}

// RoomListResponse HTTP response model списка комнат
type RoomListResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
	Total int             `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *rooms.RoomListResponse) *RoomListResponse {
	result := make([]*RoomResponse, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		result = append(result, &RoomResponse{
			ID:          r.ID,
			Name:        r.Name,
			Capacity:    r.Capacity,
			Location:    r.Location,
			Equipment:   r.Equipment,
			IsAvailable: r.IsAvailable,
			Working:     r.Working,
		})
	}
	return &RoomListResponse{Rooms: result, Total: resp.Total}
}
