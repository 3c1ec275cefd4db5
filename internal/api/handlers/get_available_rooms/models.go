package get_available_rooms

import (
	"time"

	availableRooms "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/get_available_rooms"
)

// RoomResponse HTTP response model свободной комнаты
type RoomResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Capacity  int     `json:"capacity"`
	Location  string  `json:"location"`
	Equipment *string `json:"equipment,omitempty"`
}

// AvailableRoomsResponse HTTP response model со свободными комнатами
// на запрошенный интервал
type AvailableRoomsResponse struct {
	StartTime string          `json:"startTime"`
	EndTime   string          `json:"endTime"`
	Rooms     []*RoomResponse `json:"rooms"`
	Total     int             `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *availableRooms.Response) *AvailableRoomsResponse {
	result := make([]*RoomResponse, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		result = append(result, &RoomResponse{
			ID:        r.ID,
			Name:      r.Name,
			Capacity:  r.Capacity,
			Location:  r.Location,
			Equipment: r.Equipment,
		})
	}

	return &AvailableRoomsResponse{
		StartTime: resp.StartTime.Format(time.RFC3339),
		EndTime:   resp.EndTime.Format(time.RFC3339),
		Rooms:     result,
		Total:     len(result),
	}
}
