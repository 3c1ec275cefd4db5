package create_booking

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// Request модель запроса на создание бронирования.
// Интервал полуоткрытый: [StartTime, EndTime).
type Request struct {
	RoomID        int64
	Title         string
	Description   *string
	StartTime     time.Time
	EndTime       time.Time
	OrganizerCode string   // Код сотрудника-организатора (из auth контекста)
	AttendeeCodes []string // Участники; организатор добавляется автоматически
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	RoomID        int64
	RoomName      string
	Title         string
	Description   *string
	StartTime     time.Time
	EndTime       time.Time
	OrganizerCode string
	AttendeeCodes []string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func fromDomain(b *domain.Booking) *Response {
	var roomID int64
	if b.RoomID != nil {
		roomID = *b.RoomID
	}

	return &Response{
		ID:            b.ID,
		RoomID:        roomID,
		RoomName:      b.RoomName,
		Title:         b.Title,
		Description:   b.Description,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		OrganizerCode: b.OrganizerCode,
		AttendeeCodes: b.AttendeeCodes,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
