package create_booking

import (
	"fmt"
	"time"

	createBooking "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/datetime"
)

// CreateBookingRequest HTTP request model.
// Времена принимаются и в ISO-8601, и в legacy формате "HH:mm:ss dd/MM/yyyy"
type CreateBookingRequest struct {
	RoomID        int64    `json:"roomId"`
	Title         string   `json:"title"`
	Description   *string  `json:"description,omitempty"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	AttendeeCodes []string `json:"attendeeCodes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64    `json:"id"`
	RoomID        int64    `json:"roomId"`
	RoomName      string   `json:"roomName"`
	Title         string   `json:"title"`
	Description   *string  `json:"description,omitempty"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	OrganizerCode string   `json:"organizerCode"`
	AttendeeCodes []string `json:"attendeeCodes"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Код организатора берется из auth контекста, не из тела запроса.
func (r *CreateBookingRequest) ToUseCaseRequest(organizerCode string) (*createBooking.Request, error) {
	start, err := datetime.ParseInstant(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}
	if start == nil {
		return nil, fmt.Errorf("startTime: %w", datetime.ErrMalformed)
	}

	end, err := datetime.ParseInstant(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}
	if end == nil {
		return nil, fmt.Errorf("endTime: %w", datetime.ErrMalformed)
	}

	return &createBooking.Request{
		RoomID:        r.RoomID,
		Title:         r.Title,
		Description:   r.Description,
		StartTime:     *start,
		EndTime:       *end,
		OrganizerCode: organizerCode,
		AttendeeCodes: r.AttendeeCodes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		RoomID:        resp.RoomID,
		RoomName:      resp.RoomName,
		Title:         resp.Title,
		Description:   resp.Description,
		StartTime:     resp.StartTime.Format(time.RFC3339),
		EndTime:       resp.EndTime.Format(time.RFC3339),
		OrganizerCode: resp.OrganizerCode,
		AttendeeCodes: resp.AttendeeCodes,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
