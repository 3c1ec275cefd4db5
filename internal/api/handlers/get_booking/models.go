package get_booking

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64    `json:"id"`
	RoomID             *int64   `json:"roomId,omitempty"`
	RoomName           string   `json:"roomName"`
	Title              string   `json:"title"`
	Description        *string  `json:"description,omitempty"`
	StartTime          string   `json:"startTime"`
	EndTime            string   `json:"endTime"`
	OrganizerCode      string   `json:"organizerCode"`
	AttendeeCodes      []string `json:"attendeeCodes"`
	Status             string   `json:"status"`
	EffectiveStatus    string   `json:"effectiveStatus"`
	CancellationReason *string  `json:"cancellationReason,omitempty"`
	CancelledAt        *string  `json:"cancelledAt,omitempty"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	var cancelledAt *string
	if resp.CancelledAt != nil {
		s := resp.CancelledAt.Format(time.RFC3339)
		cancelledAt = &s
	}

	return &BookingResponse{
		ID:                 resp.ID,
		RoomID:             resp.RoomID,
		RoomName:           resp.RoomName,
		Title:              resp.Title,
		Description:        resp.Description,
		StartTime:          resp.StartTime.Format(time.RFC3339),
		EndTime:            resp.EndTime.Format(time.RFC3339),
		OrganizerCode:      resp.OrganizerCode,
		AttendeeCodes:      resp.AttendeeCodes,
		Status:             resp.Status,
		EffectiveStatus:    resp.EffectiveStatus,
		CancellationReason: resp.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
