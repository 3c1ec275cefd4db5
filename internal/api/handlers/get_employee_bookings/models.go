package get_employee_bookings

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64    `json:"id"`
	RoomID          *int64   `json:"roomId,omitempty"`
	RoomName        string   `json:"roomName"`
	Title           string   `json:"title"`
	Description     *string  `json:"description,omitempty"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	OrganizerCode   string   `json:"organizerCode"`
	AttendeeCodes   []string `json:"attendeeCodes"`
	Status          string   `json:"status"`
	EffectiveStatus string   `json:"effectiveStatus"`
}

// BookingListResponse HTTP response model списка бронирований сотрудника
type BookingListResponse struct {
	EmployeeCode string             `json:"employeeCode"`
	Bookings     []*BookingResponse `json:"bookings"`
	Total        int                `json:"total"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(employeeCode string, resp *models.BookingListResponse) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		result = append(result, &BookingResponse{
			ID:              b.ID,
			RoomID:          b.RoomID,
			RoomName:        b.RoomName,
			Title:           b.Title,
			Description:     b.Description,
			StartTime:       b.StartTime.Format(time.RFC3339),
			EndTime:         b.EndTime.Format(time.RFC3339),
			OrganizerCode:   b.OrganizerCode,
			AttendeeCodes:   b.AttendeeCodes,
			Status:          b.Status,
			EffectiveStatus: b.EffectiveStatus,
		})
	}

	return &BookingListResponse{
		EmployeeCode: employeeCode,
		Bookings:     result,
		Total:        resp.Total,
	}
}
