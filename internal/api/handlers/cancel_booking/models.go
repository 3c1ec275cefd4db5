package cancel_booking

import (
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(employeeCode string) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		EmployeeCode: employeeCode,
		Reason:       r.Reason,
	}
}
