package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// BookingResponse модель бронирования для ответа сервиса.
// EffectiveStatus всегда пересчитывается от текущего времени -
// хранимый Status для отображения статуса встречи не используется.
type BookingResponse struct {
	ID                 int64
	RoomID             *int64
	RoomName           string
	Title              string
	Description        *string
	StartTime          time.Time
	EndTime            time.Time
	OrganizerCode      string
	AttendeeCodes      []string
	Status             string
	EffectiveStatus    string
	CancellationReason *string
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
	Total    int
}

// FromDomainBooking конвертирует domain модель в ответ сервиса
func FromDomainBooking(b *domain.Booking, now time.Time) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		RoomID:             b.RoomID,
		RoomName:           b.RoomName,
		Title:              b.Title,
		Description:        b.Description,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		OrganizerCode:      b.OrganizerCode,
		AttendeeCodes:      b.AttendeeCodes,
		Status:             string(b.Status),
		EffectiveStatus:    string(b.EffectiveStatus(now)),
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в ответ сервиса
func FromDomainBookingList(bookings []*domain.Booking, now time.Time) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b, now))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainBookingStatus конвертирует строковый статус в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted:
		return domain.BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %q", s)
	}
}

// ListBookingsRequest запрос списка бронирований с фильтрацией
type ListBookingsRequest struct {
	From            *time.Time
	To              *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:       r.From,
		EndDate:         r.To,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// GetEmployeeBookingsRequest запрос бронирований сотрудника
// (как организатора или участника)
type GetEmployeeBookingsRequest struct {
	EmployeeCode    string
	IncludeInactive bool
}

// GetDepartmentBookingsRequest запрос бронирований отдела (для менеджера)
type GetDepartmentBookingsRequest struct {
	DepartmentID    int64
	RequesterCode   string
	IncludeInactive bool
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	EmployeeCode string
	Reason       string
}
