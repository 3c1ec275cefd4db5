package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/booking"
	personnelClient "github.com/m04kA/SMC-MeetingRoomService/internal/integrations/personnelservice"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями переговорных
type Service struct {
	bookingRepo     BookingRepository
	personnelClient PersonnelServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepository BookingRepository,
	personnel PersonnelServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:     bookingRepository,
		personnelClient: personnel,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, s.timeProvider.Now()), nil
}

// List получает бронирования с гибкой фильтрацией (период, статус,
// включение отмененных)
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, includeInactive=%t", req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings, s.timeProvider.Now()), nil
}

// GetEmployeeBookings получает бронирования сотрудника.
// Сотрудник числится участником каждой своей встречи (организатор
// включается в участники при создании), поэтому достаточно фильтра
// по attendee_codes.
func (s *Service) GetEmployeeBookings(ctx context.Context, req *models.GetEmployeeBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetEmployeeBookings: employee=%s", req.EmployeeCode)

	if strings.TrimSpace(req.EmployeeCode) == "" {
		return nil, fmt.Errorf("%w: employeeCode is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		AttendeeCode:    &req.EmployeeCode,
		IncludeInactive: req.IncludeInactive,
	})
	if err != nil {
		s.logger.Error("GetEmployeeBookings: repository error for employee=%s: %v", req.EmployeeCode, err)
		return nil, fmt.Errorf("%w: GetEmployeeBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetEmployeeBookings: fetched %d bookings for employee=%s", len(bookings), req.EmployeeCode)
	return models.FromDomainBookingList(bookings, s.timeProvider.Now()), nil
}

// GetDepartmentBookings получает бронирования, организованные сотрудниками
// отдела. Доступно только менеджеру отдела.
func (s *Service) GetDepartmentBookings(ctx context.Context, req *models.GetDepartmentBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetDepartmentBookings: department=%d, requester=%s", req.DepartmentID, req.RequesterCode)

	department, err := s.personnelClient.GetDepartment(ctx, req.DepartmentID)
	if err != nil {
		if errors.Is(err, personnelClient.ErrDepartmentNotFound) {
			s.logger.Warn("GetDepartmentBookings: department id=%d not found", req.DepartmentID)
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("GetDepartmentBookings: failed to get department id=%d: %v", req.DepartmentID, err)
		return nil, fmt.Errorf("%w: failed to get department: %v", ErrInternal, err)
	}

	if !department.IsManager(req.RequesterCode) {
		s.logger.Warn("GetDepartmentBookings: access denied for requester=%s to department=%d",
			req.RequesterCode, req.DepartmentID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		IncludeInactive: req.IncludeInactive,
	})
	if err != nil {
		s.logger.Error("GetDepartmentBookings: repository error for department=%d: %v", req.DepartmentID, err)
		return nil, fmt.Errorf("%w: GetDepartmentBookings - repository error: %v", ErrInternal, err)
	}

	// Оставляем бронирования, организованные сотрудниками отдела
	members := make(map[string]struct{}, len(department.MemberCodes))
	for _, code := range department.MemberCodes {
		members[code] = struct{}{}
	}

	departmental := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := members[b.OrganizerCode]; ok {
			departmental = append(departmental, b)
		}
	}

	s.logger.Info("GetDepartmentBookings: fetched %d bookings for department=%d", len(departmental), req.DepartmentID)
	return models.FromDomainBookingList(departmental, s.timeProvider.Now()), nil
}

// Cancel отменяет бронирование с обязательной причиной.
// Отменить может организатор или менеджер отдела организатора.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by employee=%s", bookingID, req.EmployeeCode)

	if strings.TrimSpace(req.Reason) == "" {
		s.logger.Warn("Cancel: missing reason for booking id=%d", bookingID)
		return ErrReasonRequired
	}

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if booking.OrganizerCode != req.EmployeeCode {
		if err := s.checkManagerAccess(ctx, booking.OrganizerCode, req.EmployeeCode); err != nil {
			s.logger.Warn("Cancel: access denied for employee=%s to booking id=%d", req.EmployeeCode, bookingID)
			return err
		}
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.Reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled by employee=%s", bookingID, req.EmployeeCode)
	return nil
}

// checkManagerAccess проверяет, что requester является менеджером отдела,
// в котором числится организатор бронирования
func (s *Service) checkManagerAccess(ctx context.Context, organizerCode, requesterCode string) error {
	organizer, err := s.personnelClient.GetEmployee(ctx, organizerCode)
	if err != nil {
		if errors.Is(err, personnelClient.ErrEmployeeNotFound) {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: failed to get organizer: %v", ErrInternal, err)
	}

	department, err := s.personnelClient.GetDepartment(ctx, organizer.DepartmentID)
	if err != nil {
		if errors.Is(err, personnelClient.ErrDepartmentNotFound) {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: failed to get department: %v", ErrInternal, err)
	}

	if !department.IsManager(requesterCode) {
		return ErrAccessDenied
	}

	return nil
}
