package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-MeetingRoomService/internal/integrations/personnelservice"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings/models"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
)

var day = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, time.UTC)
}

type bookingRepoStub struct {
	bookings     []*domain.Booking
	getByIDErr   error
	filterErr    error
	cancelErr    error
	cancelledID  int64
	cancelReason string
	lastFilter   domain.BookingsFilter
}

func (s *bookingRepoStub) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if s.getByIDErr != nil {
		return nil, s.getByIDErr
	}
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (s *bookingRepoStub) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if s.filterErr != nil {
		return nil, s.filterErr
	}
	s.lastFilter = filter
	return s.bookings, nil
}

func (s *bookingRepoStub) Cancel(_ context.Context, id int64, reason string) error {
	if s.cancelErr != nil {
		return s.cancelErr
	}
	s.cancelledID = id
	s.cancelReason = reason
	return nil
}

type personnelStub struct {
	employees   map[string]*personnelservice.Employee
	departments map[int64]*personnelservice.Department
}

func (s *personnelStub) GetEmployee(_ context.Context, code string) (*personnelservice.Employee, error) {
	if e, ok := s.employees[code]; ok {
		return e, nil
	}
	return nil, personnelservice.ErrEmployeeNotFound
}

func (s *personnelStub) GetDepartment(_ context.Context, id int64) (*personnelservice.Department, error) {
	if d, ok := s.departments[id]; ok {
		return d, nil
	}
	return nil, personnelservice.ErrDepartmentNotFound
}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func upcomingBooking(id int64, organizer string) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		RoomID:        ptr.Ptr(int64(1)),
		RoomName:      "Переговорная 1",
		Title:         "Планирование спринта",
		StartTime:     at(14, 0),
		EndTime:       at(15, 0),
		OrganizerCode: organizer,
		AttendeeCodes: []string{organizer},
		Status:        domain.StatusConfirmed,
	}
}

func newTestService(repo *bookingRepoStub, personnel *personnelStub) *Service {
	svc := NewService(repo, personnel, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: at(10, 0)}
	return svc
}

func TestService_GetByID(t *testing.T) {
	repo := &bookingRepoStub{bookings: []*domain.Booking{upcomingBooking(7, "E001")}}
	svc := newTestService(repo, &personnelStub{})

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, string(domain.EffectiveUpcoming), resp.EffectiveStatus)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := newTestService(&bookingRepoStub{}, &personnelStub{})

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_List_StatusFilter(t *testing.T) {
	repo := &bookingRepoStub{bookings: []*domain.Booking{upcomingBooking(1, "E001")}}
	svc := newTestService(repo, &personnelStub{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastFilter.Status)
}

func TestService_List_UnknownStatus(t *testing.T) {
	svc := newTestService(&bookingRepoStub{}, &personnelStub{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("postponed"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetEmployeeBookings_FiltersByAttendee(t *testing.T) {
	repo := &bookingRepoStub{bookings: []*domain.Booking{upcomingBooking(1, "E001")}}
	svc := newTestService(repo, &personnelStub{})

	resp, err := svc.GetEmployeeBookings(context.Background(), &models.GetEmployeeBookingsRequest{
		EmployeeCode: "E001",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.lastFilter.AttendeeCode)
	assert.Equal(t, "E001", *repo.lastFilter.AttendeeCode)
}

func TestService_GetEmployeeBookings_EmptyCode(t *testing.T) {
	svc := newTestService(&bookingRepoStub{}, &personnelStub{})

	_, err := svc.GetEmployeeBookings(context.Background(), &models.GetEmployeeBookingsRequest{
		EmployeeCode: "   ",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetDepartmentBookings_ManagerOnly(t *testing.T) {
	repo := &bookingRepoStub{bookings: []*domain.Booking{
		upcomingBooking(1, "E001"),
		upcomingBooking(2, "E999"),
	}}
	personnel := &personnelStub{
		departments: map[int64]*personnelservice.Department{
			10: {ID: 10, Name: "Разработка", ManagerCode: "M001", MemberCodes: []string{"E001", "M001"}},
		},
	}
	svc := newTestService(repo, personnel)

	resp, err := svc.GetDepartmentBookings(context.Background(), &models.GetDepartmentBookingsRequest{
		DepartmentID:  10,
		RequesterCode: "M001",
	})
	require.NoError(t, err)

	// E999 не состоит в отделе, его встреча отфильтрована
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "E001", resp.Bookings[0].OrganizerCode)
}

func TestService_GetDepartmentBookings_AccessDenied(t *testing.T) {
	personnel := &personnelStub{
		departments: map[int64]*personnelservice.Department{
			10: {ID: 10, ManagerCode: "M001", MemberCodes: []string{"E001"}},
		},
	}
	svc := newTestService(&bookingRepoStub{}, personnel)

	_, err := svc.GetDepartmentBookings(context.Background(), &models.GetDepartmentBookingsRequest{
		DepartmentID:  10,
		RequesterCode: "E001",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetDepartmentBookings_DepartmentNotFound(t *testing.T) {
	svc := newTestService(&bookingRepoStub{}, &personnelStub{})

	_, err := svc.GetDepartmentBookings(context.Background(), &models.GetDepartmentBookingsRequest{
		DepartmentID:  42,
		RequesterCode: "M001",
	})
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}

func TestService_Cancel_ByOrganizer(t *testing.T) {
	repo := &bookingRepoStub{bookings: []*domain.Booking{upcomingBooking(5, "E001")}}
	svc := newTestService(repo, &personnelStub{})

	err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{
		EmployeeCode: "E001",
		Reason:       "Встреча перенесена",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), repo.cancelledID)
	assert.Equal(t, "Встреча перенесена", repo.cancelReason)
}

func TestService_Cancel_ByManager(t *testing.T) {
	repo := &bookingRepoStub{bookings: []*domain.Booking{upcomingBooking(5, "E001")}}
	personnel := &personnelStub{
		employees: map[string]*personnelservice.Employee{
			"E001": {Code: "E001", DepartmentID: 10, Active: true},
		},
		departments: map[int64]*personnelservice.Department{
			10: {ID: 10, ManagerCode: "M001", MemberCodes: []string{"E001", "M001"}},
		},
	}
	svc := newTestService(repo, personnel)

	err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{
		EmployeeCode: "M001",
		Reason:       "Комната нужна для собеседования",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), repo.cancelledID)
}

func TestService_Cancel_AccessDenied(t *testing.T) {
	repo := &bookingRepoStub{bookings: []*domain.Booking{upcomingBooking(5, "E001")}}
	personnel := &personnelStub{
		employees: map[string]*personnelservice.Employee{
			"E001": {Code: "E001", DepartmentID: 10, Active: true},
		},
		departments: map[int64]*personnelservice.Department{
			10: {ID: 10, ManagerCode: "M001", MemberCodes: []string{"E001"}},
		},
	}
	svc := newTestService(repo, personnel)

	err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{
		EmployeeCode: "E777",
		Reason:       "Хочу эту комнату",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID)
}

func TestService_Cancel_ReasonRequired(t *testing.T) {
	repo := &bookingRepoStub{bookings: []*domain.Booking{upcomingBooking(5, "E001")}}
	svc := newTestService(repo, &personnelStub{})

	err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{
		EmployeeCode: "E001",
		Reason:       "  ",
	})
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	cancelled := upcomingBooking(5, "E001")
	cancelled.Status = domain.StatusCancelled
	repo := &bookingRepoStub{bookings: []*domain.Booking{cancelled}}
	svc := newTestService(repo, &personnelStub{})

	err := svc.Cancel(context.Background(), 5, &models.CancelBookingRequest{
		EmployeeCode: "E001",
		Reason:       "Повторная отмена",
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_Cancel_NotFound(t *testing.T) {
	svc := newTestService(&bookingRepoStub{}, &personnelStub{})

	err := svc.Cancel(context.Background(), 404, &models.CancelBookingRequest{
		EmployeeCode: "E001",
		Reason:       "Причина",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
