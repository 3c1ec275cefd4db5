package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	roomStorage "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/room"
	"github.com/m04kA/SMC-MeetingRoomService/internal/integrations/personnelservice"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
)

type roomRepoStub struct {
	room *domain.Room
	err  error
}

func (s *roomRepoStub) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.room, nil
}

type bookingRepoStub struct {
	bookings []*domain.Booking
	created  *domain.Booking
	err      error
}

func (s *bookingRepoStub) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return s.bookings, s.err
}

func (s *bookingRepoStub) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	booking.ID = 100
	s.created = booking
	return booking, nil
}

type personnelStub struct {
	missing map[string]bool
	degraded bool
}

func (s *personnelStub) GetEmployee(ctx context.Context, code string) (*personnelservice.Employee, error) {
	if s.missing[code] {
		return nil, personnelservice.ErrEmployeeNotFound
	}
	return &personnelservice.Employee{Code: code, Active: true}, nil
}

func (s *personnelStub) GetEmployeeWithGracefulDegradation(ctx context.Context, code string) (*personnelservice.Employee, error) {
	if s.missing[code] {
		return nil, personnelservice.ErrEmployeeNotFound
	}
	if s.degraded {
		return nil, personnelservice.ErrServiceDegraded
	}
	return &personnelservice.Employee{Code: code, Active: true}, nil
}

// fakeTxManager выполняет fn без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(rooms *roomRepoStub, bookings *bookingRepoStub, personnel *personnelStub) *UseCase {
	uc := NewUseCase(rooms, bookings, personnel, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: at(8, 0)}
	return uc
}

func bookableRoom() *domain.Room {
	return &domain.Room{ID: 1, Name: "Jupiter", Capacity: 8, Working: true, IsAvailable: true}
}

func TestUseCase_Execute_Success(t *testing.T) {
	rooms := &roomRepoStub{room: bookableRoom()}
	bookings := &bookingRepoStub{}
	personnel := &personnelStub{}

	uc := newTestUseCase(rooms, bookings, personnel)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(1), resp.RoomID)
	assert.Equal(t, "Jupiter", resp.RoomName, "room name denormalized from catalog")
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, []string{"E002", "E001"}, resp.AttendeeCodes, "organizer auto-included")

	require.NotNil(t, bookings.created)
	require.NotNil(t, bookings.created.RoomID)
	assert.Equal(t, int64(1), *bookings.created.RoomID)
}

func TestUseCase_Execute_RoomConflict(t *testing.T) {
	rooms := &roomRepoStub{room: bookableRoom()}
	bookings := &bookingRepoStub{bookings: []*domain.Booking{{
		RoomID:    ptr.Ptr(int64(1)),
		StartTime: at(10, 30),
		EndTime:   at(11, 30),
		Status:    domain.StatusConfirmed,
	}}}

	uc := newTestUseCase(rooms, bookings, &personnelStub{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomConflict)
	assert.Nil(t, bookings.created)
}

func TestUseCase_Execute_AdjacentBookingDoesNotConflict(t *testing.T) {
	rooms := &roomRepoStub{room: bookableRoom()}
	bookings := &bookingRepoStub{bookings: []*domain.Booking{{
		RoomID:    ptr.Ptr(int64(1)),
		StartTime: at(11, 0), // впритык к запрошенному [10:00, 11:00)
		EndTime:   at(12, 0),
		Status:    domain.StatusConfirmed,
	}}}

	uc := newTestUseCase(rooms, bookings, &personnelStub{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestUseCase_Execute_CancelledBookingDoesNotConflict(t *testing.T) {
	rooms := &roomRepoStub{room: bookableRoom()}
	bookings := &bookingRepoStub{bookings: []*domain.Booking{{
		RoomID:    ptr.Ptr(int64(1)),
		StartTime: at(10, 0),
		EndTime:   at(11, 0),
		Status:    domain.StatusCancelled,
	}}}

	uc := newTestUseCase(rooms, bookings, &personnelStub{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestUseCase_Execute_RoomNotFound(t *testing.T) {
	rooms := &roomRepoStub{err: roomStorage.ErrRoomNotFound}

	uc := newTestUseCase(rooms, &bookingRepoStub{}, &personnelStub{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUseCase_Execute_RoomUnderMaintenance(t *testing.T) {
	room := bookableRoom()
	room.Working = false
	rooms := &roomRepoStub{room: room}

	uc := newTestUseCase(rooms, &bookingRepoStub{}, &personnelStub{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomUnavailable)
}

func TestUseCase_Execute_OrganizerNotFound(t *testing.T) {
	rooms := &roomRepoStub{room: bookableRoom()}
	personnel := &personnelStub{missing: map[string]bool{"E001": true}}

	uc := newTestUseCase(rooms, &bookingRepoStub{}, personnel)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrOrganizerNotFound)
}

func TestUseCase_Execute_AttendeeNotFound(t *testing.T) {
	rooms := &roomRepoStub{room: bookableRoom()}
	personnel := &personnelStub{missing: map[string]bool{"E002": true}}

	uc := newTestUseCase(rooms, &bookingRepoStub{}, personnel)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAttendeeNotFound)
}

func TestUseCase_Execute_PersonnelDegradedDoesNotBlockBooking(t *testing.T) {
	rooms := &roomRepoStub{room: bookableRoom()}
	bookings := &bookingRepoStub{}
	personnel := &personnelStub{degraded: true}

	uc := newTestUseCase(rooms, bookings, personnel)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err, "attendee check degrades gracefully")
	assert.NotNil(t, bookings.created)
}
