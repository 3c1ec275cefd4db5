package get_available_rooms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
)

var day = time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func bookableRoom(id int64, name string) *domain.Room {
	return &domain.Room{ID: id, Name: name, Capacity: 8, Working: true, IsAvailable: true}
}

func confirmedBooking(roomID int64, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		RoomID:    ptr.Ptr(roomID),
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusConfirmed,
	}
}

// Room A занята 10:00-11:00; запросы из примера спецификации поведения
func TestFilterAvailableRooms_OverlapCases(t *testing.T) {
	roomA := bookableRoom(1, "A")
	bookings := []*domain.Booking{confirmedBooking(1, at(10, 0), at(11, 0))}
	now := at(8, 0)

	cases := []struct {
		name      string
		start     time.Time
		end       time.Time
		available bool
	}{
		{"adjacent before is free", at(9, 0), at(10, 0), true},
		{"adjacent after is free", at(11, 0), at(12, 0), true},
		{"nested overlap conflicts", at(10, 30), at(10, 45), false},
		{"partial overlap conflicts", at(9, 30), at(10, 30), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterAvailableRooms([]*domain.Room{roomA}, bookings, tc.start, tc.end, now)
			if tc.available {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestFilterAvailableRooms_AdministrativeGating(t *testing.T) {
	now := at(8, 0)

	maintenance := bookableRoom(1, "A")
	maintenance.Working = false

	occupied := bookableRoom(2, "B")
	occupied.IsAvailable = false

	// Без единого бронирования обе комнаты все равно исключаются
	got := FilterAvailableRooms([]*domain.Room{maintenance, occupied}, nil, at(9, 0), at(10, 0), now)
	assert.Empty(t, got)
}

func TestFilterAvailableRooms_CancelledNeverConflicts(t *testing.T) {
	roomA := bookableRoom(1, "A")
	cancelled := confirmedBooking(1, at(10, 0), at(11, 0))
	cancelled.Status = domain.StatusCancelled

	got := FilterAvailableRooms([]*domain.Room{roomA}, []*domain.Booking{cancelled}, at(10, 0), at(11, 0), at(8, 0))
	assert.Len(t, got, 1)
}

func TestFilterAvailableRooms_PastBookingNotConflictRelevant(t *testing.T) {
	roomA := bookableRoom(1, "A")
	// Встреча 08:00-09:00 давно закончилась к 12:00: эффективный статус
	// completed, для будущего запроса она не считается
	past := confirmedBooking(1, at(8, 0), at(9, 0))

	got := FilterAvailableRooms([]*domain.Room{roomA}, []*domain.Booking{past}, at(8, 0), at(9, 0), at(12, 0))
	assert.Len(t, got, 1)
}

func TestFilterAvailableRooms_OrderStableAndIdempotent(t *testing.T) {
	rooms := []*domain.Room{
		bookableRoom(3, "C"),
		bookableRoom(1, "A"),
		bookableRoom(2, "B"),
	}
	bookings := []*domain.Booking{confirmedBooking(1, at(10, 0), at(11, 0))}
	now := at(8, 0)

	first := FilterAvailableRooms(rooms, bookings, at(10, 0), at(11, 0), now)
	second := FilterAvailableRooms(rooms, bookings, at(10, 0), at(11, 0), now)

	require.Len(t, first, 2)
	assert.Equal(t, int64(3), first[0].ID, "catalog order preserved, no implicit sort")
	assert.Equal(t, int64(2), first[1].ID)
	assert.Equal(t, first, second)
}

func TestFilterAvailableRooms_LegacyNameMatching(t *testing.T) {
	roomA := bookableRoom(1, "Jupiter")

	legacy := &domain.Booking{
		RoomName:  "Jupiter", // легаси-запись без room_id
		StartTime: at(10, 0),
		EndTime:   at(11, 0),
		Status:    domain.StatusConfirmed,
	}

	got := FilterAvailableRooms([]*domain.Room{roomA}, []*domain.Booking{legacy}, at(10, 30), at(11, 30), at(8, 0))
	assert.Empty(t, got, "name shim must still detect the conflict")
}
