package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
)

func interval(h1, m1, h2, m2 int) (time.Time, time.Time) {
	day := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
	return day.Add(time.Duration(h1)*time.Hour + time.Duration(m1)*time.Minute),
		day.Add(time.Duration(h2)*time.Hour + time.Duration(m2)*time.Minute)
}

func TestBooking_Overlaps(t *testing.T) {
	start, end := interval(10, 0, 11, 0)
	b := &domain.Booking{StartTime: start, EndTime: end}

	cases := []struct {
		name     string
		sh, sm   int
		eh, em   int
		overlaps bool
	}{
		{"adjacent before", 9, 0, 10, 0, false},
		{"adjacent after", 11, 0, 12, 0, false},
		{"nested", 10, 30, 10, 45, true},
		{"partial left", 9, 30, 10, 30, true},
		{"partial right", 10, 30, 11, 30, true},
		{"covering", 9, 0, 12, 0, true},
		{"identical", 10, 0, 11, 0, true},
		{"disjoint before", 8, 0, 9, 0, false},
		{"disjoint after", 12, 0, 13, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reqStart, reqEnd := interval(tc.sh, tc.sm, tc.eh, tc.em)
			assert.Equal(t, tc.overlaps, b.Overlaps(reqStart, reqEnd))
		})
	}
}

func TestBooking_EffectiveStatus(t *testing.T) {
	start, end := interval(10, 0, 11, 0)
	b := &domain.Booking{StartTime: start, EndTime: end, Status: domain.StatusConfirmed}

	before, _ := interval(9, 0, 9, 0)
	during, _ := interval(10, 30, 10, 30)
	after, _ := interval(12, 0, 12, 0)

	assert.Equal(t, domain.EffectiveUpcoming, b.EffectiveStatus(before))
	assert.Equal(t, domain.EffectiveInProgress, b.EffectiveStatus(during))
	assert.Equal(t, domain.EffectiveCompleted, b.EffectiveStatus(after))

	// Границы окна in-progress включительны с обеих сторон
	assert.Equal(t, domain.EffectiveInProgress, b.EffectiveStatus(start))
	assert.Equal(t, domain.EffectiveInProgress, b.EffectiveStatus(end))
}

func TestBooking_EffectiveStatus_StickyTerminalStates(t *testing.T) {
	start, end := interval(10, 0, 11, 0)
	before, _ := interval(9, 0, 9, 0)

	cancelled := &domain.Booking{StartTime: start, EndTime: end, Status: domain.StatusCancelled}
	assert.Equal(t, domain.EffectiveCancelled, cancelled.EffectiveStatus(before))
	assert.False(t, cancelled.IsConflictRelevant(before))

	completed := &domain.Booking{StartTime: start, EndTime: end, Status: domain.StatusCompleted}
	assert.Equal(t, domain.EffectiveCompleted, completed.EffectiveStatus(before))
	assert.False(t, completed.IsConflictRelevant(before))
}

func TestBooking_MatchesRoom(t *testing.T) {
	room := &domain.Room{ID: 7, Name: "Jupiter"}

	byID := &domain.Booking{RoomID: ptr.Ptr(int64(7)), RoomName: "stale name"}
	assert.True(t, byID.MatchesRoom(room), "id wins over name")

	otherID := &domain.Booking{RoomID: ptr.Ptr(int64(8)), RoomName: "Jupiter"}
	assert.False(t, otherID.MatchesRoom(room), "id mismatch must not fall back to name")

	legacy := &domain.Booking{RoomName: "Jupiter"}
	assert.True(t, legacy.MatchesRoom(room), "name shim applies only without id")
}
