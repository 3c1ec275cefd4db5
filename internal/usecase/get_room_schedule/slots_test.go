package get_room_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
)

func testConfig() SlotConfig {
	return SlotConfig{
		SlotDurationMinutes: 30,
		BusinessHoursStart:  "08:00",
		BusinessHoursEnd:    "18:00",
		Location:            time.UTC,
	}
}

func slotAt(t *testing.T, slots []domain.ScheduleSlot, h, m int) domain.ScheduleSlot {
	t.Helper()
	for _, s := range slots {
		if s.StartTime.Hour() == h && s.StartTime.Minute() == m {
			return s
		}
	}
	t.Fatalf("no slot at %02d:%02d", h, m)
	return domain.ScheduleSlot{}
}

func TestBuildSlotGrid_Fixture1400To1530(t *testing.T) {
	day := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
	room := &domain.Room{ID: 1, Name: "A", Working: true, IsAvailable: true}
	now := day.Add(7 * time.Hour)

	booking := &domain.Booking{
		RoomID:    ptr.Ptr(int64(1)),
		StartTime: day.Add(14 * time.Hour),
		EndTime:   day.Add(15*time.Hour + 30*time.Minute),
		Status:    domain.StatusConfirmed,
	}

	slots, err := buildSlotGrid(day, testConfig(), room, []*domain.Booking{booking}, now)
	require.NoError(t, err)

	// 20 получасовых слотов 08:00..17:30 плюс замыкающий слот 18:00
	require.Len(t, slots, 21)

	closing := slots[len(slots)-1]
	assert.Equal(t, 18, closing.StartTime.Hour())
	assert.Equal(t, 0, closing.DurationMinutes)
	assert.Equal(t, domain.SlotFree, closing.Status)

	// Правило принадлежности начала слота интервалу [14:00, 15:30):
	// 14:00 и 14:30 внутри; 15:00 тоже внутри (15:00 < 15:30); 15:30 уже нет
	assert.Equal(t, domain.SlotBooked, slotAt(t, slots, 14, 0).Status)
	assert.Equal(t, domain.SlotBooked, slotAt(t, slots, 14, 30).Status)
	assert.Equal(t, domain.SlotBooked, slotAt(t, slots, 15, 0).Status)
	assert.Equal(t, domain.SlotFree, slotAt(t, slots, 15, 30).Status)

	assert.Equal(t, domain.SlotFree, slotAt(t, slots, 13, 30).Status)
	assert.Equal(t, domain.SlotFree, slotAt(t, slots, 16, 0).Status)
}

func TestBuildSlotGrid_CancelledBookingIgnored(t *testing.T) {
	day := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
	room := &domain.Room{ID: 1, Name: "A", Working: true, IsAvailable: true}

	booking := &domain.Booking{
		RoomID:    ptr.Ptr(int64(1)),
		StartTime: day.Add(14 * time.Hour),
		EndTime:   day.Add(15 * time.Hour),
		Status:    domain.StatusCancelled,
	}

	slots, err := buildSlotGrid(day, testConfig(), room, []*domain.Booking{booking}, day.Add(7*time.Hour))
	require.NoError(t, err)

	for _, s := range slots {
		assert.Equal(t, domain.SlotFree, s.Status, "slot %s", s.StartTime.Format("15:04"))
	}
}

func TestBuildSlotGrid_BookingEndingOnSlotBoundary(t *testing.T) {
	day := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
	room := &domain.Room{ID: 1, Name: "A", Working: true, IsAvailable: true}

	// [10:00, 10:30): полуоткрытый конец освобождает слот 10:30
	booking := &domain.Booking{
		RoomID:    ptr.Ptr(int64(1)),
		StartTime: day.Add(10 * time.Hour),
		EndTime:   day.Add(10*time.Hour + 30*time.Minute),
		Status:    domain.StatusConfirmed,
	}

	slots, err := buildSlotGrid(day, testConfig(), room, []*domain.Booking{booking}, day.Add(7*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, domain.SlotBooked, slotAt(t, slots, 10, 0).Status)
	assert.Equal(t, domain.SlotFree, slotAt(t, slots, 10, 30).Status)
}

func TestBuildSlotGrid_InvalidBusinessHours(t *testing.T) {
	day := time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC)
	room := &domain.Room{ID: 1, Name: "A", Working: true, IsAvailable: true}

	cfg := testConfig()
	cfg.BusinessHoursEnd = "07:00"

	_, err := buildSlotGrid(day, cfg, room, nil, day)
	assert.ErrorIs(t, err, ErrInvalidBusinessHours)
}
