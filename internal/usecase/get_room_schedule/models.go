package get_room_schedule

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// Request модель запроса сетки расписания комнаты на день
type Request struct {
	RoomID int64
	Date   time.Time // Дата без времени
}

// Response модель ответа с сеткой слотов
type Response struct {
	RoomID int64
	Date   time.Time
	Slots  []domain.ScheduleSlot
}

// SlotConfig настройки сетки слотов (из config.toml)
type SlotConfig struct {
	SlotDurationMinutes int
	BusinessHoursStart  string // HH:MM
	BusinessHoursEnd    string // HH:MM
	Location            *time.Location
}
