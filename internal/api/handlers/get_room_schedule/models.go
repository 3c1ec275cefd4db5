package get_room_schedule

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	roomSchedule "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/get_room_schedule"
)

// SlotResponse HTTP response model слота расписания
type SlotResponse struct {
	StartTime       string `json:"startTime"` // HH:MM
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
}

// ScheduleResponse HTTP response model сетки расписания комнаты на день
type ScheduleResponse struct {
	RoomID int64           `json:"roomId"`
	Date   string          `json:"date"`
	Slots  []*SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *roomSchedule.Response) *ScheduleResponse {
	slots := make([]*SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, &SlotResponse{
			StartTime:       s.StartTime.Format(domain.TimeFormat),
			DurationMinutes: s.DurationMinutes,
			Status:          string(s.Status),
		})
	}

	return &ScheduleResponse{
		RoomID: resp.RoomID,
		Date:   resp.Date.Format(domain.DateFormat),
		Slots:  slots,
	}
}

// ParseDate парсит дату из query параметра в формате YYYY-MM-DD
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, raw, loc)
}
