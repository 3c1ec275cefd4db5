package get_available_rooms

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// Request модель запроса на поиск свободных комнат
// Интервал полуоткрытый: [StartTime, EndTime)
type Request struct {
	StartTime time.Time
	EndTime   time.Time
}

// Response модель ответа со списком свободных комнат
type Response struct {
	StartTime time.Time
	EndTime   time.Time
	Rooms     []*domain.Room // Порядок каталога сохранен
}
