package get_room_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	roomSchedule "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/get_room_schedule"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgMissingDate   = "не указана дата (параметр date)"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound  = "комната не найдена"
)

type Handler struct {
	useCase  GetRoomScheduleUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetRoomScheduleUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomIDStr := vars["roomId"]

	roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/schedule - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /rooms/{id}/schedule - Missing date parameter: room_id=%d", roomID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := ParseDate(rawDate, h.location)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/schedule - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &roomSchedule.Request{
		RoomID: roomID,
		Date:   date,
	})
	if err != nil {
		switch {
		case errors.Is(err, roomSchedule.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/schedule - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, roomSchedule.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/schedule - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /rooms/{id}/schedule - Failed to get schedule: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/schedule - Schedule retrieved: room_id=%d, date=%s, slots=%d",
		roomID, rawDate, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
