package get_available_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	availableRooms "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/get_available_rooms"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/datetime"
)

const (
	msgMissingStart    = "не указано начало интервала (параметр start)"
	msgMissingEnd      = "не указан конец интервала (параметр end)"
	msgInvalidStart    = "некорректный формат начала интервала"
	msgInvalidEnd      = "некорректный формат конца интервала"
	msgInvalidInterval = "конец интервала должен быть позже начала"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available?start=...&end=...
// Параметры принимаются и в ISO-8601, и в legacy формате "HH:mm:ss dd/MM/yyyy"
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := datetime.ParseInstant(query.Get("start"))
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}
	if start == nil {
		h.logger.Warn("GET /rooms/available - Missing start parameter")
		handlers.RespondBadRequest(w, msgMissingStart)
		return
	}

	end, err := datetime.ParseInstant(query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEnd)
		return
	}
	if end == nil {
		h.logger.Warn("GET /rooms/available - Missing end parameter")
		handlers.RespondBadRequest(w, msgMissingEnd)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &availableRooms.Request{
		StartTime: *start,
		EndTime:   *end,
	})
	if err != nil {
		switch {
		case errors.Is(err, availableRooms.ErrInvalidInterval):
			h.logger.Warn("GET /rooms/available - Invalid interval: start=%s, end=%s", start, end)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("GET /rooms/available - Failed to get available rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/available - Found %d available rooms", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
