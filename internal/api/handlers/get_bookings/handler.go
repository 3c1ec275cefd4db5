package get_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings/models"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/datetime"
)

const (
	msgInvalidFrom   = "некорректный формат параметра from"
	msgInvalidTo     = "некорректный формат параметра to"
	msgInvalidFilter = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?from=...&to=...&status=...&includeInactive=...
// Параметры from/to принимаются и в ISO-8601, и в legacy формате
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := datetime.ParseInstant(query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	to, err := datetime.ParseInstant(query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	req := &models.ListBookingsRequest{
		From: from,
		To:   to,
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}
	if raw := query.Get("includeInactive"); raw != "" {
		req.IncludeInactive, _ = strconv.ParseBool(raw)
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
