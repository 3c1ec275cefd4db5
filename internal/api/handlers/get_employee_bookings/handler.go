package get_employee_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings/models"
)

const (
	msgMissingEmployeeCode = "не указан код сотрудника"
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

// Handle GET /api/v1/employees/{employeeCode}/bookings?includeInactive=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeCode := vars["employeeCode"]

	includeInactive := false
	if raw := r.URL.Query().Get("includeInactive"); raw != "" {
		includeInactive, _ = strconv.ParseBool(raw)
	}

	result, err := h.service.GetEmployeeBookings(r.Context(), &models.GetEmployeeBookingsRequest{
		EmployeeCode:    employeeCode,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /employees/{code}/bookings - Invalid input: employee=%s", employeeCode)
			handlers.RespondBadRequest(w, msgMissingEmployeeCode)

		default:
			h.logger.Error("GET /employees/{code}/bookings - Failed to get bookings: employee=%s, error=%v",
				employeeCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employees/{code}/bookings - Bookings retrieved: employee=%s, total=%d",
		employeeCode, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(employeeCode, result))
}
