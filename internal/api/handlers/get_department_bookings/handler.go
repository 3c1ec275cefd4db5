package get_department_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/bookings/models"
)

const (
	msgInvalidDepartmentID = "некорректный ID отдела"
	msgMissingEmployee     = "отсутствует код сотрудника"
	msgDepartmentNotFound  = "отдел не найден"
	msgForbidden           = "доступ запрещен, требуются права менеджера отдела"
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

// Handle GET /api/v1/departments/{departmentId}/bookings?includeInactive=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	departmentIDStr := vars["departmentId"]

	departmentID, err := strconv.ParseInt(departmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /departments/{id}/bookings - Invalid department ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDepartmentID)
		return
	}

	employeeCode, ok := middleware.GetEmployeeCode(r.Context())
	if !ok {
		h.logger.Warn("GET /departments/{id}/bookings - Missing employee code: department_id=%d", departmentID)
		handlers.RespondUnauthorized(w, msgMissingEmployee)
		return
	}

	includeInactive := false
	if raw := r.URL.Query().Get("includeInactive"); raw != "" {
		includeInactive, _ = strconv.ParseBool(raw)
	}

	result, err := h.service.GetDepartmentBookings(r.Context(), &models.GetDepartmentBookingsRequest{
		DepartmentID:    departmentID,
		RequesterCode:   employeeCode,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrDepartmentNotFound):
			h.logger.Warn("GET /departments/{id}/bookings - Department not found: department_id=%d", departmentID)
			handlers.RespondNotFound(w, msgDepartmentNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /departments/{id}/bookings - Access denied: department_id=%d, employee=%s",
				departmentID, employeeCode)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /departments/{id}/bookings - Failed to get bookings: department_id=%d, error=%v",
				departmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /departments/{id}/bookings - Bookings retrieved: department_id=%d, total=%d",
		departmentID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(departmentID, result))
}
