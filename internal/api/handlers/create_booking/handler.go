package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат времени, ожидается ISO-8601 или HH:mm:ss dd/MM/yyyy"
	msgMissingEmployee    = "отсутствует код сотрудника"
	msgMissingTitle       = "не указана тема встречи"
	msgMissingRoom        = "не выбрана переговорная комната"
	msgInvalidInterval    = "конец встречи должен быть позже начала"
	msgPastStartTime      = "начало встречи не может быть в прошлом"
	msgRoomConflict       = "комната уже забронирована на выбранное время"
	msgRoomNotFound       = "комната не найдена"
	msgRoomUnavailable    = "комната недоступна для бронирования"
	msgOrganizerNotFound  = "организатор не найден"
	msgAttendeeNotFound   = "участник не найден"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeCode, ok := middleware.GetEmployeeCode(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing employee code")
		handlers.RespondUnauthorized(w, msgMissingEmployee)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(employeeCode)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrRoomConflict):
			h.logger.Warn("POST /bookings - Room conflict: room_id=%d, organizer=%s", req.RoomID, employeeCode)
			handlers.RespondError(w, http.StatusConflict, msgRoomConflict)

		case errors.Is(err, createBooking.ErrMissingTitle):
			h.logger.Warn("POST /bookings - Missing title: organizer=%s", employeeCode)
			handlers.RespondBadRequest(w, msgMissingTitle)

		case errors.Is(err, createBooking.ErrMissingRoom):
			h.logger.Warn("POST /bookings - Missing room: organizer=%s", employeeCode)
			handlers.RespondBadRequest(w, msgMissingRoom)

		case errors.Is(err, createBooking.ErrInvalidInterval):
			h.logger.Warn("POST /bookings - Invalid interval: organizer=%s", employeeCode)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createBooking.ErrPastStartTime):
			h.logger.Warn("POST /bookings - Past start time: organizer=%s", employeeCode)
			handlers.RespondBadRequest(w, msgPastStartTime)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomUnavailable):
			h.logger.Warn("POST /bookings - Room unavailable: room_id=%d", req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomUnavailable)

		case errors.Is(err, createBooking.ErrOrganizerNotFound):
			h.logger.Warn("POST /bookings - Organizer not found: organizer=%s", employeeCode)
			handlers.RespondForbidden(w, msgOrganizerNotFound)

		case errors.Is(err, createBooking.ErrAttendeeNotFound):
			h.logger.Warn("POST /bookings - Attendee not found: organizer=%s", employeeCode)
			handlers.RespondBadRequest(w, msgAttendeeNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: organizer=%s, error=%v", employeeCode, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%d, organizer=%s, error=%v",
				req.RoomID, employeeCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, room_id=%d, organizer=%s",
		result.ID, result.RoomID, employeeCode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
