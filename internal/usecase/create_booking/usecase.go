package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	roomRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/room"
	personnelClient "github.com/m04kA/SMC-MeetingRoomService/internal/integrations/personnelservice"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
)

// UseCase use case создания бронирования переговорной
type UseCase struct {
	roomRepo        RoomRepository
	bookingRepo     BookingRepository
	personnelClient PersonnelServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepository RoomRepository,
	bookingRepository BookingRepository,
	personnel PersonnelServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:        roomRepository,
		bookingRepo:     bookingRepository,
		personnelClient: personnel,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет создание бронирования.
//
// Клиентская проверка доступности комнаты (get_available_rooms) - это
// best-effort оптимизация UX: два клиента могут одновременно пройти её по
// устаревшим снимкам. Авторитетная проверка конфликта выполняется здесь,
// внутри сериализуемой транзакции с блокировкой бронирований комнаты
// (FOR UPDATE), и её нельзя убирать в расчете на клиентскую валидацию.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: organizer=%s, room=%d, interval=[%s, %s)",
		req.OrganizerCode, req.RoomID,
		req.StartTime.Format("2006-01-02 15:04"), req.EndTime.Format("2006-01-02 15:04"))

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Упорядоченная валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Нормализуем участников: организатор включается автоматически
	attendees := normalizeAttendees(req.OrganizerCode, req.AttendeeCodes)

	// 4. Организатор обязан существовать в PersonnelService
	if _, err := uc.personnelClient.GetEmployee(ctx, req.OrganizerCode); err != nil {
		if errors.Is(err, personnelClient.ErrEmployeeNotFound) {
			uc.logger.Warn("CreateBooking: organizer %s not found", req.OrganizerCode)
			return nil, ErrOrganizerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get organizer %s: %v", req.OrganizerCode, err)
		return nil, fmt.Errorf("%w: failed to get organizer: %v", ErrInternal, err)
	}

	// 5. Участников проверяем с graceful degradation: при недоступности
	// PersonnelService бронирование не блокируем
	for _, code := range attendees {
		if code == req.OrganizerCode {
			continue
		}
		if _, err := uc.personnelClient.GetEmployeeWithGracefulDegradation(ctx, code); err != nil {
			if errors.Is(err, personnelClient.ErrEmployeeNotFound) {
				uc.logger.Warn("CreateBooking: attendee %s not found", code)
				return nil, fmt.Errorf("%w: %s", ErrAttendeeNotFound, code)
			}
			uc.logger.Warn("CreateBooking: skipping attendee check for %s: %v", code, err)
		}
	}

	var result *domain.Booking

	// 6. Проверка конфликта и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Комната существует и проходит административный гейтинг
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if !room.IsBookable() {
			uc.logger.Warn("CreateBooking: room id=%d is not bookable (working=%t, isAvailable=%t)",
				room.ID, room.Working, room.IsAvailable)
			return ErrRoomUnavailable
		}

		// 6.2. Перечитываем бронирования комнаты на интервале с блокировкой
		// FOR UPDATE - именно этот снимок является авторитетным
		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			RoomID:    ptr.Ptr(req.RoomID),
			StartDate: &req.StartTime,
			EndDate:   &req.EndTime,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for room=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.3. Проверяем пересечение полуоткрытых интервалов
		if hasRoomConflict(room, bookings, req.StartTime, req.EndTime, now) {
			uc.logger.Warn("CreateBooking: room id=%d has conflicting booking on [%s, %s)",
				room.ID, req.StartTime.Format("15:04"), req.EndTime.Format("15:04"))
			return ErrRoomConflict
		}

		// 6.4. Создаем бронирование с денормализованным именем комнаты
		booking := &domain.Booking{
			RoomID:        ptr.Ptr(room.ID),
			RoomName:      room.Name,
			Title:         req.Title,
			Description:   req.Description,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			OrganizerCode: req.OrganizerCode,
			AttendeeCodes: attendees,
			Status:        domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for room=%d", result.ID, req.RoomID)

	return fromDomain(result), nil
}
