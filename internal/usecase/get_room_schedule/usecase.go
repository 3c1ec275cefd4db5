package get_room_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	roomRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/room"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
)

// UseCase use case получения сетки расписания комнаты на день
type UseCase struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	cfg          SlotConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepository RoomRepository, bookingRepository BookingRepository, cfg SlotConfig, logger Logger) *UseCase {
	if cfg.SlotDurationMinutes == 0 {
		cfg.SlotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	if cfg.BusinessHoursStart == "" {
		cfg.BusinessHoursStart = domain.DefaultBusinessHoursStart
	}
	if cfg.BusinessHoursEnd == "" {
		cfg.BusinessHoursEnd = domain.DefaultBusinessHoursEnd
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &UseCase{
		roomRepo:     roomRepository,
		bookingRepo:  bookingRepository,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит сетку слотов комнаты на указанную дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomSchedule: room=%d, date=%s", req.RoomID, req.Date.Format(domain.DateFormat))

	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomSchedule: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomSchedule: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// Бронирования, пересекающие сутки запрошенной даты
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.cfg.Location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		RoomID:    ptr.Ptr(req.RoomID),
		StartDate: &dayStart,
		EndDate:   &dayEnd,
	})
	if err != nil {
		uc.logger.Error("GetRoomSchedule: failed to get bookings for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	slots, err := buildSlotGrid(dayStart, uc.cfg, room, bookings, now)
	if err != nil {
		uc.logger.Error("GetRoomSchedule: failed to build slot grid: %v", err)
		return nil, err
	}

	uc.logger.Info("GetRoomSchedule: built %d slots for room=%d, date=%s",
		len(slots), req.RoomID, req.Date.Format(domain.DateFormat))

	return &Response{
		RoomID: req.RoomID,
		Date:   dayStart,
		Slots:  slots,
	}, nil
}
