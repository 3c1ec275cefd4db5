package get_available_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// UseCase use case поиска свободных комнат на запрошенный интервал
type UseCase struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет поиск свободных комнат.
//
// Результат - best-effort снимок: между этим вызовом и созданием
// бронирования другой клиент может занять комнату. Авторитетная проверка
// конфликтов выполняется в create_booking внутри сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableRooms: interval=[%s, %s)",
		req.StartTime.Format("2006-01-02 15:04"), req.EndTime.Format("2006-01-02 15:04"))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// Берем только бронирования, пересекающие запрошенный интервал:
	// остальные не могут повлиять на результат
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		StartDate: &req.StartTime,
		EndDate:   &req.EndTime,
	})
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	available := FilterAvailableRooms(rooms, bookings, req.StartTime, req.EndTime, now)

	uc.logger.Info("GetAvailableRooms: %d of %d rooms available", len(available), len(rooms))

	return &Response{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Rooms:     available,
	}, nil
}
