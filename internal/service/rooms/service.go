// Package rooms сервис каталога переговорных комнат (read-only)
package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	roomRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/room"
)

// RoomRepository интерфейс репозитория каталога комнат
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service сервис каталога комнат
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(roomRepository RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepository,
		logger:   logger,
	}
}

// List возвращает все комнаты каталога
func (s *Service) List(ctx context.Context) (*RoomListResponse, error) {
	roomList, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]*RoomResponse, 0, len(roomList))
	for _, r := range roomList {
		result = append(result, fromDomainRoom(r))
	}

	s.logger.Info("List: fetched %d rooms", len(result))
	return &RoomListResponse{Rooms: result, Total: len(result)}, nil
}

// GetByID возвращает комнату по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return fromDomainRoom(room), nil
}
