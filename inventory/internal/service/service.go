package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hotelio/hotel-service/inventory/internal/model"
	"github.com/hotelio/hotel-service/inventory/internal/repository"
	"github.com/hotelio/hotel-service/pkg/kafka"
	"go.uber.org/zap"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	enqueuer Enqueuer
}

func NewService(repo repository.Repository, enqueuer Enqueuer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		enqueuer: enqueuer,
	}
}

// CreateRoom registers a room and publishes the change so downstream
// projections pick it up. A failed publish does not roll the room back:
// the write is the source of truth and the event stream is best effort.
func (s *Service) CreateRoom(ctx context.Context, req model.CreateRoomRequest) (model.Room, error) {
	room, err := s.repo.CreateRoom(ctx, req)
	if err != nil {
		return model.Room{}, err
	}
	s.publishRoomEvent(room)
	return room, nil
}

func (s *Service) GetRoom(ctx context.Context, id int) (model.Room, error) {
	return s.repo.GetRoom(ctx, id)
}

func (s *Service) ListRooms(ctx context.Context) ([]model.Room, error) {
	return s.repo.ListRooms(ctx)
}

func (s *Service) UpdateRoomStatus(ctx context.Context, id int, status model.Status) (model.Room, error) {
	room, err := s.repo.UpdateRoomStatus(ctx, id, status)
	if err != nil {
		return model.Room{}, err
	}
	s.publishRoomEvent(room)
	return room, nil
}

func (s *Service) publishRoomEvent(room model.Room) {
	ev := model.RoomEvent{
		EventID:    uuid.NewString(),
		RoomID:     room.RoomID,
		RoomType:   room.RoomType,
		Status:     string(room.Status),
		OccurredAt: time.Now().UTC(),
	}
	if err := s.enqueuer.Enqueue(kafka.RoomsTopic, ev); err != nil {
		s.log.Warn("publish room event",
			zap.Int("room_id", room.RoomID), zap.Error(err))
	}
}
