package service

import (
	"context"
	"time"

	"github.com/hotelio/hotel-service/availability/internal/model"
	"github.com/hotelio/hotel-service/availability/internal/repository"
	"go.uber.org/zap"
)

type Service struct {
	log         *zap.Logger
	repo        repository.Repository
	horizonDays int
}

func NewService(repo repository.Repository, horizonDays int, log *zap.Logger) *Service {
	return &Service{
		log:         log,
		repo:        repo,
		horizonDays: horizonDays,
	}
}

// CheckAvailability validates the raw request and queries matching records.
// Validation errors are returned as-is so the handler can fault with the
// client code; anything from the repository is a server-side failure.
func (s *Service) CheckAvailability(ctx context.Context, req model.CheckAvailabilityRequest) ([]model.RoomDay, error) {
	query, err := req.Parse()
	if err != nil {
		return nil, err
	}
	return s.repo.ListAvailable(ctx, query)
}

// ApplyRoomEvent projects an inventory room event onto the availability
// table for the configured horizon, starting today. Any inventory status
// other than "available" (maintenance, unavailable) marks the days
// unavailable.
func (s *Service) ApplyRoomEvent(ctx context.Context, ev model.RoomEvent) error {
	status := model.StatusUnavailable
	if ev.Status == string(model.StatusAvailable) {
		status = model.StatusAvailable
	}
	from := time.Now().UTC().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, s.horizonDays)
	return s.repo.UpsertRoomDays(ctx, ev.RoomID, ev.RoomType, status, from, to)
}
