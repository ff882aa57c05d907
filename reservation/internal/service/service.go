package service

import (
	"context"
	"sort"

	"github.com/hotelio/hotel-service/reservation/internal/availability"
	"github.com/hotelio/hotel-service/reservation/internal/errs"
	"github.com/hotelio/hotel-service/reservation/internal/model"
	"github.com/hotelio/hotel-service/reservation/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

// AvailabilityClient is the oracle side of the check-then-reserve workflow.
type AvailabilityClient interface {
	CheckAvailability(ctx context.Context, roomType string, start, end model.Date) ([]model.AvailableRoom, error)
}

var _ AvailabilityClient = (*availability.Client)(nil)

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	oracle AvailabilityClient
}

func NewService(repo repository.Repository, oracle AvailabilityClient, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		oracle: oracle,
	}
}

// CreateReservation runs the check-then-reserve workflow: ask the oracle
// for matching rooms, then commit against candidates lowest room id first.
// The store's overlap constraint closes the race between the availability
// snapshot and the insert — a candidate grabbed by a concurrent caller
// comes back as ErrRoomConflict and the next one is tried.
func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	found, err := s.oracle.CheckAvailability(ctx, req.RoomType, req.StartDate, req.EndDate)
	if err != nil {
		return model.Reservation{}, err
	}

	candidates := selectCandidates(found)
	if len(candidates) == 0 {
		return model.Reservation{}, errs.ErrNoAvailability
	}

	for _, roomID := range candidates {
		res, err := s.repo.CreateReservation(ctx, roomID, req)
		if err != nil {
			if errors.Is(err, errs.ErrRoomConflict) {
				s.log.Debug("candidate room taken, trying next", zap.Int("room_id", roomID))
				continue
			}
			return model.Reservation{}, err
		}
		return res, nil
	}
	return model.Reservation{}, errs.ErrNoAvailability
}

func (s *Service) GetReservation(ctx context.Context, id int) (model.Reservation, error) {
	return s.repo.GetReservation(ctx, id)
}

func (s *Service) GetReservations(ctx context.Context) ([]model.Reservation, error) {
	return s.repo.GetReservations(ctx)
}

// CancelReservation deletes unconditionally and returns the deleted
// snapshot; there is no status gate on cancellation.
func (s *Service) CancelReservation(ctx context.Context, id int) (model.Reservation, error) {
	return s.repo.DeleteReservation(ctx, id)
}

// selectCandidates reduces an oracle result to distinct room ids, lowest
// first. The tie-break is deliberate policy, not incidental store order.
func selectCandidates(found []model.AvailableRoom) []int {
	seen := make(map[int]struct{}, len(found))
	ids := make([]int, 0, len(found))
	for _, r := range found {
		if _, ok := seen[r.RoomID]; ok {
			continue
		}
		seen[r.RoomID] = struct{}{}
		ids = append(ids, r.RoomID)
	}
	sort.Ints(ids)
	return ids
}
