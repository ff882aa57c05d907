package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/hotelio/hotel-service/reservation/internal/errs"
	"github.com/hotelio/hotel-service/reservation/internal/model"
	mock_repository "github.com/hotelio/hotel-service/reservation/internal/repository/mocks"
	mock_service "github.com/hotelio/hotel-service/reservation/internal/service/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func day(d int) model.Date {
	return model.NewDate(2025, time.June, d)
}

func TestService_CreateReservation(t *testing.T) {
	t.Parallel()
	req := model.CreateReservationRequest{
		StartDate:    day(1),
		EndDate:      day(3),
		RoomType:     "double",
		CustomerName: "A. Rivera",
	}
	// oracle rows come back per room-day and out of room order on purpose
	found := []model.AvailableRoom{
		{RoomID: 9, AvailableDate: day(1)},
		{RoomID: 4, AvailableDate: day(1)},
		{RoomID: 9, AvailableDate: day(2)},
		{RoomID: 4, AvailableDate: day(2)},
	}
	reserved := func(roomID int) model.Reservation {
		return model.Reservation{
			ReservationID: 1,
			RoomID:        roomID,
			CustomerName:  req.CustomerName,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			Status:        model.StatusConfirmed,
		}
	}

	tests := []struct {
		name        string
		mock        func(oracle *mock_service.MockAvailabilityClient, repo *mock_repository.MockRepository)
		expected    model.Reservation
		expectedErr error
	}{
		{
			name: "lowest room id wins",
			mock: func(oracle *mock_service.MockAvailabilityClient, repo *mock_repository.MockRepository) {
				oracle.EXPECT().
					CheckAvailability(gomock.Any(), "double", req.StartDate, req.EndDate).
					Return(found, nil)
				repo.EXPECT().
					CreateReservation(gomock.Any(), 4, req).
					Return(reserved(4), nil)
			},
			expected: reserved(4),
		},
		{
			name: "conflict falls through to next candidate",
			mock: func(oracle *mock_service.MockAvailabilityClient, repo *mock_repository.MockRepository) {
				oracle.EXPECT().
					CheckAvailability(gomock.Any(), "double", req.StartDate, req.EndDate).
					Return(found, nil)
				repo.EXPECT().
					CreateReservation(gomock.Any(), 4, req).
					Return(model.Reservation{}, errs.ErrRoomConflict)
				repo.EXPECT().
					CreateReservation(gomock.Any(), 9, req).
					Return(reserved(9), nil)
			},
			expected: reserved(9),
		},
		{
			name: "all candidates taken",
			mock: func(oracle *mock_service.MockAvailabilityClient, repo *mock_repository.MockRepository) {
				oracle.EXPECT().
					CheckAvailability(gomock.Any(), "double", req.StartDate, req.EndDate).
					Return(found, nil)
				repo.EXPECT().
					CreateReservation(gomock.Any(), 4, req).
					Return(model.Reservation{}, errs.ErrRoomConflict)
				repo.EXPECT().
					CreateReservation(gomock.Any(), 9, req).
					Return(model.Reservation{}, errs.ErrRoomConflict)
			},
			expectedErr: errs.ErrNoAvailability,
		},
		{
			name: "empty oracle result never touches the store",
			mock: func(oracle *mock_service.MockAvailabilityClient, repo *mock_repository.MockRepository) {
				oracle.EXPECT().
					CheckAvailability(gomock.Any(), "double", req.StartDate, req.EndDate).
					Return(nil, nil)
			},
			expectedErr: errs.ErrNoAvailability,
		},
		{
			name: "oracle failure propagates as upstream",
			mock: func(oracle *mock_service.MockAvailabilityClient, repo *mock_repository.MockRepository) {
				oracle.EXPECT().
					CheckAvailability(gomock.Any(), "double", req.StartDate, req.EndDate).
					Return(nil, errors.Wrap(errs.ErrUpstream, "connection refused"))
			},
			expectedErr: errs.ErrUpstream,
		},
		{
			name: "store failure other than conflict aborts",
			mock: func(oracle *mock_service.MockAvailabilityClient, repo *mock_repository.MockRepository) {
				oracle.EXPECT().
					CheckAvailability(gomock.Any(), "double", req.StartDate, req.EndDate).
					Return(found, nil)
				repo.EXPECT().
					CreateReservation(gomock.Any(), 4, req).
					Return(model.Reservation{}, errors.New("pq: out of memory"))
			},
			expectedErr: errors.New("pq: out of memory"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			oracle := mock_service.NewMockAvailabilityClient(ctrl)
			repo := mock_repository.NewMockRepository(ctrl)
			tt.mock(oracle, repo)

			svc := NewService(repo, oracle, zap.NewNop())
			res, err := svc.CreateReservation(context.Background(), req)
			if tt.expectedErr != nil {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.expectedErr.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, res)
		})
	}
}

func TestService_GetCancelPassthrough(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	oracle := mock_service.NewMockAvailabilityClient(ctrl)
	repo := mock_repository.NewMockRepository(ctrl)
	svc := NewService(repo, oracle, zap.NewNop())

	res := model.Reservation{ReservationID: 5, RoomID: 2, Status: model.StatusConfirmed}
	repo.EXPECT().GetReservation(gomock.Any(), 5).Return(res, nil)
	got, err := svc.GetReservation(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, res, got)

	repo.EXPECT().DeleteReservation(gomock.Any(), 5).Return(res, nil)
	got, err = svc.CancelReservation(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, res, got)

	repo.EXPECT().GetReservation(gomock.Any(), 6).Return(model.Reservation{}, errs.ErrNotFound)
	_, err = svc.GetReservation(context.Background(), 6)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSelectCandidates(t *testing.T) {
	t.Parallel()
	got := selectCandidates([]model.AvailableRoom{
		{RoomID: 12, AvailableDate: day(1)},
		{RoomID: 3, AvailableDate: day(1)},
		{RoomID: 12, AvailableDate: day(2)},
		{RoomID: 7, AvailableDate: day(1)},
	})
	require.Equal(t, []int{3, 7, 12}, got)

	require.Empty(t, selectCandidates(nil))
}
