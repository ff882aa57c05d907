package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/hotelio/hotel-service/reservation/internal/errs"
	mock_handler "github.com/hotelio/hotel-service/reservation/internal/handler/mocks"
	"github.com/hotelio/hotel-service/reservation/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandler_CreateReservation(t *testing.T) {
	t.Parallel()
	reqBody := `{"start_date":"2025-06-01","end_date":"2025-06-03","room_type":"double","customer_name":"A. Rivera"}`
	created := model.Reservation{
		ReservationID: 1,
		RoomID:        7,
		CustomerName:  "A. Rivera",
		StartDate:     model.NewDate(2025, time.June, 1),
		EndDate:       model.NewDate(2025, time.June, 3),
		Status:        model.StatusConfirmed,
	}

	tests := []struct {
		name         string
		body         string
		mock         func(svc *mock_handler.MockReservationService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			body: reqBody,
			mock: func(svc *mock_handler.MockReservationService) {
				svc.EXPECT().
					CreateReservation(gomock.Any(), gomock.Any()).
					Return(created, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"reservation_id":1,"room_id":7,"customer_name":"A. Rivera","start_date":"2025-06-01","end_date":"2025-06-03","status":"confirmed"}`,
		},
		{
			name: "no availability",
			body: reqBody,
			mock: func(svc *mock_handler.MockReservationService) {
				svc.EXPECT().
					CreateReservation(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, errs.ErrNoAvailability)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "no rooms available",
		},
		{
			name: "oracle unavailable",
			body: reqBody,
			mock: func(svc *mock_handler.MockReservationService) {
				svc.EXPECT().
					CreateReservation(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, errs.ErrUpstream)
			},
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: "availability service error",
		},
		{
			name:         "missing customer name",
			body:         `{"start_date":"2025-06-01","end_date":"2025-06-03","room_type":"double"}`,
			mock:         func(svc *mock_handler.MockReservationService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "CustomerName",
		},
		{
			name:         "malformed date",
			body:         `{"start_date":"June 1st","end_date":"2025-06-03","room_type":"double","customer_name":"A. Rivera"}`,
			mock:         func(svc *mock_handler.MockReservationService) {},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := mock_handler.NewMockReservationService(ctrl)
			tt.mock(svc)
			h := New(svc, zap.NewNop())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			h.NewRouter().ServeHTTP(rec, req)

			require.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				require.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandler_GetReservation(t *testing.T) {
	t.Parallel()
	res := model.Reservation{
		ReservationID: 42,
		RoomID:        3,
		CustomerName:  "B. Osei",
		StartDate:     model.NewDate(2025, time.July, 10),
		EndDate:       model.NewDate(2025, time.July, 12),
		Status:        model.StatusConfirmed,
	}

	tests := []struct {
		name         string
		target       string
		mock         func(svc *mock_handler.MockReservationService)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "ok",
			target: "/api/v1/reservations/42",
			mock: func(svc *mock_handler.MockReservationService) {
				svc.EXPECT().
					GetReservation(gomock.Any(), 42).
					Return(res, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"reservation_id":42`,
		},
		{
			name:   "not found",
			target: "/api/v1/reservations/99",
			mock: func(svc *mock_handler.MockReservationService) {
				svc.EXPECT().
					GetReservation(gomock.Any(), 99).
					Return(model.Reservation{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "bad id",
			target:       "/api/v1/reservations/abc",
			mock:         func(svc *mock_handler.MockReservationService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "id must be an integer",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := mock_handler.NewMockReservationService(ctrl)
			tt.mock(svc)
			h := New(svc, zap.NewNop())

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			h.NewRouter().ServeHTTP(rec, req)

			require.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				require.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandler_GetReservations(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := mock_handler.NewMockReservationService(ctrl)
	svc.EXPECT().
		GetReservations(gomock.Any()).
		Return([]model.Reservation{
			{
				ReservationID: 1,
				RoomID:        2,
				CustomerName:  "C. Ndiaye",
				StartDate:     model.NewDate(2025, time.August, 1),
				EndDate:       model.NewDate(2025, time.August, 2),
				Status:        model.StatusConfirmed,
			},
		}, nil)
	h := New(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", nil)
	rec := httptest.NewRecorder()
	h.NewRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"customer_name":"C. Ndiaye"`)
}

func TestHandler_CancelReservation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		target       string
		mock         func(svc *mock_handler.MockReservationService)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "ok",
			target: "/api/v1/reservations/7",
			mock: func(svc *mock_handler.MockReservationService) {
				svc.EXPECT().
					CancelReservation(gomock.Any(), 7).
					Return(model.Reservation{
						ReservationID: 7,
						RoomID:        1,
						CustomerName:  "D. Petrov",
						StartDate:     model.NewDate(2025, time.September, 5),
						EndDate:       model.NewDate(2025, time.September, 6),
						Status:        model.StatusConfirmed,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"reservation_id":7`,
		},
		{
			name:   "not found",
			target: "/api/v1/reservations/404",
			mock: func(svc *mock_handler.MockReservationService) {
				svc.EXPECT().
					CancelReservation(gomock.Any(), 404).
					Return(model.Reservation{}, errs.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := mock_handler.NewMockReservationService(ctrl)
			tt.mock(svc)
			h := New(svc, zap.NewNop())

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			rec := httptest.NewRecorder()
			h.NewRouter().ServeHTTP(rec, req)

			require.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedBody != "" {
				require.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}
