package handler

import (
	"context"

	"github.com/hotelio/hotel-service/reservation/internal/model"
	"github.com/hotelio/hotel-service/reservation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ReservationService interface {
	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	GetReservation(ctx context.Context, id int) (model.Reservation, error)
	GetReservations(ctx context.Context) ([]model.Reservation, error)
	CancelReservation(ctx context.Context, id int) (model.Reservation, error)
}

var _ ReservationService = (*service.Service)(nil)
