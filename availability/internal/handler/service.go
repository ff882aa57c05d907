package handler

import (
	"context"

	"github.com/hotelio/hotel-service/availability/internal/model"
	"github.com/hotelio/hotel-service/availability/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AvailabilityService interface {
	CheckAvailability(ctx context.Context, req model.CheckAvailabilityRequest) ([]model.RoomDay, error)
}

var _ AvailabilityService = (*service.Service)(nil)
