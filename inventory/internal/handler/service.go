package handler

import (
	"context"

	"github.com/hotelio/hotel-service/inventory/internal/model"
	"github.com/hotelio/hotel-service/inventory/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type RoomService interface {
	CreateRoom(ctx context.Context, req model.CreateRoomRequest) (model.Room, error)
	GetRoom(ctx context.Context, id int) (model.Room, error)
	ListRooms(ctx context.Context) ([]model.Room, error)
	UpdateRoomStatus(ctx context.Context, id int, status model.Status) (model.Room, error)
}

var _ RoomService = (*service.Service)(nil)
