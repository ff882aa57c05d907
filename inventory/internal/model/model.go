package model

import "time"

type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

type Room struct {
	RoomID     int    `json:"room_id" db:"room_id"`
	RoomNumber int    `json:"room_number" db:"room_number"`
	RoomType   string `json:"room_type" db:"room_type"`
	Status     Status `json:"status" db:"status"`
}

type CreateRoomRequest struct {
	RoomNumber int    `json:"room_number" validate:"required"`
	RoomType   string `json:"room_type" validate:"required"`
	Status     Status `json:"status" validate:"omitempty,oneof=available occupied maintenance"`
}

type UpdateRoomStatusRequest struct {
	Status Status `json:"status" validate:"required,oneof=available occupied maintenance"`
}

// RoomEvent is published to kafka on room creation and status changes; the
// availability service projects it into its per-day table.
type RoomEvent struct {
	EventID    string    `json:"eventId"`
	RoomID     int       `json:"roomId"`
	RoomType   string    `json:"roomType"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}
