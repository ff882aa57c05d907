package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
)

type CreateReservationRequest struct {
	StartDate    Date   `json:"start_date" validate:"required"`
	EndDate      Date   `json:"end_date" validate:"required"`
	RoomType     string `json:"room_type" validate:"required"`
	CustomerName string `json:"customer_name" validate:"required"`
}

// Date carries a calendar day, serialized as YYYY-MM-DD in JSON and stored
// in a Postgres date column.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	}
	return errors.Errorf("unsupported date type %T", src)
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

type Reservation struct {
	ReservationID int    `json:"reservation_id" db:"reservation_id"`
	RoomID        int    `json:"room_id" db:"room_id"`
	CustomerName  string `json:"customer_name" db:"customer_name"`
	StartDate     Date   `json:"start_date" db:"start_date"`
	EndDate       Date   `json:"end_date" db:"end_date"`
	Status        Status `json:"status" db:"status"`
}

// AvailableRoom is one entry of an availability oracle result.
type AvailableRoom struct {
	RoomID        int
	AvailableDate Date
}
