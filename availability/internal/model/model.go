package model

import (
	"database/sql/driver"
	"encoding/xml"
	"time"

	"github.com/hotelio/hotel-service/availability/internal/errs"
	"github.com/pkg/errors"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
)

const (
	SoapNS    = "http://schemas.xmlsoap.org/soap/envelope/"
	ServiceNS = "http://www.example.org/HotelAvailability/"

	FaultCodeClient = "soap:Client"
	FaultCodeServer = "soap:Server"
)

// AvailabilityQuery is the validated form of a CheckAvailability request.
type AvailabilityQuery struct {
	RoomType  string
	StartDate time.Time
	EndDate   time.Time
}

// Date marshals as YYYY-MM-DD in XML and scans from a Postgres date column.
type Date struct {
	time.Time
}

func (d Date) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(d.Format(time.DateOnly), start)
}

func (d *Date) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := dec.DecodeElement(&s, &start); err != nil {
		return err
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
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

type RoomDay struct {
	RoomID        int  `xml:"room_id" db:"room_id"`
	AvailableDate Date `xml:"available_date" db:"available_date"`
}

// RequestEnvelope is decoded leniently: element names are matched without
// binding the namespace, so both prefixed and default-ns requests pass.
type RequestEnvelope struct {
	XMLName xml.Name    `xml:"Envelope"`
	Body    RequestBody `xml:"Body"`
}

type RequestBody struct {
	CheckAvailability *CheckAvailabilityRequest `xml:"CheckAvailabilityRequest"`
}

type CheckAvailabilityRequest struct {
	StartDate string `xml:"startDate"`
	EndDate   string `xml:"endDate"`
	RoomType  string `xml:"roomType"`
}

// Parse validates field presence first, then date syntax, per the protocol
// contract: a malformed request must fault before any lookup happens.
func (r CheckAvailabilityRequest) Parse() (AvailabilityQuery, error) {
	if r.StartDate == "" || r.EndDate == "" || r.RoomType == "" {
		return AvailabilityQuery{}, errs.ErrMissingField
	}
	start, err := time.Parse(time.DateOnly, r.StartDate)
	if err != nil {
		return AvailabilityQuery{}, errs.ErrInvalidDate
	}
	end, err := time.Parse(time.DateOnly, r.EndDate)
	if err != nil {
		return AvailabilityQuery{}, errs.ErrInvalidDate
	}
	return AvailabilityQuery{
		RoomType:  r.RoomType,
		StartDate: start,
		EndDate:   end,
	}, nil
}

type ResponseEnvelope struct {
	XMLName xml.Name     `xml:"http://schemas.xmlsoap.org/soap/envelope/ Envelope"`
	Body    ResponseBody `xml:"http://schemas.xmlsoap.org/soap/envelope/ Body"`
}

type ResponseBody struct {
	Response *CheckAvailabilityResponse
	Fault    *Fault
}

type CheckAvailabilityResponse struct {
	XMLName xml.Name `xml:"http://www.example.org/HotelAvailability/ CheckAvailabilityResponse"`
	Rooms   Rooms    `xml:"rooms"`
}

type Rooms struct {
	Room []RoomDay `xml:"room"`
}

type Fault struct {
	XMLName xml.Name `xml:"http://schemas.xmlsoap.org/soap/envelope/ Fault"`
	Code    string   `xml:"faultcode"`
	Reason  string   `xml:"faultstring"`
}

func NewResponseEnvelope(rooms []RoomDay) ResponseEnvelope {
	return ResponseEnvelope{
		Body: ResponseBody{
			Response: &CheckAvailabilityResponse{
				Rooms: Rooms{Room: rooms},
			},
		},
	}
}

func NewFaultEnvelope(code, reason string) ResponseEnvelope {
	return ResponseEnvelope{
		Body: ResponseBody{
			Fault: &Fault{Code: code, Reason: reason},
		},
	}
}

// RoomEvent mirrors the message the inventory service publishes on room
// creation and status changes.
type RoomEvent struct {
	EventID    string    `json:"eventId"`
	RoomID     int       `json:"roomId"`
	RoomType   string    `json:"roomType"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}
