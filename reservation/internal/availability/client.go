package availability

import (
	"bytes"
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"time"

	cb "github.com/hotelio/hotel-service/pkg/circuit_breaker"
	"github.com/hotelio/hotel-service/reservation/config"
	"github.com/hotelio/hotel-service/reservation/internal/errs"
	"github.com/hotelio/hotel-service/reservation/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Client speaks the CheckAvailability SOAP exchange with the availability
// oracle. Every failure mode — transport error, timeout, fault, open
// breaker — comes back wrapped in errs.ErrUpstream so the orchestrator
// never mistakes an oracle problem for "no availability".
type Client struct {
	log     *zap.Logger
	client  *http.Client
	breaker cb.CircuitBreaker
	url     string
}

func NewClient(log *zap.Logger, cfg config.Availability) *Client {
	return &Client{
		log:     log.Named("availability"),
		client:  &http.Client{Timeout: cfg.Timeout},
		breaker: cb.New(20, 10*time.Second, 0.5, 3),
		url:     cfg.URL,
	}
}

type requestEnvelope struct {
	XMLName xml.Name    `xml:"http://schemas.xmlsoap.org/soap/envelope/ Envelope"`
	Body    requestBody `xml:"http://schemas.xmlsoap.org/soap/envelope/ Body"`
}

type requestBody struct {
	CheckAvailability checkAvailabilityRequest
}

type checkAvailabilityRequest struct {
	XMLName   xml.Name `xml:"http://www.example.org/HotelAvailability/ CheckAvailabilityRequest"`
	StartDate string   `xml:"startDate"`
	EndDate   string   `xml:"endDate"`
	RoomType  string   `xml:"roomType"`
}

type responseEnvelope struct {
	XMLName xml.Name     `xml:"Envelope"`
	Body    responseBody `xml:"Body"`
}

type responseBody struct {
	Response *checkAvailabilityResponse `xml:"CheckAvailabilityResponse"`
	Fault    *fault                     `xml:"Fault"`
}

type checkAvailabilityResponse struct {
	Rooms rooms `xml:"rooms"`
}

type rooms struct {
	Room []roomDay `xml:"room"`
}

type roomDay struct {
	RoomID        int    `xml:"room_id"`
	AvailableDate string `xml:"available_date"`
}

type fault struct {
	Code   string `xml:"faultcode"`
	Reason string `xml:"faultstring"`
}

func (c *Client) CheckAvailability(ctx context.Context, roomType string, start, end model.Date) ([]model.AvailableRoom, error) {
	env := requestEnvelope{
		Body: requestBody{
			CheckAvailability: checkAvailabilityRequest{
				StartDate: start.Format(time.DateOnly),
				EndDate:   end.Format(time.DateOnly),
				RoomType:  roomType,
			},
		},
	}
	payload, err := xml.Marshal(env)
	if err != nil {
		return nil, err
	}

	var result []model.AvailableRoom
	if err := c.breaker.Call(func() error {
		var callErr error
		result, callErr = c.call(ctx, payload)
		return callErr
	}); err != nil {
		if errors.Is(err, cb.ErrOpenCB) {
			return nil, errors.Wrap(errs.ErrUpstream, "circuit breaker is open")
		}
		return nil, err
	}
	return result, nil
}

func (c *Client) call(ctx context.Context, payload []byte) ([]model.AvailableRoom, error) {
	body := append([]byte(xml.Header), payload...)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", "CheckAvailability")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("availability call", zap.Error(err))
		return nil, errors.Wrap(errs.ErrUpstream, err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errs.ErrUpstream, err.Error())
	}

	var env responseEnvelope
	if err := xml.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrapf(errs.ErrUpstream, "decode response: %v", err)
	}
	if env.Body.Fault != nil {
		return nil, errors.Wrap(errs.ErrUpstream, env.Body.Fault.Reason)
	}
	if env.Body.Response == nil {
		return nil, errors.Wrapf(errs.ErrUpstream, "unexpected status %d", resp.StatusCode)
	}

	result := make([]model.AvailableRoom, 0, len(env.Body.Response.Rooms.Room))
	for _, r := range env.Body.Response.Rooms.Room {
		var d model.Date
		if err := d.Scan(r.AvailableDate); err != nil {
			return nil, errors.Wrapf(errs.ErrUpstream, "bad available_date %q", r.AvailableDate)
		}
		result = append(result, model.AvailableRoom{RoomID: r.RoomID, AvailableDate: d})
	}
	return result, nil
}
