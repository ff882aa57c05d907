package availability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hotelio/hotel-service/reservation/config"
	"github.com/hotelio/hotel-service/reservation/internal/errs"
	"github.com/hotelio/hotel-service/reservation/internal/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(url string, timeout time.Duration) *Client {
	return NewClient(zap.NewNop(), config.Availability{URL: url, Timeout: timeout})
}

func TestClient_CheckAvailability(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "CheckAvailability", r.Header.Get("SOAPAction"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "<startDate>2025-06-01</startDate>")
		require.Contains(t, string(body), "<roomType>double</roomType>")

		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <tns:CheckAvailabilityResponse xmlns:tns="http://www.example.org/HotelAvailability/">
      <rooms>
        <room><room_id>4</room_id><available_date>2025-06-01</available_date></room>
        <room><room_id>4</room_id><available_date>2025-06-02</available_date></room>
        <room><room_id>9</room_id><available_date>2025-06-01</available_date></room>
      </rooms>
    </tns:CheckAvailabilityResponse>
  </soap:Body>
</soap:Envelope>`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 2*time.Second)
	got, err := c.CheckAvailability(context.Background(), "double",
		model.NewDate(2025, time.June, 1), model.NewDate(2025, time.June, 3))
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, 4, got[0].RoomID)
	require.Equal(t, "2025-06-02", got[1].AvailableDate.Format(time.DateOnly))
	require.Equal(t, 9, got[2].RoomID)
}

func TestClient_CheckAvailability_Fault(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <soap:Fault>
      <faultcode>soap:Server</faultcode>
      <faultstring>internal error</faultstring>
    </soap:Fault>
  </soap:Body>
</soap:Envelope>`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 2*time.Second)
	_, err := c.CheckAvailability(context.Background(), "double",
		model.NewDate(2025, time.June, 1), model.NewDate(2025, time.June, 3))
	require.ErrorIs(t, err, errs.ErrUpstream)
	require.Contains(t, err.Error(), "internal error")
}

func TestClient_CheckAvailability_Timeout(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 20*time.Millisecond)
	_, err := c.CheckAvailability(context.Background(), "double",
		model.NewDate(2025, time.June, 1), model.NewDate(2025, time.June, 3))
	require.ErrorIs(t, err, errs.ErrUpstream)
}

func TestClient_CheckAvailability_GarbageBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not xml at all"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 2*time.Second)
	_, err := c.CheckAvailability(context.Background(), "double",
		model.NewDate(2025, time.June, 1), model.NewDate(2025, time.June, 3))
	require.ErrorIs(t, err, errs.ErrUpstream)
}
