package handler

import (
	_ "embed"
	"encoding/xml"
	"net/http"

	"github.com/hotelio/hotel-service/availability/internal/errs"
	"github.com/hotelio/hotel-service/availability/internal/model"
	md "github.com/hotelio/hotel-service/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:embed wsdl.xml
var wsdl []byte

type Handler struct {
	availabilitySvc AvailabilityService
	log             *zap.Logger
}

func New(availabilitySvc AvailabilityService, log *zap.Logger) *Handler {
	return &Handler{
		availabilitySvc: availabilitySvc,
		log:             log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/wsdl", h.WSDL)

	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.POST("/soap", h.CheckAvailability)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// WSDL serves the service contract document.
func (h *Handler) WSDL(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMETextXMLCharsetUTF8, wsdl)
}

// CheckAvailability is the single SOAP operation. Malformed or invalid
// requests produce a client fault; repository failures produce a server
// fault with a generic reason. An empty room list is a normal response,
// never a fault.
func (h *Handler) CheckAvailability(c echo.Context) error {
	var env model.RequestEnvelope
	if err := xml.NewDecoder(c.Request().Body).Decode(&env); err != nil {
		return h.fault(c, model.FaultCodeClient, "malformed SOAP envelope")
	}
	if env.Body.CheckAvailability == nil {
		return h.fault(c, model.FaultCodeClient, "missing CheckAvailabilityRequest body")
	}

	rooms, err := h.availabilitySvc.CheckAvailability(c.Request().Context(), *env.Body.CheckAvailability)
	if err != nil {
		if errors.Is(err, errs.ErrMissingField) || errors.Is(err, errs.ErrInvalidDate) {
			return h.fault(c, model.FaultCodeClient, err.Error())
		}
		h.log.Error("CheckAvailability", zap.Error(err))
		return h.fault(c, model.FaultCodeServer, "internal error")
	}

	return c.XML(http.StatusOK, model.NewResponseEnvelope(rooms))
}

func (h *Handler) fault(c echo.Context, code, reason string) error {
	return c.XML(http.StatusInternalServerError, model.NewFaultEnvelope(code, reason))
}
