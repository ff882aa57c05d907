package handler

import (
	"net/http"
	"strconv"

	md "github.com/hotelio/hotel-service/pkg/middleware"
	"github.com/hotelio/hotel-service/pkg/validate"
	"github.com/hotelio/hotel-service/reservation/internal/errs"
	"github.com/hotelio/hotel-service/reservation/internal/model"
	_ "github.com/hotelio/hotel-service/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	reservationSvc ReservationService
	log            *zap.Logger
}

func New(reservationSvc ReservationService, log *zap.Logger) *Handler {
	return &Handler{
		reservationSvc: reservationSvc,
		log:            log,
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
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/reservations", h.CreateReservation)
	api.GET("/reservations", h.GetReservations)
	api.GET("/reservations/:id", h.GetReservation)
	api.DELETE("/reservations/:id", h.CancelReservation)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// CreateReservation godoc
//
//	@Summary	Create a reservation for the first free room of the requested type.
//	@Accept		json
//	@Produce	json
//	@Param		input	body		model.CreateReservationRequest	true	"reservation request"
//	@Success	201		{object}	model.Reservation
//	@Failure	400		{object}	echo.HTTPError
//	@Failure	503		{object}	echo.HTTPError
//	@Router		/reservations [post]
func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	resp, err := h.reservationSvc.CreateReservation(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoAvailability):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, errs.ErrUpstream):
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, resp)
}

// GetReservation godoc
//
//	@Summary	Look up a reservation by id.
//	@Produce	json
//	@Param		id	path		int	true	"reservation id"
//	@Success	200	{object}	model.Reservation
//	@Failure	404	{object}	echo.HTTPError
//	@Router		/reservations/{id} [get]
func (h *Handler) GetReservation(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.reservationSvc.GetReservation(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

// GetReservations godoc
//
//	@Summary	List all reservations.
//	@Produce	json
//	@Success	200	{array}	model.Reservation
//	@Router		/reservations [get]
func (h *Handler) GetReservations(c echo.Context) error {
	items, err := h.reservationSvc.GetReservations(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

// CancelReservation godoc
//
//	@Summary	Cancel a reservation; returns the deleted record.
//	@Produce	json
//	@Param		id	path		int	true	"reservation id"
//	@Success	200	{object}	model.Reservation
//	@Failure	404	{object}	echo.HTTPError
//	@Router		/reservations/{id} [delete]
func (h *Handler) CancelReservation(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.reservationSvc.CancelReservation(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

func reservationID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errors.New("id must be an integer")
	}
	return id, nil
}
