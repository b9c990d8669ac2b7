package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hostwell/room-booking-service/internal/daterange"
	"github.com/hostwell/room-booking-service/internal/dto"
	"github.com/hostwell/room-booking-service/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	props := e.Group("/api/v1/properties")
	props.GET("/:id/rooms", h.ListRooms)
	props.GET("/:id/availability", h.QueryAvailability)
	props.POST("/:id/rooms/:room_id/bookings", h.AdmitBooking)

	e.GET("/api/v1/bookings/:id", h.GetBooking)
	e.POST("/api/v1/bookings/:id/confirm", h.ConfirmBooking)
}

func (h *BookingHandler) ListRooms(c echo.Context) error {
	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid property id")
	}

	rooms, err := h.svc.ListRooms(c.Request().Context(), uint(propertyID))
	if err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToRoomResponses(rooms))
}

func (h *BookingHandler) QueryAvailability(c echo.Context) error {
	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid property id")
	}

	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if from == "" || to == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "from and to are required")
	}

	rooms, err := h.svc.QueryAvailability(c.Request().Context(), uint(propertyID), from, to)
	if err != nil {
		switch {
		case errors.Is(err, daterange.ErrInvalidRange):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrPropertyNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.AvailabilityResponse{
		From:      from,
		To:        to,
		Available: dto.ToRoomResponses(rooms),
	})
}

func (h *BookingHandler) AdmitBooking(c echo.Context) error {
	propertyID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid property id")
	}
	roomID, err := strconv.ParseUint(c.Param("room_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	var req dto.AdmitBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.AdmitBooking(c.Request().Context(), service.AdmissionInput{
		PropertyID:    uint(propertyID),
		RoomID:        uint(roomID),
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Hold:          req.Hold,
		Price:         req.Price,
		Currency:      req.Currency,
	})
	if err != nil {
		switch {
		case errors.Is(err, daterange.ErrInvalidRange):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrMissingField):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrRoomNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrCustomerNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrRoomUnavailable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ConfirmBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	booking, err := h.svc.ConfirmBooking(c.Request().Context(), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotOnHold):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
