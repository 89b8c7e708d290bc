package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photosbyzee/studio-portal/internal/api/metrics"
	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

// BookingHandler serves the client and manager booking routes.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// ClientList handles GET /api/client/bookings.
func (h *BookingHandler) ClientList(c echo.Context) error {
	userID, err := authUserID(c)
	if err != nil {
		return err
	}
	status, err := statusParam(c)
	if err != nil {
		return err
	}
	upcoming := c.QueryParam("upcoming") == "true"

	bookings, err := h.service.ListForClient(c.Request().Context(), userID, status, upcoming)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// ClientCreate handles POST /api/client/bookings.
func (h *BookingHandler) ClientCreate(c echo.Context) error {
	userID, err := authUserID(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		UserID:      userID,
		Date:        req.Date,
		Duration:    req.Duration,
		Location:    req.Location,
		Notes:       req.Notes,
		ServiceType: req.ServiceType,
		TotalPrice:  req.TotalPrice,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(booking.ServiceType).Inc()
	return c.JSON(http.StatusCreated, booking)
}

// ManagerList handles GET /api/manager/bookings.
func (h *BookingHandler) ManagerList(c echo.Context) error {
	status, err := statusParam(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.List(c.Request().Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// ManagerCreate handles POST /api/manager/bookings.
func (h *BookingHandler) ManagerCreate(c echo.Context) error {
	var req managerCreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateBookingInput{
		UserID:      req.UserID,
		Date:        req.Date,
		Duration:    req.Duration,
		Location:    req.Location,
		Notes:       req.Notes,
		ServiceType: req.ServiceType,
		TotalPrice:  req.TotalPrice,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.WithLabelValues(booking.ServiceType).Inc()
	return c.JSON(http.StatusCreated, booking)
}

// Get handles GET /api/manager/bookings/:id.
func (h *BookingHandler) Get(c echo.Context) error {
	booking, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// Update handles PUT /api/manager/bookings/:id.
func (h *BookingHandler) Update(c echo.Context) error {
	var req updateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateBookingInput{
		Date:        req.Date,
		Duration:    req.Duration,
		Location:    req.Location,
		Notes:       req.Notes,
		ServiceType: req.ServiceType,
		TotalPrice:  req.TotalPrice,
	}
	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		input.Status = &status
	}

	booking, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// Delete handles DELETE /api/manager/bookings/:id.
func (h *BookingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// statusParam parses the optional ?status= filter.
func statusParam(c echo.Context) (domain.BookingStatus, error) {
	raw := c.QueryParam("status")
	if raw == "" {
		return "", nil
	}
	status := domain.BookingStatus(raw)
	if !domain.ValidBookingStatus(status) {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Invalid booking status")
	}
	return status, nil
}
