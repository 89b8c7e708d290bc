package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

type createSlotRequest struct {
	Date         time.Time `json:"date"         validate:"required"`
	StartTime    string    `json:"startTime"    validate:"required,datetime=15:04"`
	EndTime      string    `json:"endTime"      validate:"required,datetime=15:04"`
	IsRecurring  bool      `json:"isRecurring"`
	RecurringDay string    `json:"recurringDay" validate:"omitempty,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
}

// AvailabilityHandler serves slot management (manager) and the booking
// calendar lookup (client).
type AvailabilityHandler struct {
	service ports.AvailabilityService
}

func NewAvailabilityHandler(service ports.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

// ManagerCreate handles POST /api/manager/availability.
func (h *AvailabilityHandler) ManagerCreate(c echo.Context) error {
	var req createSlotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	slot, err := h.service.CreateSlot(c.Request().Context(), ports.CreateSlotInput{
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		IsRecurring:  req.IsRecurring,
		RecurringDay: req.RecurringDay,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, slot)
}

// ManagerList handles GET /api/manager/availability.
func (h *AvailabilityHandler) ManagerList(c echo.Context) error {
	from, to, err := dateWindow(c)
	if err != nil {
		return err
	}
	slots, err := h.service.ListSlots(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, slots)
}

// ManagerDelete handles DELETE /api/manager/availability/:id.
func (h *AvailabilityHandler) ManagerDelete(c echo.Context) error {
	if err := h.service.DeleteSlot(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// ClientAvailability handles GET /api/client/availability.
func (h *AvailabilityHandler) ClientAvailability(c echo.Context) error {
	from, to, err := dateWindow(c)
	if err != nil {
		return err
	}
	availability, err := h.service.ForClient(c.Request().Context(), from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, availability)
}

// dateWindow parses the optional ?startDate= and ?endDate= query params.
// Dates are accepted as "2006-01-02" or full RFC 3339 timestamps.
func dateWindow(c echo.Context) (from, to *time.Time, err error) {
	if from, err = dateParam(c, "startDate"); err != nil {
		return nil, nil, err
	}
	if to, err = dateParam(c, "endDate"); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func dateParam(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name+" format")
}
