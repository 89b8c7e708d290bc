package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

// AnalyticsHandler serves the manager dashboard report.
type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Report handles GET /api/manager/analytics.
func (h *AnalyticsHandler) Report(c echo.Context) error {
	from, to, err := dateWindow(c)
	if err != nil {
		return err
	}

	q := ports.AnalyticsQuery{GalleryID: c.QueryParam("galleryId")}
	if from != nil {
		q.Start = *from
	}
	if to != nil {
		q.End = *to
	}

	report, err := h.service.Report(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
