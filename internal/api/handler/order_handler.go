package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photosbyzee/studio-portal/internal/api/metrics"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

type createOrderRequest struct {
	GalleryID *string  `json:"galleryId"`
	ImageIDs  []string `json:"imageIds" validate:"omitempty,min=1,dive,required"`
}

// OrderHandler serves the client order routes.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// ClientList handles GET /api/client/orders.
func (h *OrderHandler) ClientList(c echo.Context) error {
	userID, err := authUserID(c)
	if err != nil {
		return err
	}
	orders, err := h.service.ListForClient(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// ClientCreate handles POST /api/client/orders.
func (h *OrderHandler) ClientCreate(c echo.Context) error {
	userID, err := authUserID(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		UserID:    userID,
		GalleryID: req.GalleryID,
		ImageIDs:  req.ImageIDs,
	})
	if err != nil {
		return err
	}

	kind := "selection"
	if req.GalleryID != nil && *req.GalleryID != "" {
		kind = "gallery"
	}
	metrics.OrdersCreatedTotal.WithLabelValues(kind).Inc()

	return c.JSON(http.StatusCreated, order)
}
