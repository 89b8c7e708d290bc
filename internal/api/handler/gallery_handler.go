package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/photosbyzee/studio-portal/internal/api/metrics"
	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

// ViewTracker hands page views to the async recording pipeline.
type ViewTracker interface {
	Enqueue(view ports.PageViewInput)
}

// GalleryHandler serves manager gallery curation and client gallery viewing.
type GalleryHandler struct {
	service ports.GalleryService
	views   ViewTracker
}

func NewGalleryHandler(service ports.GalleryService, views ViewTracker) *GalleryHandler {
	return &GalleryHandler{service: service, views: views}
}

// ManagerList handles GET /api/manager/galleries.
func (h *GalleryHandler) ManagerList(c echo.Context) error {
	filter := ports.GalleryFilter{
		UserID:     c.QueryParam("userId"),
		Status:     domain.GalleryStatus(c.QueryParam("status")),
		Visibility: domain.GalleryVisibility(c.QueryParam("visibility")),
	}
	galleries, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, galleries)
}

// ManagerCreate handles POST /api/manager/galleries.
func (h *GalleryHandler) ManagerCreate(c echo.Context) error {
	var req createGalleryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	gallery, err := h.service.Create(c.Request().Context(), ports.CreateGalleryInput{
		UserID:      req.UserID,
		BookingID:   req.BookingID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		IsFree:      req.IsFree,
		Visibility:  domain.GalleryVisibility(req.Visibility),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, gallery)
}

// ManagerGet handles GET /api/manager/galleries/:id.
func (h *GalleryHandler) ManagerGet(c echo.Context) error {
	gallery, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gallery)
}

// ManagerUpdate handles PUT /api/manager/galleries/:id.
func (h *GalleryHandler) ManagerUpdate(c echo.Context) error {
	var req updateGalleryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateGalleryInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		IsFree:      req.IsFree,
	}
	if req.Status != nil {
		status := domain.GalleryStatus(*req.Status)
		input.Status = &status
	}
	if req.Visibility != nil {
		visibility := domain.GalleryVisibility(*req.Visibility)
		input.Visibility = &visibility
	}

	gallery, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gallery)
}

// ManagerDelete handles DELETE /api/manager/galleries/:id.
func (h *GalleryHandler) ManagerDelete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// ManagerListImages handles GET /api/manager/galleries/:id/images.
func (h *GalleryHandler) ManagerListImages(c echo.Context) error {
	images, err := h.service.ListImages(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, images)
}

// ManagerAddImage handles POST /api/manager/galleries/:id/images.
func (h *GalleryHandler) ManagerAddImage(c echo.Context) error {
	var req addImageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	image, err := h.service.AddImage(c.Request().Context(), c.Param("id"), ports.AddImageInput{
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
		Filename:     req.Filename,
		Price:        req.Price,
		SortOrder:    req.SortOrder,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, image)
}

// ClientList handles GET /api/client/galleries.
func (h *GalleryHandler) ClientList(c echo.Context) error {
	userID, err := authUserID(c)
	if err != nil {
		return err
	}
	galleries, err := h.service.ListForClient(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, galleries)
}

// ClientGet handles GET /api/client/galleries/:id. A successful view is
// enqueued for analytics; recording never blocks or fails the response.
func (h *GalleryHandler) ClientGet(c echo.Context) error {
	userID, err := authUserID(c)
	if err != nil {
		return err
	}

	gallery, err := h.service.GetForClient(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	h.views.Enqueue(ports.PageViewInput{
		Path:       c.Request().URL.Path,
		GalleryID:  gallery.ID,
		UserID:     userID,
		VisitorKey: userID,
		ViewedAt:   time.Now(),
	})
	metrics.PageViewsEnqueuedTotal.Inc()

	return c.JSON(http.StatusOK, gallery)
}
