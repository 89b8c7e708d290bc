package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/photosbyzee/studio-portal/internal/api/middleware"
	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

type stubGalleryService struct {
	getForClientFn func(ctx context.Context, userID, galleryID string) (*domain.Gallery, error)
	createFn       func(ctx context.Context, input ports.CreateGalleryInput) (*domain.Gallery, error)
	addImageFn     func(ctx context.Context, galleryID string, input ports.AddImageInput) (*domain.Image, error)
}

func (s *stubGalleryService) Create(ctx context.Context, input ports.CreateGalleryInput) (*domain.Gallery, error) {
	return s.createFn(ctx, input)
}

func (s *stubGalleryService) List(ctx context.Context, filter ports.GalleryFilter) ([]ports.GalleryWithCounts, error) {
	return nil, nil
}

func (s *stubGalleryService) Get(ctx context.Context, id string) (*domain.Gallery, error) {
	return nil, domain.ErrGalleryNotFound
}

func (s *stubGalleryService) Update(ctx context.Context, id string, input ports.UpdateGalleryInput) (*domain.Gallery, error) {
	return nil, domain.ErrGalleryNotFound
}

func (s *stubGalleryService) Delete(ctx context.Context, id string) error {
	return domain.ErrGalleryNotFound
}

func (s *stubGalleryService) AddImage(ctx context.Context, galleryID string, input ports.AddImageInput) (*domain.Image, error) {
	return s.addImageFn(ctx, galleryID, input)
}

func (s *stubGalleryService) ListImages(ctx context.Context, galleryID string) ([]domain.Image, error) {
	return nil, nil
}

func (s *stubGalleryService) ListForClient(ctx context.Context, userID string) ([]domain.Gallery, error) {
	return nil, nil
}

func (s *stubGalleryService) GetForClient(ctx context.Context, userID, galleryID string) (*domain.Gallery, error) {
	return s.getForClientFn(ctx, userID, galleryID)
}

type stubViewTracker struct {
	enqueued []ports.PageViewInput
}

func (s *stubViewTracker) Enqueue(view ports.PageViewInput) {
	s.enqueued = append(s.enqueued, view)
}

func TestGalleryHandler_ClientGet_EnqueuesView(t *testing.T) {
	e := newTestEcho()
	svc := &stubGalleryService{
		getForClientFn: func(ctx context.Context, userID, galleryID string) (*domain.Gallery, error) {
			return &domain.Gallery{ID: galleryID, UserID: userID, Title: "Family shoot"}, nil
		},
	}
	views := &stubViewTracker{}
	h := NewGalleryHandler(svc, views)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/client/galleries/g1", nil), rec)
	c.SetPath("/api/client/galleries/:id")
	c.SetParamNames("id")
	c.SetParamValues("g1")
	c.Set(middleware.CtxUserID, "u1")

	if err := h.ClientGet(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(views.enqueued) != 1 {
		t.Fatalf("expected 1 enqueued view, got %d", len(views.enqueued))
	}
	view := views.enqueued[0]
	if view.GalleryID != "g1" || view.UserID != "u1" || view.VisitorKey != "u1" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.ViewedAt.IsZero() {
		t.Fatalf("viewedAt not set")
	}
}

func TestGalleryHandler_ClientGet_NotOwned(t *testing.T) {
	e := newTestEcho()
	svc := &stubGalleryService{
		getForClientFn: func(ctx context.Context, userID, galleryID string) (*domain.Gallery, error) {
			return nil, domain.ErrGalleryNotFound
		},
	}
	views := &stubViewTracker{}
	h := NewGalleryHandler(svc, views)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/client/galleries/g2", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("g2")
	c.Set(middleware.CtxUserID, "u1")

	err := h.ClientGet(c)
	if !errors.Is(err, domain.ErrGalleryNotFound) {
		t.Fatalf("expected ErrGalleryNotFound, got %v", err)
	}
	if len(views.enqueued) != 0 {
		t.Fatalf("no view should be recorded for a failed lookup")
	}
}

func TestGalleryHandler_ManagerCreate_RequiresUserID(t *testing.T) {
	e := newTestEcho()
	svc := &stubGalleryService{
		createFn: func(ctx context.Context, input ports.CreateGalleryInput) (*domain.Gallery, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewGalleryHandler(svc, &stubViewTracker{})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/manager/galleries", `{"title":"Shoot"}`), rec)

	err := h.ManagerCreate(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Violations) != 1 || ve.Violations[0].Field != "userId" {
		t.Fatalf("expected userId violation, got %+v", ve.Violations)
	}
}

func TestGalleryHandler_ManagerAddImage(t *testing.T) {
	e := newTestEcho()
	svc := &stubGalleryService{
		addImageFn: func(ctx context.Context, galleryID string, input ports.AddImageInput) (*domain.Image, error) {
			if galleryID != "g1" || input.URL != "https://cdn.example.com/a.jpg" {
				t.Fatalf("unexpected args: %s %+v", galleryID, input)
			}
			return &domain.Image{ID: "img1", GalleryID: galleryID, URL: input.URL, SortOrder: 1}, nil
		},
	}
	h := NewGalleryHandler(svc, &stubViewTracker{})

	body := `{"url":"https://cdn.example.com/a.jpg","filename":"a.jpg","price":5}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/api/manager/galleries/g1/images", body), rec)
	c.SetParamNames("id")
	c.SetParamValues("g1")

	if err := h.ManagerAddImage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}
