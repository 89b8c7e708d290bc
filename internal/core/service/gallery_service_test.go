package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

type stubGalleryRepo struct {
	galleries map[string]*domain.Gallery
	images    map[string][]domain.Image // keyed by gallery id
}

func newStubGalleryRepo() *stubGalleryRepo {
	return &stubGalleryRepo{
		galleries: make(map[string]*domain.Gallery),
		images:    make(map[string][]domain.Image),
	}
}

func (r *stubGalleryRepo) Create(_ context.Context, g *domain.Gallery) error {
	clone := *g
	r.galleries[g.ID] = &clone
	return nil
}

func (r *stubGalleryRepo) FindByID(_ context.Context, id string, withImages bool) (*domain.Gallery, error) {
	g, ok := r.galleries[id]
	if !ok {
		return nil, domain.ErrGalleryNotFound
	}
	clone := *g
	if withImages {
		clone.Images = append([]domain.Image(nil), r.images[id]...)
	}
	return &clone, nil
}

func (r *stubGalleryRepo) ListWithCounts(_ context.Context, f ports.GalleryFilter) ([]ports.GalleryWithCounts, error) {
	var out []ports.GalleryWithCounts
	for _, g := range r.galleries {
		if f.UserID != "" && g.UserID != f.UserID {
			continue
		}
		if f.Status != "" && g.Status != f.Status {
			continue
		}
		if f.Visibility != "" && g.Visibility != f.Visibility {
			continue
		}
		out = append(out, ports.GalleryWithCounts{
			Gallery:    *g,
			ImageCount: int64(len(r.images[g.ID])),
		})
	}
	return out, nil
}

func (r *stubGalleryRepo) ListForUser(_ context.Context, userID string, status domain.GalleryStatus) ([]domain.Gallery, error) {
	var out []domain.Gallery
	for _, g := range r.galleries {
		if g.UserID != userID || g.Status != status || g.Visibility == domain.VisibilityHidden {
			continue
		}
		out = append(out, *g)
	}
	return out, nil
}

func (r *stubGalleryRepo) Update(_ context.Context, g *domain.Gallery) error {
	if _, ok := r.galleries[g.ID]; !ok {
		return domain.ErrGalleryNotFound
	}
	clone := *g
	r.galleries[g.ID] = &clone
	return nil
}

func (r *stubGalleryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.galleries[id]; !ok {
		return domain.ErrGalleryNotFound
	}
	delete(r.galleries, id)
	delete(r.images, id)
	return nil
}

func (r *stubGalleryRepo) AddImage(_ context.Context, img *domain.Image) error {
	r.images[img.GalleryID] = append(r.images[img.GalleryID], *img)
	return nil
}

func (r *stubGalleryRepo) ListImages(_ context.Context, galleryID string) ([]domain.Image, error) {
	return append([]domain.Image(nil), r.images[galleryID]...), nil
}

func (r *stubGalleryRepo) FindImages(_ context.Context, imageIDs []string) ([]domain.Image, error) {
	want := make(map[string]struct{}, len(imageIDs))
	for _, id := range imageIDs {
		want[id] = struct{}{}
	}
	var out []domain.Image
	for _, imgs := range r.images {
		for _, img := range imgs {
			if _, ok := want[img.ID]; ok {
				out = append(out, img)
			}
		}
	}
	return out, nil
}

func (r *stubGalleryRepo) MaxSortOrder(_ context.Context, galleryID string) (int, error) {
	max := 0
	for _, img := range r.images[galleryID] {
		if img.SortOrder > max {
			max = img.SortOrder
		}
	}
	return max, nil
}

func TestGalleryService_Create_Defaults(t *testing.T) {
	svc := NewGalleryService(newStubGalleryRepo(), zerolog.Nop())

	gallery, err := svc.Create(context.Background(), ports.CreateGalleryInput{
		UserID: "client-1",
		Title:  "Summer shoot",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if gallery.Status != domain.GalleryDraft {
		t.Fatalf("new gallery must be DRAFT, got %s", gallery.Status)
	}
	if gallery.Visibility != domain.VisibilityHidden {
		t.Fatalf("default visibility must be HIDDEN, got %s", gallery.Visibility)
	}
}

func TestGalleryService_AddImage_SortOrder(t *testing.T) {
	svc := NewGalleryService(newStubGalleryRepo(), zerolog.Nop())
	gallery, _ := svc.Create(context.Background(), ports.CreateGalleryInput{UserID: "client-1", Title: "g"})

	first, err := svc.AddImage(context.Background(), gallery.ID, ports.AddImageInput{URL: "https://cdn/a.jpg", Filename: "a.jpg"})
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	second, err := svc.AddImage(context.Background(), gallery.ID, ports.AddImageInput{URL: "https://cdn/b.jpg", Filename: "b.jpg"})
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	if second.SortOrder <= first.SortOrder {
		t.Fatalf("sort order must increase: %d then %d", first.SortOrder, second.SortOrder)
	}
}

func TestGalleryService_AddImage_GalleryMissing(t *testing.T) {
	svc := NewGalleryService(newStubGalleryRepo(), zerolog.Nop())
	if _, err := svc.AddImage(context.Background(), "missing", ports.AddImageInput{URL: "https://cdn/a.jpg"}); err != domain.ErrGalleryNotFound {
		t.Fatalf("expected ErrGalleryNotFound, got %v", err)
	}
}

func TestGalleryService_GetForClient_OwnershipNotLeaked(t *testing.T) {
	repo := newStubGalleryRepo()
	svc := NewGalleryService(repo, zerolog.Nop())

	gallery, _ := svc.Create(context.Background(), ports.CreateGalleryInput{
		UserID:     "client-1",
		Title:      "g",
		Visibility: domain.VisibilityPrivate,
	})

	// Owner sees it.
	if _, err := svc.GetForClient(context.Background(), "client-1", gallery.ID); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}

	// Another client gets not-found, not forbidden.
	if _, err := svc.GetForClient(context.Background(), "client-2", gallery.ID); err != domain.ErrGalleryNotFound {
		t.Fatalf("expected ErrGalleryNotFound for non-owner, got %v", err)
	}
}

func TestGalleryService_GetForClient_HiddenGallery(t *testing.T) {
	svc := NewGalleryService(newStubGalleryRepo(), zerolog.Nop())
	gallery, _ := svc.Create(context.Background(), ports.CreateGalleryInput{UserID: "client-1", Title: "g"}) // HIDDEN by default

	if _, err := svc.GetForClient(context.Background(), "client-1", gallery.ID); err != domain.ErrGalleryNotFound {
		t.Fatalf("hidden gallery must read as not found, got %v", err)
	}
}

func TestGalleryService_Update_Publish(t *testing.T) {
	svc := NewGalleryService(newStubGalleryRepo(), zerolog.Nop())
	gallery, _ := svc.Create(context.Background(), ports.CreateGalleryInput{UserID: "client-1", Title: "g"})

	published := domain.GalleryPublished
	visible := domain.VisibilityPrivate
	updated, err := svc.Update(context.Background(), gallery.ID, ports.UpdateGalleryInput{
		Status:     &published,
		Visibility: &visible,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != domain.GalleryPublished || updated.Visibility != domain.VisibilityPrivate {
		t.Fatalf("update not applied: %+v", updated)
	}

	listed, err := svc.ListForClient(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("ListForClient: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("published gallery missing from client list")
	}
}
