package ports

import (
	"context"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
)

// CreateGalleryInput carries the data for a new gallery. UserID is the
// client the gallery belongs to, chosen by the manager.
type CreateGalleryInput struct {
	UserID      string
	BookingID   *string
	Title       string
	Description string
	Price       float64
	IsFree      bool
	Visibility  domain.GalleryVisibility
}

// UpdateGalleryInput applies a partial update; nil fields are left untouched.
type UpdateGalleryInput struct {
	Title       *string
	Description *string
	Status      *domain.GalleryStatus
	Visibility  *domain.GalleryVisibility
	Price       *float64
	IsFree      *bool
}

// AddImageInput adds one image to a gallery.
type AddImageInput struct {
	URL          string
	ThumbnailURL string
	Filename     string
	Price        float64
	SortOrder    *int
}

// GalleryFilter narrows manager gallery listings.
type GalleryFilter struct {
	UserID     string
	Status     domain.GalleryStatus
	Visibility domain.GalleryVisibility
}

// GalleryWithCounts decorates a gallery with aggregate counts for the
// manager list view.
type GalleryWithCounts struct {
	domain.Gallery
	ImageCount int64 `json:"imageCount"`
	OrderCount int64 `json:"orderCount"`
}

// GalleryService defines gallery curation (manager) and viewing (client).
type GalleryService interface {
	Create(ctx context.Context, input CreateGalleryInput) (*domain.Gallery, error)
	List(ctx context.Context, filter GalleryFilter) ([]GalleryWithCounts, error)
	Get(ctx context.Context, id string) (*domain.Gallery, error)
	Update(ctx context.Context, id string, input UpdateGalleryInput) (*domain.Gallery, error)
	Delete(ctx context.Context, id string) error

	AddImage(ctx context.Context, galleryID string, input AddImageInput) (*domain.Image, error)
	ListImages(ctx context.Context, galleryID string) ([]domain.Image, error)

	// ListForClient returns the client's own published, non-hidden galleries.
	ListForClient(ctx context.Context, userID string) ([]domain.Gallery, error)
	// GetForClient returns one gallery with images, only when owned by the
	// client; otherwise domain.ErrGalleryNotFound (ownership is not leaked).
	GetForClient(ctx context.Context, userID, galleryID string) (*domain.Gallery, error)
}

// GalleryRepository persists galleries and their images.
type GalleryRepository interface {
	Create(ctx context.Context, gallery *domain.Gallery) error
	FindByID(ctx context.Context, id string, withImages bool) (*domain.Gallery, error)
	ListWithCounts(ctx context.Context, filter GalleryFilter) ([]GalleryWithCounts, error)
	ListForUser(ctx context.Context, userID string, status domain.GalleryStatus) ([]domain.Gallery, error)
	Update(ctx context.Context, gallery *domain.Gallery) error
	Delete(ctx context.Context, id string) error

	AddImage(ctx context.Context, image *domain.Image) error
	ListImages(ctx context.Context, galleryID string) ([]domain.Image, error)
	FindImages(ctx context.Context, imageIDs []string) ([]domain.Image, error)
	// MaxSortOrder returns the highest sort order in a gallery, 0 when empty.
	MaxSortOrder(ctx context.Context, galleryID string) (int, error)
}
