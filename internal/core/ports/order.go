package ports

import (
	"context"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
)

// CreateOrderInput is a client purchase request: either a whole gallery
// (GalleryID set, ImageIDs empty) or a selection of images.
type CreateOrderInput struct {
	UserID    string
	GalleryID *string
	ImageIDs  []string
}

// OrderService defines purchase operations. Payment is a stub: orders are
// marked COMPLETED without contacting any processor.
type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	// ListForClient returns a client's order history, newest first.
	ListForClient(ctx context.Context, userID string) ([]domain.Order, error)
}

// OrderRepository persists orders and their items.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	ListForUser(ctx context.Context, userID string) ([]domain.Order, error)
}
