package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

// OrderService implements image purchases. The payment step is a stub: the
// order total is computed server-side and the order is marked COMPLETED
// without reaching a processor.
type OrderService struct {
	orders    ports.OrderRepository
	galleries ports.GalleryRepository
	logger    zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, galleries ports.GalleryRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, galleries: galleries, logger: logger}
}

func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	var images []domain.Image
	var galleryID *string

	if input.GalleryID != nil && *input.GalleryID != "" {
		gallery, err := s.galleries.FindByID(ctx, *input.GalleryID, true)
		if err != nil {
			return nil, err
		}
		if gallery.UserID != input.UserID {
			return nil, domain.ErrGalleryNotFound
		}
		images = gallery.Images
		galleryID = &gallery.ID
	} else {
		found, err := s.galleries.FindImages(ctx, input.ImageIDs)
		if err != nil {
			return nil, err
		}
		if len(found) != len(input.ImageIDs) {
			return nil, domain.ErrImageNotFound
		}
		images = found
	}

	if len(images) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	now := time.Now().UTC()
	order := &domain.Order{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		GalleryID: galleryID,
		// Stub payment: completed immediately, no processor involved.
		Status:    domain.OrderCompleted,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var total float64
	for _, img := range images {
		order.Items = append(order.Items, domain.OrderItem{
			ID:      uuid.NewString(),
			OrderID: order.ID,
			ImageID: img.ID,
			Price:   img.Price,
		})
		total += img.Price
	}
	order.TotalAmount = total

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create order")
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("user_id", order.UserID).
		Int("items", len(order.Items)).
		Float64("total", order.TotalAmount).
		Msg("order completed")

	return order, nil
}

func (s *OrderService) ListForClient(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListForUser(ctx, userID)
}
