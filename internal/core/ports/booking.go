package ports

import (
	"context"
	"time"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
)

// CreateBookingInput carries the data for a new session booking.
type CreateBookingInput struct {
	UserID      string
	Date        time.Time
	Duration    int
	Location    string
	Notes       string
	ServiceType string
	TotalPrice  float64
}

// UpdateBookingInput applies a partial update; nil fields are left untouched.
type UpdateBookingInput struct {
	Date        *time.Time
	Duration    *int
	Location    *string
	Notes       *string
	ServiceType *string
	Status      *domain.BookingStatus
	TotalPrice  *float64
}

// BookingFilter narrows repository listings.
type BookingFilter struct {
	UserID   string
	Status   domain.BookingStatus
	DateFrom *time.Time
	DateTo   *time.Time
	// ExcludeCancelled drops CANCELLED rows; used by availability lookups.
	ExcludeCancelled bool
}

// BookingService defines use-case operations for bookings.
type BookingService interface {
	// Create registers a PENDING booking owned by input.UserID.
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	// ListForClient returns a client's own bookings, date ascending.
	ListForClient(ctx context.Context, userID string, status domain.BookingStatus, upcomingOnly bool) ([]domain.Booking, error)
	// List returns all bookings for the manager view, newest date first.
	List(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, id string, input UpdateBookingInput) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// BookingRepository persists bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id string) error
}
