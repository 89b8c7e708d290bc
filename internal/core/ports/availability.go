package ports

import (
	"context"
	"time"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
)

// CreateSlotInput carries the data for a new availability slot.
type CreateSlotInput struct {
	Date         time.Time
	StartTime    string
	EndTime      string
	IsRecurring  bool
	RecurringDay string
}

// SlotView is the client-facing slot shape, grouped by date.
type SlotView struct {
	ID          string `json:"id"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsRecurring bool   `json:"isRecurring"`
}

// ClientAvailability is the booking-calendar payload: open slots keyed by
// "YYYY-MM-DD" plus the dates already taken by non-cancelled bookings.
type ClientAvailability struct {
	Slots       map[string][]SlotView `json:"slots"`
	BookedDates []string              `json:"bookedDates"`
}

// AvailabilityService manages the studio's bookable windows.
type AvailabilityService interface {
	CreateSlot(ctx context.Context, input CreateSlotInput) (*domain.AvailabilitySlot, error)
	// ListSlots returns available slots for the manager view, date ascending.
	ListSlots(ctx context.Context, from, to *time.Time) ([]domain.AvailabilitySlot, error)
	DeleteSlot(ctx context.Context, id string) error
	// ForClient resolves the booking calendar for a date window; when the
	// window is open-ended it defaults to the next 30 days.
	ForClient(ctx context.Context, from, to *time.Time) (*ClientAvailability, error)
}

// AvailabilityRepository persists availability slots.
type AvailabilityRepository interface {
	Create(ctx context.Context, slot *domain.AvailabilitySlot) error
	ListAvailable(ctx context.Context, from, to *time.Time) ([]domain.AvailabilitySlot, error)
	Delete(ctx context.Context, id string) error
}
