package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

const defaultLookahead = 30 * 24 * time.Hour

type AvailabilityService struct {
	slots    ports.AvailabilityRepository
	bookings ports.BookingRepository
}

func NewAvailabilityService(slots ports.AvailabilityRepository, bookings ports.BookingRepository) *AvailabilityService {
	return &AvailabilityService{slots: slots, bookings: bookings}
}

func (s *AvailabilityService) CreateSlot(ctx context.Context, input ports.CreateSlotInput) (*domain.AvailabilitySlot, error) {
	slot := &domain.AvailabilitySlot{
		ID:           uuid.NewString(),
		Date:         input.Date,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		IsRecurring:  input.IsRecurring,
		RecurringDay: input.RecurringDay,
		IsAvailable:  true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *AvailabilityService) ListSlots(ctx context.Context, from, to *time.Time) ([]domain.AvailabilitySlot, error) {
	return s.slots.ListAvailable(ctx, from, to)
}

func (s *AvailabilityService) DeleteSlot(ctx context.Context, id string) error {
	return s.slots.Delete(ctx, id)
}

// ForClient builds the booking-calendar payload: open slots grouped by day,
// plus the dates already taken by non-cancelled bookings.
func (s *AvailabilityService) ForClient(ctx context.Context, from, to *time.Time) (*ports.ClientAvailability, error) {
	now := time.Now().UTC()
	start := now
	if from != nil {
		start = *from
	}
	end := start.Add(defaultLookahead)
	if to != nil {
		end = *to
	}

	slots, err := s.slots.ListAvailable(ctx, &start, &end)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.List(ctx, ports.BookingFilter{
		DateFrom:         &start,
		DateTo:           &end,
		ExcludeCancelled: true,
	})
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]ports.SlotView)
	for _, slot := range slots {
		key := slot.Date.UTC().Format("2006-01-02")
		byDate[key] = append(byDate[key], ports.SlotView{
			ID:          slot.ID,
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
			IsRecurring: slot.IsRecurring,
		})
	}

	booked := make([]string, 0, len(bookings))
	for _, b := range bookings {
		booked = append(booked, b.Date.UTC().Format(time.RFC3339))
	}

	return &ports.ClientAvailability{Slots: byDate, BookedDates: booked}, nil
}
