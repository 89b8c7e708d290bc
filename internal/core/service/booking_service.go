package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

type BookingService struct {
	repo   ports.BookingRepository
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, logger: logger}
}

func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	duration := input.Duration
	if duration == 0 {
		duration = 60
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		Date:        input.Date,
		Duration:    duration,
		Location:    input.Location,
		Notes:       input.Notes,
		ServiceType: input.ServiceType,
		TotalPrice:  input.TotalPrice,
		Status:      domain.BookingPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create booking")
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", booking.ID).
		Str("user_id", booking.UserID).
		Time("date", booking.Date).
		Msg("booking created")

	return booking, nil
}

func (s *BookingService) ListForClient(ctx context.Context, userID string, status domain.BookingStatus, upcomingOnly bool) ([]domain.Booking, error) {
	filter := ports.BookingFilter{UserID: userID, Status: status}
	if upcomingOnly {
		now := time.Now().UTC()
		filter.DateFrom = &now
	}
	return s.repo.List(ctx, filter)
}

func (s *BookingService) List(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	return s.repo.List(ctx, ports.BookingFilter{Status: status})
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BookingService) Update(ctx context.Context, id string, input ports.UpdateBookingInput) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		booking.Date = *input.Date
	}
	if input.Duration != nil {
		booking.Duration = *input.Duration
	}
	if input.Location != nil {
		booking.Location = *input.Location
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}
	if input.ServiceType != nil {
		booking.ServiceType = *input.ServiceType
	}
	if input.TotalPrice != nil {
		booking.TotalPrice = *input.TotalPrice
	}
	if input.Status != nil {
		booking.Status = *input.Status
	}
	booking.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, booking); err != nil {
		s.logger.Error().Err(err).Str("booking_id", id).Msg("failed to update booking")
		return nil, err
	}

	s.logger.Info().Str("booking_id", id).Str("status", string(booking.Status)).Msg("booking updated")
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("booking_id", id).Msg("booking deleted")
	return nil
}
