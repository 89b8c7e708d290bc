package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

type GalleryService struct {
	repo   ports.GalleryRepository
	logger zerolog.Logger
}

func NewGalleryService(repo ports.GalleryRepository, logger zerolog.Logger) *GalleryService {
	return &GalleryService{repo: repo, logger: logger}
}

func (s *GalleryService) Create(ctx context.Context, input ports.CreateGalleryInput) (*domain.Gallery, error) {
	visibility := input.Visibility
	if visibility == "" {
		visibility = domain.VisibilityHidden
	}

	now := time.Now().UTC()
	gallery := &domain.Gallery{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		BookingID:   input.BookingID,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.GalleryDraft,
		Visibility:  visibility,
		Price:       input.Price,
		IsFree:      input.IsFree,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, gallery); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create gallery")
		return nil, err
	}

	s.logger.Info().Str("gallery_id", gallery.ID).Str("user_id", gallery.UserID).Msg("gallery created")
	return gallery, nil
}

func (s *GalleryService) List(ctx context.Context, filter ports.GalleryFilter) ([]ports.GalleryWithCounts, error) {
	return s.repo.ListWithCounts(ctx, filter)
}

func (s *GalleryService) Get(ctx context.Context, id string) (*domain.Gallery, error) {
	return s.repo.FindByID(ctx, id, true)
}

func (s *GalleryService) Update(ctx context.Context, id string, input ports.UpdateGalleryInput) (*domain.Gallery, error) {
	gallery, err := s.repo.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		gallery.Title = *input.Title
	}
	if input.Description != nil {
		gallery.Description = *input.Description
	}
	if input.Status != nil {
		gallery.Status = *input.Status
	}
	if input.Visibility != nil {
		gallery.Visibility = *input.Visibility
	}
	if input.Price != nil {
		gallery.Price = *input.Price
	}
	if input.IsFree != nil {
		gallery.IsFree = *input.IsFree
	}
	gallery.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, gallery); err != nil {
		s.logger.Error().Err(err).Str("gallery_id", id).Msg("failed to update gallery")
		return nil, err
	}
	return gallery, nil
}

func (s *GalleryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id, false); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("gallery_id", id).Msg("gallery deleted")
	return nil
}

func (s *GalleryService) AddImage(ctx context.Context, galleryID string, input ports.AddImageInput) (*domain.Image, error) {
	if _, err := s.repo.FindByID(ctx, galleryID, false); err != nil {
		return nil, err
	}

	sortOrder := 0
	if input.SortOrder != nil {
		sortOrder = *input.SortOrder
	} else {
		max, err := s.repo.MaxSortOrder(ctx, galleryID)
		if err != nil {
			return nil, err
		}
		sortOrder = max + 1
	}

	image := &domain.Image{
		ID:           uuid.NewString(),
		GalleryID:    galleryID,
		URL:          input.URL,
		ThumbnailURL: input.ThumbnailURL,
		Filename:     input.Filename,
		Price:        input.Price,
		SortOrder:    sortOrder,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.AddImage(ctx, image); err != nil {
		s.logger.Error().Err(err).Str("gallery_id", galleryID).Msg("failed to add image")
		return nil, err
	}
	return image, nil
}

func (s *GalleryService) ListImages(ctx context.Context, galleryID string) ([]domain.Image, error) {
	return s.repo.ListImages(ctx, galleryID)
}

func (s *GalleryService) ListForClient(ctx context.Context, userID string) ([]domain.Gallery, error) {
	return s.repo.ListForUser(ctx, userID, domain.GalleryPublished)
}

func (s *GalleryService) GetForClient(ctx context.Context, userID, galleryID string) (*domain.Gallery, error) {
	gallery, err := s.repo.FindByID(ctx, galleryID, true)
	if err != nil {
		return nil, err
	}
	// Not-owned reads the same as not-found so ownership is never leaked.
	if gallery.UserID != userID || gallery.Visibility == domain.VisibilityHidden {
		return nil, domain.ErrGalleryNotFound
	}
	return gallery, nil
}
