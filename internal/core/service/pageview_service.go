package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

// ViewDedup abstracts the duplicate-visit store (Redis). A repeat visit by
// the same visitor to the same path within the TTL window is counted once.
type ViewDedup interface {
	IsDuplicate(ctx context.Context, visitorKey, path string) (bool, error)
	Mark(ctx context.Context, visitorKey, path string) error
}

type pageViewService struct {
	repo  ports.PageViewRepository
	dedup ViewDedup
	log   zerolog.Logger
}

// NewPageViewService returns a PageViewService implementation.
func NewPageViewService(repo ports.PageViewRepository, dedup ViewDedup, log zerolog.Logger) ports.PageViewService {
	return &pageViewService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single page view.
func (s *pageViewService) Process(ctx context.Context, in ports.PageViewInput) error {
	isDup, err := s.dedup.IsDuplicate(ctx, in.VisitorKey, in.Path)
	if err != nil {
		s.log.Warn().Err(err).Str("path", in.Path).Msg("view dedup check failed, recording anyway")
	} else if isDup {
		s.log.Debug().Str("path", in.Path).Str("visitor", in.VisitorKey).Msg("duplicate view skipped")
		return nil
	}

	if markErr := s.dedup.Mark(ctx, in.VisitorKey, in.Path); markErr != nil {
		s.log.Warn().Err(markErr).Str("path", in.Path).Msg("failed to set view dedup key")
	}

	if err := s.repo.Insert(ctx, in); err != nil {
		return err
	}

	s.log.Debug().Str("path", in.Path).Str("gallery_id", in.GalleryID).Msg("page view recorded")
	return nil
}
