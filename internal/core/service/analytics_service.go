package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

const defaultReportWindow = 30 * 24 * time.Hour

// AnalyticsService assembles the manager dashboard report from aggregate
// repository reads. Each read is independent; a missing focus gallery is
// reported as not-found rather than an empty block.
type AnalyticsService struct {
	repo   ports.AnalyticsRepository
	logger zerolog.Logger
}

func NewAnalyticsService(repo ports.AnalyticsRepository, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{repo: repo, logger: logger}
}

func (s *AnalyticsService) Report(ctx context.Context, q ports.AnalyticsQuery) (*ports.AnalyticsReport, error) {
	end := q.End
	if end.IsZero() {
		end = time.Now().UTC()
	}
	start := q.Start
	if start.IsZero() {
		start = end.Add(-defaultReportWindow)
	}

	bookings, err := s.repo.BookingBreakdown(ctx, start, end)
	if err != nil {
		return nil, err
	}

	revenue, err := s.repo.Revenue(ctx, start, end, q.GalleryID)
	if err != nil {
		return nil, err
	}

	traffic, err := s.repo.Traffic(ctx, start, end)
	if err != nil {
		return nil, err
	}

	published, err := s.repo.CountPublishedGalleries(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := &ports.AnalyticsReport{
		Start:              start,
		End:                end,
		Bookings:           *bookings,
		Revenue:            *revenue,
		Traffic:            *traffic,
		PublishedGalleries: published,
	}

	if q.GalleryID != "" {
		stats, err := s.repo.GalleryStats(ctx, q.GalleryID)
		if err != nil {
			if err == domain.ErrGalleryNotFound {
				return nil, err
			}
			s.logger.Warn().Err(err).Str("gallery_id", q.GalleryID).Msg("gallery stats unavailable")
		} else {
			report.Gallery = stats
		}
	}

	return report, nil
}
