package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/photosbyzee/studio-portal/internal/core/domain"
	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

// AnalyticsRepository answers the dashboard aggregates with plain read
// queries; it never mutates anything.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) BookingBreakdown(ctx context.Context, start, end time.Time) (*ports.BookingBreakdown, error) {
	rows := []struct {
		Status domain.BookingStatus
		Count  int64
	}{}
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Select("status, count(*) as count").
		Where("date >= ? AND date <= ?", start, end).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("booking breakdown: %w", err)
	}

	var out ports.BookingBreakdown
	for _, row := range rows {
		out.Total += row.Count
		switch row.Status {
		case domain.BookingPending:
			out.Pending = row.Count
		case domain.BookingConfirmed:
			out.Confirmed = row.Count
		case domain.BookingCompleted:
			out.Completed = row.Count
		case domain.BookingCancelled:
			out.Cancelled = row.Count
		}
	}
	return &out, nil
}

func (r *AnalyticsRepository) Revenue(ctx context.Context, start, end time.Time, galleryID string) (*ports.RevenueSummary, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("status = ?", domain.OrderCompleted).
		Where("created_at >= ? AND created_at <= ?", start, end)
	if galleryID != "" {
		q = q.Where("gallery_id = ?", galleryID)
	}

	var row struct {
		Total      float64
		OrderCount int64
	}
	err := q.Select("coalesce(sum(total_amount), 0) as total, count(*) as order_count").Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("revenue summary: %w", err)
	}
	return &ports.RevenueSummary{Total: row.Total, OrderCount: row.OrderCount}, nil
}

func (r *AnalyticsRepository) Traffic(ctx context.Context, start, end time.Time) (*ports.TrafficSummary, error) {
	var row struct {
		TotalViews     int64
		UniqueVisitors int64
		GalleryViews   int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.PageView{}).
		Where("viewed_at >= ? AND viewed_at <= ?", start, end).
		Select("count(*) as total_views, count(distinct visitor_key) as unique_visitors, count(gallery_id) as gallery_views").
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("traffic summary: %w", err)
	}
	return &ports.TrafficSummary{
		TotalViews:     row.TotalViews,
		UniqueVisitors: row.UniqueVisitors,
		GalleryViews:   row.GalleryViews,
	}, nil
}

// CountPublishedGalleries counts galleries visible to clients as of the end of
// the reporting window.
func (r *AnalyticsRepository) CountPublishedGalleries(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Gallery{}).
		Where("status = ?", domain.GalleryPublished).
		Where("created_at <= ?", end).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count published galleries: %w", err)
	}
	return count, nil
}

func (r *AnalyticsRepository) GalleryStats(ctx context.Context, galleryID string) (*ports.GalleryStats, error) {
	var gallery domain.Gallery
	err := r.db.WithContext(ctx).First(&gallery, "id = ?", galleryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGalleryNotFound
		}
		return nil, fmt.Errorf("find gallery %s: %w", galleryID, err)
	}

	stats := ports.GalleryStats{ID: gallery.ID, Title: gallery.Title}
	err = r.db.WithContext(ctx).
		Model(&domain.Image{}).
		Where("gallery_id = ?", galleryID).
		Count(&stats.ImageCount).Error
	if err != nil {
		return nil, fmt.Errorf("count gallery images: %w", err)
	}
	err = r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("gallery_id = ?", galleryID).
		Count(&stats.OrderCount).Error
	if err != nil {
		return nil, fmt.Errorf("count gallery orders: %w", err)
	}
	err = r.db.WithContext(ctx).
		Model(&domain.PageView{}).
		Where("gallery_id = ?", galleryID).
		Count(&stats.ViewCount).Error
	if err != nil {
		return nil, fmt.Errorf("count gallery views: %w", err)
	}
	return &stats, nil
}
