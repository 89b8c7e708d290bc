package ports

import (
	"context"
	"time"
)

// AnalyticsQuery selects the reporting window and an optional gallery focus.
type AnalyticsQuery struct {
	Start     time.Time
	End       time.Time
	GalleryID string
}

// BookingBreakdown counts bookings by status inside the window.
type BookingBreakdown struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

// RevenueSummary aggregates completed orders inside the window.
type RevenueSummary struct {
	Total      float64 `json:"total"`
	OrderCount int64   `json:"orderCount"`
}

// TrafficSummary aggregates page views inside the window.
type TrafficSummary struct {
	TotalViews     int64 `json:"totalViews"`
	UniqueVisitors int64 `json:"uniqueVisitors"`
	GalleryViews   int64 `json:"galleryViews"`
}

// GalleryStats is the per-gallery focus block, present only when the query
// names a gallery.
type GalleryStats struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ImageCount int64  `json:"imageCount"`
	OrderCount int64  `json:"orderCount"`
	ViewCount  int64  `json:"viewCount"`
}

// AnalyticsReport is the manager dashboard payload.
type AnalyticsReport struct {
	Start              time.Time        `json:"start"`
	End                time.Time        `json:"end"`
	Bookings           BookingBreakdown `json:"bookings"`
	Revenue            RevenueSummary   `json:"revenue"`
	Traffic            TrafficSummary   `json:"traffic"`
	PublishedGalleries int64            `json:"publishedGalleries"`
	Gallery            *GalleryStats    `json:"gallery,omitempty"`
}

// AnalyticsService computes the manager analytics report.
type AnalyticsService interface {
	Report(ctx context.Context, q AnalyticsQuery) (*AnalyticsReport, error)
}

// AnalyticsRepository runs the aggregate queries behind the report. Every
// method is a single read; there is no cross-call state.
type AnalyticsRepository interface {
	BookingBreakdown(ctx context.Context, start, end time.Time) (*BookingBreakdown, error)
	Revenue(ctx context.Context, start, end time.Time, galleryID string) (*RevenueSummary, error)
	Traffic(ctx context.Context, start, end time.Time) (*TrafficSummary, error)
	CountPublishedGalleries(ctx context.Context, start, end time.Time) (int64, error)
	GalleryStats(ctx context.Context, galleryID string) (*GalleryStats, error)
}
