package ports

import (
	"context"
	"time"
)

// PageViewInput is one visit observed by a handler. VisitorKey identifies the
// visitor for deduplication: the user id when authenticated, otherwise a
// client address fingerprint.
type PageViewInput struct {
	Path       string
	GalleryID  string
	UserID     string
	VisitorKey string
	ViewedAt   time.Time
}

// PageViewService records page views. Called from dispatcher workers, never
// directly from handlers.
type PageViewService interface {
	Process(ctx context.Context, in PageViewInput) error
}

// PageViewRepository persists page view rows.
type PageViewRepository interface {
	Insert(ctx context.Context, in PageViewInput) error
}
