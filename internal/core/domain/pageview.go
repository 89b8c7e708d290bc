package domain

import "time"

// PageView is a single recorded visit, used by manager analytics. Rows are
// written off the request path by the page-view dispatcher; UserID is empty
// for anonymous traffic.
type PageView struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	Path       string    `json:"path" gorm:"not null"`
	GalleryID  *string   `json:"galleryId,omitempty" gorm:"type:uuid;index"`
	UserID     *string   `json:"userId,omitempty" gorm:"type:uuid;index"`
	VisitorKey string    `json:"-" gorm:"index;not null"`
	ViewedAt   time.Time `json:"viewedAt" gorm:"index;not null"`
}
