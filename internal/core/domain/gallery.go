package domain

import (
	"errors"
	"time"
)

// GalleryStatus is the curation state of a gallery.
type GalleryStatus string

const (
	GalleryDraft     GalleryStatus = "DRAFT"
	GalleryPublished GalleryStatus = "PUBLISHED"
	GalleryArchived  GalleryStatus = "ARCHIVED"
)

// GalleryVisibility controls who may see a gallery.
type GalleryVisibility string

const (
	VisibilityPublic  GalleryVisibility = "PUBLIC"
	VisibilityPrivate GalleryVisibility = "PRIVATE"
	VisibilityHidden  GalleryVisibility = "HIDDEN"
)

var ErrGalleryNotFound = errors.New("gallery not found")
var ErrImageNotFound = errors.New("image not found")

// Gallery is a curated set of images delivered to one client, optionally
// linked to the booking it was shot for.
type Gallery struct {
	ID          string            `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string            `json:"userId" gorm:"type:uuid;index;not null"`
	User        *User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
	BookingID   *string           `json:"bookingId,omitempty" gorm:"type:uuid;index"`
	Title       string            `json:"title" gorm:"not null"`
	Description string            `json:"description,omitempty"`
	Status      GalleryStatus     `json:"status" gorm:"type:varchar(12);not null;default:'DRAFT'"`
	Visibility  GalleryVisibility `json:"visibility" gorm:"type:varchar(10);not null;default:'HIDDEN'"`
	Price       float64           `json:"price"`
	IsFree      bool              `json:"isFree"`
	Images      []Image           `json:"images,omitempty" gorm:"foreignKey:GalleryID"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// Image is a single photograph inside a gallery. SortOrder drives display
// ordering in the client area.
type Image struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	GalleryID    string    `json:"galleryId" gorm:"type:uuid;index;not null"`
	URL          string    `json:"url" gorm:"not null"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	Filename     string    `json:"filename"`
	Price        float64   `json:"price"`
	SortOrder    int       `json:"sortOrder" gorm:"index"`
	CreatedAt    time.Time `json:"createdAt"`
}
