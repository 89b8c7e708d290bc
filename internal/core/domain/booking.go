package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a photo session booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

var ErrBookingNotFound = errors.New("booking not found")

// ValidBookingStatus reports whether s is one of the known booking statuses.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking is a photo session request tied to a client.
type Booking struct {
	ID          string        `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string        `json:"userId" gorm:"type:uuid;index;not null"`
	User        *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Date        time.Time     `json:"date" gorm:"index;not null"`
	Duration    int           `json:"duration" gorm:"not null;default:60"` // minutes
	Location    string        `json:"location,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	ServiceType string        `json:"serviceType,omitempty"`
	TotalPrice  float64       `json:"totalPrice"`
	Status      BookingStatus `json:"status" gorm:"type:varchar(12);not null;default:'PENDING'"`
	Galleries   []Gallery     `json:"galleries,omitempty" gorm:"foreignKey:BookingID"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
