package domain

import (
	"errors"
	"time"
)

var ErrSlotNotFound = errors.New("availability slot not found")

// AvailabilitySlot is a window the studio offers for bookings. StartTime and
// EndTime are wall-clock strings in "HH:MM" form; Date carries the day.
type AvailabilitySlot struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Date         time.Time `json:"date" gorm:"index;not null"`
	StartTime    string    `json:"startTime" gorm:"type:varchar(5);not null"`
	EndTime      string    `json:"endTime" gorm:"type:varchar(5);not null"`
	IsRecurring  bool      `json:"isRecurring"`
	RecurringDay string    `json:"recurringDay,omitempty"`
	IsAvailable  bool      `json:"isAvailable" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt"`
}
