package handler

import "time"

type createBookingRequest struct {
	Date        time.Time `json:"date"        validate:"required"`
	Duration    int       `json:"duration"    validate:"omitempty,gt=0"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
	ServiceType string    `json:"serviceType" validate:"required"`
	TotalPrice  float64   `json:"totalPrice"  validate:"omitempty,gte=0"`
}

// managerCreateBookingRequest is the manager variant: the owning client is
// named in the payload instead of taken from the session.
type managerCreateBookingRequest struct {
	UserID string `json:"userId" validate:"required"`
	createBookingRequest
}

type updateBookingRequest struct {
	Date        *time.Time `json:"date"`
	Duration    *int       `json:"duration"    validate:"omitempty,gt=0"`
	Location    *string    `json:"location"`
	Notes       *string    `json:"notes"`
	ServiceType *string    `json:"serviceType"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
	TotalPrice  *float64   `json:"totalPrice"  validate:"omitempty,gte=0"`
}
