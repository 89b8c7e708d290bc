package domain

import (
	"errors"
	"time"
)

// OrderStatus is the payment state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

var ErrOrderNotFound = errors.New("order not found")
var ErrEmptyOrder = errors.New("order must contain at least one image")

// Order is a client purchase of images, either a whole gallery or a
// hand-picked selection.
type Order struct {
	ID          string      `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string      `json:"userId" gorm:"type:uuid;index;not null"`
	GalleryID   *string     `json:"galleryId,omitempty" gorm:"type:uuid;index"`
	Gallery     *Gallery    `json:"gallery,omitempty" gorm:"foreignKey:GalleryID"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status" gorm:"type:varchar(12);not null;default:'PENDING'"`
	Items       []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// OrderItem is one purchased image within an order.
type OrderItem struct {
	ID      string  `json:"id" gorm:"primaryKey;type:uuid"`
	OrderID string  `json:"orderId" gorm:"type:uuid;index;not null"`
	ImageID string  `json:"imageId" gorm:"type:uuid;not null"`
	Image   *Image  `json:"image,omitempty" gorm:"foreignKey:ImageID"`
	Price   float64 `json:"price"`
}
