package handler

type createGalleryRequest struct {
	UserID      string  `json:"userId"      validate:"required"`
	BookingID   *string `json:"bookingId"`
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"omitempty,gte=0"`
	IsFree      bool    `json:"isFree"`
	Visibility  string  `json:"visibility"  validate:"omitempty,oneof=PUBLIC PRIVATE HIDDEN"`
}

type updateGalleryRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"     validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	Visibility  *string  `json:"visibility" validate:"omitempty,oneof=PUBLIC PRIVATE HIDDEN"`
	Price       *float64 `json:"price"      validate:"omitempty,gte=0"`
	IsFree      *bool    `json:"isFree"`
}

type addImageRequest struct {
	URL          string  `json:"url"          validate:"required,url"`
	ThumbnailURL string  `json:"thumbnailUrl" validate:"omitempty,url"`
	Filename     string  `json:"filename"     validate:"required"`
	Price        float64 `json:"price"        validate:"omitempty,gte=0"`
	SortOrder    *int    `json:"sortOrder"    validate:"omitempty,gte=0"`
}
