package domain

import "time"

// GalleryImage records an uploaded studio photo and where it lives.
type GalleryImage struct {
	ID         string    `json:"id"`
	StudioID   string    `json:"studioId"`
	URL        string    `json:"url"`
	Caption    string    `json:"caption,omitempty"`
	SortOrder  int       `json:"sortOrder"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// GalleryRepository defines the interface for gallery records.
type GalleryRepository interface {
	GetImagesByStudio(studioID string) ([]GalleryImage, error)
	CreateImage(img *GalleryImage) error
	DeleteImage(id string) error
}
