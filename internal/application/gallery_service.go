package application

import (
	"time"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/domain"
	"github.com/google/uuid"
)

type GalleryService struct {
	galleryRepo domain.GalleryRepository
	studioRepo  domain.StudioRepository
}

// NewGalleryService creates a new gallery service.
func NewGalleryService(galleryRepo domain.GalleryRepository, studioRepo domain.StudioRepository) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		studioRepo:  studioRepo,
	}
}

// GetImagesByStudio returns a studio's gallery, in sort order.
func (s *GalleryService) GetImagesByStudio(studioID string) ([]domain.GalleryImage, error) {
	return s.galleryRepo.GetImagesByStudio(studioID)
}

// AddImage records an uploaded photo and appends its URL to the studio's
// photo list so the listing page picks it up without a second lookup.
func (s *GalleryService) AddImage(studioID, url, caption string, sortOrder int) (*domain.GalleryImage, error) {
	if _, err := s.studioRepo.GetStudioByID(studioID); err != nil {
		return nil, err
	}

	img := &domain.GalleryImage{
		ID:         uuid.NewString(),
		StudioID:   studioID,
		URL:        url,
		Caption:    caption,
		SortOrder:  sortOrder,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.galleryRepo.CreateImage(img); err != nil {
		return nil, err
	}
	if err := s.studioRepo.AddStudioPhoto(studioID, url); err != nil {
		return nil, err
	}
	return img, nil
}

// DeleteImage removes a gallery record. The S3 object is left in place.
func (s *GalleryService) DeleteImage(id string) error {
	return s.galleryRepo.DeleteImage(id)
}
