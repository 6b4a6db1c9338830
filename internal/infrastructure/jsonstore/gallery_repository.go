package jsonstore

import (
	"fmt"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/domain"
)

type galleryRepository struct {
	store *Store
}

// NewGalleryRepository creates a gallery repository over the JSON store.
func NewGalleryRepository(store *Store) domain.GalleryRepository {
	return &galleryRepository{store: store}
}

func (r *galleryRepository) GetImagesByStudio(studioID string) ([]domain.GalleryImage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []domain.GalleryImage
	for _, img := range r.store.data.Gallery {
		if img.StudioID == studioID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (r *galleryRepository) CreateImage(img *domain.GalleryImage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.data.Gallery = append(r.store.data.Gallery, *img)
	if err := r.store.persistLocked(); err != nil {
		r.store.data.Gallery = r.store.data.Gallery[:len(r.store.data.Gallery)-1]
		return fmt.Errorf("persist gallery image: %w", err)
	}
	return nil
}

func (r *galleryRepository) DeleteImage(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, img := range r.store.data.Gallery {
		if img.ID != id {
			continue
		}
		removed := img
		r.store.data.Gallery = append(r.store.data.Gallery[:i], r.store.data.Gallery[i+1:]...)
		if err := r.store.persistLocked(); err != nil {
			r.store.data.Gallery = append(r.store.data.Gallery, removed)
			return fmt.Errorf("persist gallery removal: %w", err)
		}
		return nil
	}
	return fmt.Errorf("gallery image %s not found", id)
}
