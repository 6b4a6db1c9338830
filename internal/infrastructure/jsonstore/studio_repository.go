package jsonstore

import (
	"fmt"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/domain"
)

type studioRepository struct {
	store *Store
}

// NewStudioRepository creates a studio repository over the JSON store.
func NewStudioRepository(store *Store) domain.StudioRepository {
	return &studioRepository{store: store}
}

// GetAllStudios returns every studio in the system.
func (r *studioRepository) GetAllStudios() ([]domain.Studio, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Studio, len(r.store.data.Studios))
	copy(out, r.store.data.Studios)
	return out, nil
}

// GetStudioByID returns a studio by its id.
func (r *studioRepository) GetStudioByID(id string) (*domain.Studio, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, st := range r.store.data.Studios {
		if st.ID == id {
			found := st
			return &found, nil
		}
	}
	return nil, fmt.Errorf("studio %s not found", id)
}

// GetStudioBySlug returns a studio by its URL slug.
func (r *studioRepository) GetStudioBySlug(slug string) (*domain.Studio, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, st := range r.store.data.Studios {
		if st.Slug == slug {
			found := st
			return &found, nil
		}
	}
	return nil, fmt.Errorf("studio with slug %s not found", slug)
}

// AddStudioPhoto appends an uploaded photo URL to the studio.
func (r *studioRepository) AddStudioPhoto(id, url string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.data.Studios {
		if r.store.data.Studios[i].ID != id {
			continue
		}
		r.store.data.Studios[i].Photos = append(r.store.data.Studios[i].Photos, url)
		if err := r.store.persistLocked(); err != nil {
			photos := r.store.data.Studios[i].Photos
			r.store.data.Studios[i].Photos = photos[:len(photos)-1]
			return fmt.Errorf("persist studio photo: %w", err)
		}
		return nil
	}
	return fmt.Errorf("studio %s not found", id)
}
