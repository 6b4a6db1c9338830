package application

import (
	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/domain"
)

type StudioService struct {
	repo domain.StudioRepository
}

// NewStudioService creates a new studio service.
func NewStudioService(repo domain.StudioRepository) *StudioService {
	return &StudioService{repo: repo}
}

// GetAllStudios returns every studio.
func (s *StudioService) GetAllStudios() ([]domain.Studio, error) {
	return s.repo.GetAllStudios()
}

// GetActiveStudios returns only studios open for booking.
func (s *StudioService) GetActiveStudios() ([]domain.Studio, error) {
	studios, err := s.repo.GetAllStudios()
	if err != nil {
		return nil, err
	}
	active := make([]domain.Studio, 0, len(studios))
	for _, st := range studios {
		if st.Active {
			active = append(active, st)
		}
	}
	return active, nil
}

// GetStudioByID returns a studio by id.
func (s *StudioService) GetStudioByID(id string) (*domain.Studio, error) {
	return s.repo.GetStudioByID(id)
}

// GetStudioBySlug returns a studio by its URL slug.
func (s *StudioService) GetStudioBySlug(slug string) (*domain.Studio, error) {
	return s.repo.GetStudioBySlug(slug)
}
