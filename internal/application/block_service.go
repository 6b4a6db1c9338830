package application

import (
	"fmt"
	"time"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/domain"
	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/engine"
	"github.com/google/uuid"
)

type BlockService struct {
	blockRepo  domain.BlockRepository
	studioRepo domain.StudioRepository
	cache      *BlockedDatesCache
}

// NewBlockService creates a new availability-block service.
func NewBlockService(blockRepo domain.BlockRepository, studioRepo domain.StudioRepository, cache *BlockedDatesCache) *BlockService {
	return &BlockService{
		blockRepo:  blockRepo,
		studioRepo: studioRepo,
		cache:      cache,
	}
}

// CreateBlock reserves a date range for the back office (maintenance,
// owner use). Blocked days behave exactly like booked days to the engine.
func (s *BlockService) CreateBlock(studioID string, start, end time.Time, reason string) (*domain.Block, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("block end date precedes start date")
	}
	if _, err := s.studioRepo.GetStudioByID(studioID); err != nil {
		return nil, err
	}

	block := &domain.Block{
		ID:        uuid.NewString(),
		StudioID:  studioID,
		StartDate: engine.Midnight(start),
		EndDate:   engine.Midnight(end),
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.blockRepo.CreateBlock(block); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(studioID)
	}
	return block, nil
}

// DeleteBlock removes a block and frees its dates.
func (s *BlockService) DeleteBlock(id, studioID string) error {
	if err := s.blockRepo.DeleteBlock(id); err != nil {
		return err
	}
	if s.cache != nil && studioID != "" {
		s.cache.Invalidate(studioID)
	}
	return nil
}

// GetBlocksByStudio returns all blocks for a studio.
func (s *BlockService) GetBlocksByStudio(studioID string) ([]domain.Block, error) {
	return s.blockRepo.GetBlocksByStudio(studioID)
}
