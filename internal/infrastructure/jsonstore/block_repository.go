package jsonstore

import (
	"fmt"

	"github.com/FerasMahmoud/MustaqarRS-sub000/internal/domain"
)

type blockRepository struct {
	store *Store
}

// NewBlockRepository creates an availability-block repository over the
// JSON store.
func NewBlockRepository(store *Store) domain.BlockRepository {
	return &blockRepository{store: store}
}

// GetBlocksByStudio returns all blocks for a studio.
func (r *blockRepository) GetBlocksByStudio(studioID string) ([]domain.Block, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []domain.Block
	for _, b := range r.store.data.Blocks {
		if b.StudioID == studioID {
			out = append(out, b)
		}
	}
	return out, nil
}

// CreateBlock persists a new block.
func (r *blockRepository) CreateBlock(block *domain.Block) error {
	if block.EndDate.Before(block.StartDate) {
		return fmt.Errorf("block end date precedes start date")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.data.Blocks = append(r.store.data.Blocks, *block)
	if err := r.store.persistLocked(); err != nil {
		r.store.data.Blocks = r.store.data.Blocks[:len(r.store.data.Blocks)-1]
		return fmt.Errorf("persist block: %w", err)
	}
	return nil
}

// DeleteBlock removes a block by id.
func (r *blockRepository) DeleteBlock(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, b := range r.store.data.Blocks {
		if b.ID != id {
			continue
		}
		removed := b
		r.store.data.Blocks = append(r.store.data.Blocks[:i], r.store.data.Blocks[i+1:]...)
		if err := r.store.persistLocked(); err != nil {
			r.store.data.Blocks = append(r.store.data.Blocks, removed)
			return fmt.Errorf("persist block removal: %w", err)
		}
		return nil
	}
	return fmt.Errorf("block %s not found", id)
}
