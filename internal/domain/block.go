package domain

import "time"

// Block is an administrative availability block: a closed date range during
// which a studio cannot be booked (maintenance, owner use, cleaning hold).
type Block struct {
	ID        string    `json:"id"`
	StudioID  string    `json:"studioId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockRepository defines the interface for availability-block operations.
type BlockRepository interface {
	GetBlocksByStudio(studioID string) ([]Block, error)
	CreateBlock(block *Block) error
	DeleteBlock(id string) error
}
