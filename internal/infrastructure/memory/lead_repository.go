package memory

import (
	"context"
	"sync"

	"github.com/promontazh/landing-api/internal/core/domain"
)

// LeadRepository is an append-only, ordered in-memory lead list.
type LeadRepository struct {
	mu     sync.RWMutex
	leads  []domain.Client
	lastID int64
}

func NewLeadRepository() *LeadRepository {
	return &LeadRepository{}
}

// Insert appends the lead. Timestamp-derived ids can collide when two
// submissions land in the same millisecond; the later one is bumped past
// the last stored id.
func (r *LeadRepository) Insert(_ context.Context, c *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID <= r.lastID {
		c.ID = r.lastID + 1
	}
	r.lastID = c.ID
	r.leads = append(r.leads, *c)
	return nil
}

func (r *LeadRepository) List(_ context.Context) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Client, len(r.leads))
	copy(out, r.leads)
	return out, nil
}
