// Package memory provides the default volatile adapters. State lives for
// the lifetime of the process, mirroring the page-session lifecycle of the
// original site.
package memory

import (
	"context"
	"sync"

	"github.com/promontazh/landing-api/internal/core/domain"
)

// CatalogRepository keeps the catalog in an ordered slice guarded by a
// mutex. Insertion order is the display order; deletes never renumber.
type CatalogRepository struct {
	mu       sync.RWMutex
	services []domain.Service
	nextID   int64
}

// NewCatalogRepository seeds the catalog and continues the id sequence
// after the highest seeded id.
func NewCatalogRepository(seed []domain.Service) *CatalogRepository {
	r := &CatalogRepository{nextID: 1}
	for _, s := range seed {
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
		r.services = append(r.services, s)
	}
	return r
}

func (r *CatalogRepository) List(_ context.Context) ([]domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Service, len(r.services))
	copy(out, r.services)
	return out, nil
}

func (r *CatalogRepository) FindByID(_ context.Context, id int64) (*domain.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.services {
		if s.ID == id {
			clone := s
			return &clone, nil
		}
	}
	return nil, domain.ErrServiceNotFound
}

func (r *CatalogRepository) Insert(_ context.Context, s *domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	r.services = append(r.services, *s)
	return nil
}

func (r *CatalogRepository) Update(_ context.Context, s *domain.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.services {
		if r.services[i].ID == s.ID {
			r.services[i] = *s
			return nil
		}
	}
	return domain.ErrServiceNotFound
}

func (r *CatalogRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.services {
		if r.services[i].ID == id {
			r.services = append(r.services[:i], r.services[i+1:]...)
			return nil
		}
	}
	return domain.ErrServiceNotFound
}
