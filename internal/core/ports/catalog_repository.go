package ports

import (
	"context"

	"github.com/promontazh/landing-api/internal/core/domain"
)

// CatalogRepository persists the ordered service catalog.
// Implementations must preserve insertion order and never renumber
// surviving entries on delete.
type CatalogRepository interface {
	// List returns all services in insertion order.
	List(ctx context.Context) ([]domain.Service, error)

	// FindByID returns the service with the given id, or ErrServiceNotFound.
	FindByID(ctx context.Context, id int64) (*domain.Service, error)

	// Insert appends a new service, assigning it a fresh unique id.
	Insert(ctx context.Context, s *domain.Service) error

	// Update replaces the stored service matching s.ID in place.
	// Returns ErrServiceNotFound when no such service exists.
	Update(ctx context.Context, s *domain.Service) error

	// Delete removes the service with the given id.
	// Returns ErrServiceNotFound when no such service exists.
	Delete(ctx context.Context, id int64) error
}
