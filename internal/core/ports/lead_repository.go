package ports

import (
	"context"

	"github.com/promontazh/landing-api/internal/core/domain"
)

// LeadRepository persists submitted leads in submission order.
// Leads are append-only: there is no update or delete.
type LeadRepository interface {
	// Insert appends a lead. Implementations must keep ids unique; when the
	// proposed timestamp-derived id collides they may bump it.
	Insert(ctx context.Context, c *domain.Client) error

	// List returns all leads in submission order.
	List(ctx context.Context) ([]domain.Client, error)
}
