package ports

import (
	"context"

	"github.com/promontazh/landing-api/internal/core/domain"
)

// AddServiceInput carries the data for a new catalog entry.
type AddServiceInput struct {
	Name      string
	UnitPrice float64
	Unit      string
}

// CatalogService defines the catalog use cases. Invalid input is declined
// silently: the sentinel errors below mean "nothing happened", not "report
// a failure to the user".
type CatalogService interface {
	List(ctx context.Context) ([]domain.Service, error)

	// Add appends a new service. Returns ErrMissingFields (a silent
	// decline) when name or unit is empty or the price is not positive.
	Add(ctx context.Context, input AddServiceInput) (*domain.Service, error)

	// UpdateField replaces a single attribute in place with no content
	// validation. value must be a string for name/unit and a float64 for
	// unit_price. Returns ErrServiceNotFound when the id is unknown.
	UpdateField(ctx context.Context, id int64, field domain.ServiceField, value any) (*domain.Service, error)

	// SetPrice updates only the unit price.
	SetPrice(ctx context.Context, id int64, price float64) (*domain.Service, error)

	// Delete removes the matching entry. ErrServiceNotFound means no-op.
	Delete(ctx context.Context, id int64) error
}
