package ports

import (
	"context"

	"github.com/promontazh/landing-api/internal/core/domain"
)

// RegisterLeadInput carries a visitor's contact request.
type RegisterLeadInput struct {
	Name  string
	Email string
	Phone string
}

// LeadService defines lead use cases.
type LeadService interface {
	// Register appends a new lead with a fresh id and a fixed submission
	// date. Returns ErrMissingFields (silent decline) unless all three
	// fields are non-empty. No email format validation, no dedup.
	Register(ctx context.Context, input RegisterLeadInput) (*domain.Client, error)

	// List returns all leads in submission order. Admin-only at the
	// transport layer.
	List(ctx context.Context) ([]domain.Client, error)
}
