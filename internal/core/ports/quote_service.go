package ports

import "context"

// QuoteInput carries the calculator request. Quantity stays a raw string so
// the parse-or-decline semantics live in one place.
type QuoteInput struct {
	ServiceID int64
	Quantity  string
}

// QuoteResult is a computed price estimate.
type QuoteResult struct {
	ServiceID   int64
	ServiceName string
	Unit        string
	UnitPrice   float64
	Quantity    float64
	Total       float64
}

// QuoteService computes price estimates. Calculate returns
// ErrInvalidQuantity when the quantity is empty or unparseable and
// ErrServiceNotFound when the id is unknown; both are silent declines —
// an invalid input must never produce a numeric result.
type QuoteService interface {
	Calculate(ctx context.Context, input QuoteInput) (*QuoteResult, error)
}
