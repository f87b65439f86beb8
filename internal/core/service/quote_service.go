package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/promontazh/landing-api/internal/api/metrics"
	"github.com/promontazh/landing-api/internal/core/domain"
	"github.com/promontazh/landing-api/internal/core/ports"
)

// QuoteService computes price estimates from the catalog. It holds no state
// of its own: every quote is unitPrice × quantity over the current catalog.
type QuoteService struct {
	repo     ports.CatalogRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewQuoteService(repo ports.CatalogRepository, notifier ports.Notifier, logger zerolog.Logger) *QuoteService {
	return &QuoteService{repo: repo, notifier: notifier, logger: logger}
}

// Calculate parses the quantity as a float (fractional quantities are fine,
// negatives are not rejected here) and multiplies by the service's unit
// price. An empty or unparseable quantity, or an unknown service id,
// declines silently — it must never yield a numeric result.
func (s *QuoteService) Calculate(ctx context.Context, input ports.QuoteInput) (*ports.QuoteResult, error) {
	raw := strings.TrimSpace(input.Quantity)
	if raw == "" {
		return nil, domain.ErrInvalidQuantity
	}
	qty, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domain.ErrInvalidQuantity
	}

	svc, err := s.repo.FindByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	total := svc.UnitPrice * qty

	metrics.QuotesCalculatedTotal.Inc()
	s.notifier.Publish(domain.Notification{
		Title:       "Quote calculated",
		Description: fmt.Sprintf("Estimated cost: %.2f RUB", total),
		Severity:    domain.SeverityNormal,
	})
	s.logger.Debug().Int64("service_id", svc.ID).Float64("quantity", qty).Float64("total", total).Msg("quote calculated")

	return &ports.QuoteResult{
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Unit:        svc.Unit,
		UnitPrice:   svc.UnitPrice,
		Quantity:    qty,
		Total:       total,
	}, nil
}
