package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/promontazh/landing-api/internal/api/metrics"
	"github.com/promontazh/landing-api/internal/core/domain"
	"github.com/promontazh/landing-api/internal/core/ports"
)

// LeadService implements visitor registration and the admin lead listing.
type LeadService struct {
	repo     ports.LeadRepository
	notifier ports.Notifier
	mailer   ports.LeadMailer // optional; nil disables alerts
	logger   zerolog.Logger
}

func NewLeadService(repo ports.LeadRepository, notifier ports.Notifier, mailer ports.LeadMailer, logger zerolog.Logger) *LeadService {
	return &LeadService{repo: repo, notifier: notifier, mailer: mailer, logger: logger}
}

// Register appends a new lead. All three fields must be non-empty;
// otherwise the call declines silently with ErrMissingFields. The id is
// derived from the submission timestamp and the date is fixed at creation,
// never recomputed.
func (s *LeadService) Register(ctx context.Context, input ports.RegisterLeadInput) (*domain.Client, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" {
		return nil, domain.ErrMissingFields
	}

	now := time.Now()
	client := &domain.Client{
		ID:    now.UnixMilli(),
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
		Date:  now.Format(domain.LeadDateFormat),
	}

	if err := s.repo.Insert(ctx, client); err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to register lead")
		return nil, err
	}

	metrics.LeadsRegisteredTotal.Inc()
	s.notifier.Publish(domain.Notification{
		Title:       "Request received",
		Description: "Registered. We will contact you shortly.",
		Severity:    domain.SeverityNormal,
	})
	s.logger.Info().Int64("lead_id", client.ID).Str("name", client.Name).Msg("lead registered")

	// Alerting the owner is best effort; the lead is already stored.
	if s.mailer != nil {
		if err := s.mailer.SendLeadAlert(*client); err != nil {
			s.logger.Warn().Err(err).Int64("lead_id", client.ID).Msg("failed to send lead alert")
		}
	}

	return client, nil
}

func (s *LeadService) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.List(ctx)
}
