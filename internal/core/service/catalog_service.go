package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/promontazh/landing-api/internal/api/metrics"
	"github.com/promontazh/landing-api/internal/core/domain"
	"github.com/promontazh/landing-api/internal/core/ports"
)

// CatalogService implements the catalog use cases. Invalid input is a
// silent decline: the repository stays untouched and no notification is
// emitted.
type CatalogService struct {
	repo     ports.CatalogRepository
	notifier ports.Notifier
	logger   zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, notifier ports.Notifier, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, notifier: notifier, logger: logger}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Service, error) {
	return s.repo.List(ctx)
}

// Add appends a new service to the end of the catalog. Empty name or unit,
// or a non-positive price, declines silently with ErrMissingFields.
func (s *CatalogService) Add(ctx context.Context, input ports.AddServiceInput) (*domain.Service, error) {
	if input.Name == "" || input.Unit == "" || input.UnitPrice <= 0 {
		return nil, domain.ErrMissingFields
	}

	svc := &domain.Service{
		Name:      input.Name,
		UnitPrice: input.UnitPrice,
		Unit:      input.Unit,
	}
	if err := s.repo.Insert(ctx, svc); err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to add service")
		return nil, err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("add").Inc()
	s.notifier.Publish(domain.Notification{
		Title:       "Service added",
		Description: fmt.Sprintf("%q is now in the catalog", svc.Name),
		Severity:    domain.SeverityNormal,
	})
	s.logger.Info().Int64("service_id", svc.ID).Str("name", svc.Name).Msg("service added")
	return svc, nil
}

// UpdateField replaces one attribute in place. There is deliberately no
// content validation here: an empty name or a negative price is stored as
// given. Unknown ids decline silently with ErrServiceNotFound.
func (s *CatalogService) UpdateField(ctx context.Context, id int64, field domain.ServiceField, value any) (*domain.Service, error) {
	if !field.Valid() {
		return nil, domain.ErrUnknownField
	}

	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch field {
	case domain.FieldName:
		v, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("update field %s: %w", field, domain.ErrUnknownField)
		}
		svc.Name = v
	case domain.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("update field %s: %w", field, domain.ErrUnknownField)
		}
		svc.Unit = v
	case domain.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return nil, fmt.Errorf("update field %s: %w", field, domain.ErrUnknownField)
		}
		svc.UnitPrice = v
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("update_field").Inc()
	s.notifier.Publish(domain.Notification{
		Title:       "Service updated",
		Description: "Changes saved",
		Severity:    domain.SeverityNormal,
	})
	return svc, nil
}

// SetPrice is the specialized price-only update used by the inline price
// editor.
func (s *CatalogService) SetPrice(ctx context.Context, id int64, price float64) (*domain.Service, error) {
	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	svc.UnitPrice = price
	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("set_price").Inc()
	s.notifier.Publish(domain.Notification{
		Title:       "Price updated",
		Description: "Changes saved",
		Severity:    domain.SeverityNormal,
	})
	return svc, nil
}

// Delete removes the matching entry and nothing else. Unknown ids decline
// silently with ErrServiceNotFound.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.CatalogMutationsTotal.WithLabelValues("delete").Inc()
	s.notifier.Publish(domain.Notification{
		Title:       "Service removed",
		Description: "The service is no longer offered",
		Severity:    domain.SeverityNormal,
	})
	s.logger.Info().Int64("service_id", id).Msg("service deleted")
	return nil
}
