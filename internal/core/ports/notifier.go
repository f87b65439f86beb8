package ports

import "github.com/promontazh/landing-api/internal/core/domain"

// Notifier is the fire-and-forget message sink invoked after every
// state-changing action. Publish must never block the caller.
type Notifier interface {
	Publish(n domain.Notification)
}

// LeadMailer sends an alert to the site owner when a new lead arrives.
// Delivery failures are non-fatal to the registration itself.
type LeadMailer interface {
	SendLeadAlert(lead domain.Client) error
}
