// Package notify delivers transient user-facing notifications. Publishing
// never blocks request handling; delivery runs on a background worker that
// fans each notification out to the registered sinks.
package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/promontazh/landing-api/internal/api/metrics"
	"github.com/promontazh/landing-api/internal/core/domain"
)

const channelBuffer = 64

// Sink receives every published notification.
type Sink interface {
	Deliver(n domain.Notification)
}

type Hub struct {
	ch    chan domain.Notification
	sinks []Sink
	log   zerolog.Logger
}

func NewHub(log zerolog.Logger, sinks ...Sink) *Hub {
	return &Hub{
		ch:    make(chan domain.Notification, channelBuffer),
		sinks: sinks,
		log:   log,
	}
}

// Start launches the delivery worker. The worker stops when ctx is cancelled.
func (h *Hub) Start(ctx context.Context) {
	go h.run(ctx)
}

// Publish hands the notification to the worker. When the buffer is full the
// notification is dropped rather than stalling the caller.
func (h *Hub) Publish(n domain.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	select {
	case h.ch <- n:
	default:
		metrics.NotificationsDroppedTotal.Inc()
		h.log.Warn().Str("title", n.Title).Msg("notification dropped, buffer full")
	}
}

func (h *Hub) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-h.ch:
			if !ok {
				return
			}
			for _, s := range h.sinks {
				s.Deliver(n)
			}
			metrics.NotificationsPublishedTotal.WithLabelValues(string(n.Severity)).Inc()
		}
	}
}
