package notify

import (
	"github.com/rs/zerolog"

	"github.com/promontazh/landing-api/internal/core/domain"
)

// LogSink mirrors notifications into the structured log.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Deliver(n domain.Notification) {
	evt := s.log.Info()
	if n.Severity == domain.SeverityError {
		evt = s.log.Warn()
	}
	evt.Str("title", n.Title).Str("description", n.Description).Msg("notification")
}
