package domain

import "time"

// Severity classifies a notification for display purposes.
type Severity string

const (
	SeverityNormal Severity = "normal"
	SeverityError  Severity = "error"
)

// Notification is a transient, fire-and-forget message emitted after a
// state-changing action. The server keeps a short feed of them for the
// admin panel.
type Notification struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	CreatedAt   time.Time `json:"created_at"`
}
