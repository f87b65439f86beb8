package ports

import "context"

// AuthService is the admin gate: one configured credential, two states.
type AuthService interface {
	// Login verifies the password and, on success, opens a session and
	// returns a signed token. A mismatch returns ErrInvalidCredentials and
	// leaves the session state untouched.
	Login(ctx context.Context, password string) (string, error)

	// Logout closes the session unconditionally. Unknown sessions are not
	// an error.
	Logout(ctx context.Context, sessionID string) error
}
