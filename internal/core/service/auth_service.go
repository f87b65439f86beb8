package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/promontazh/landing-api/internal/api/metrics"
	"github.com/promontazh/landing-api/internal/core/domain"
	"github.com/promontazh/landing-api/internal/core/ports"
)

// AuthService implements the admin gate. There is a single configured
// credential; it is bcrypt-hashed at startup so the plaintext never lives
// beyond construction. Successful logins open a server-side session and
// hand out an HS256 token carrying the session id.
type AuthService struct {
	passwordHash []byte
	jwtSecret    string
	sessions     ports.SessionStore
	tokenTTL     time.Duration
	notifier     ports.Notifier
	logger       zerolog.Logger
}

func NewAuthService(adminPassword, jwtSecret string, sessions ports.SessionStore, tokenTTL time.Duration, notifier ports.Notifier, logger zerolog.Logger) (*AuthService, error) {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AuthService{
		passwordHash: hash,
		jwtSecret:    jwtSecret,
		sessions:     sessions,
		tokenTTL:     tokenTTL,
		notifier:     notifier,
		logger:       logger,
	}, nil
}

// Login verifies the password. A mismatch is the only action in the system
// that emits a failure notification.
func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	if password == "" || bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		metrics.AdminLoginsTotal.WithLabelValues("failure").Inc()
		s.notifier.Publish(domain.Notification{
			Title:       "Login failed",
			Description: "Wrong password",
			Severity:    domain.SeverityError,
		})
		s.logger.Warn().Msg("admin login rejected")
		return "", domain.ErrInvalidCredentials
	}

	sid := newSessionID()
	if err := s.sessions.Save(ctx, sid, s.tokenTTL); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	token, err := s.generateToken(sid)
	if err != nil {
		// Roll the orphaned session back so it cannot linger.
		_ = s.sessions.Delete(ctx, sid)
		return "", fmt.Errorf("sign token: %w", err)
	}

	metrics.AdminLoginsTotal.WithLabelValues("success").Inc()
	s.notifier.Publish(domain.Notification{
		Title:       "Signed in",
		Description: "Welcome to the admin panel",
		Severity:    domain.SeverityNormal,
	})
	s.logger.Info().Str("session_id", sid).Msg("admin logged in")
	return token, nil
}

// Logout drops the session unconditionally and immediately. A session that
// is already gone is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.logger.Info().Str("session_id", sessionID).Msg("admin logged out")
	return nil
}

func (s *AuthService) generateToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sid":  sessionID,
		"role": domain.RoleAdmin,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newSessionID returns a random 128-bit hex session id.
func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// fallback: derive from the clock
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
