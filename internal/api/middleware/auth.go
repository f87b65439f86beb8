package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/promontazh/landing-api/internal/core/ports"
)

// Auth validates the JWT, confirms the session it names is still open, and
// injects the claims into context. A token that outlived its session (the
// admin logged out, or the TTL passed) is rejected even when the signature
// still verifies.
func Auth(jwtSecret string, sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sid, _ := claims["sid"].(string)
			if sid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing session identity")
			}
			live, err := sessions.Exists(c.Request().Context(), sid)
			if err != nil {
				return err
			}
			if !live {
				return echo.NewHTTPError(http.StatusUnauthorized, "session closed")
			}

			c.Set("role", claims["role"])
			c.Set("session_id", sid)

			return next(c)
		}
	}
}
