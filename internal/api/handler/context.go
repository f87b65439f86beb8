package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxSessionID extracts the session id injected by the Auth middleware.
// Presence proves the middleware ran; an empty value means the route was
// wired without it.
func ctxSessionID(c echo.Context) (string, error) {
	sid, _ := c.Get("session_id").(string)
	if sid == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return sid, nil
}
