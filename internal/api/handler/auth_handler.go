package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/promontazh/landing-api/internal/core/domain"
	"github.com/promontazh/landing-api/internal/core/ports"
)

// AuthHandler handles admin panel access.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /v1/admin/login.
//
// @Summary      Enter the admin panel
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin password"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

// Logout handles POST /v1/admin/logout. The session named by the token is
// closed; repeating the call is harmless.
//
// @Summary      Leave the admin panel
// @Tags         auth
// @Security     BearerAuth
// @Success      204  "Session closed"
// @Failure      401  {object}  errorResponse
// @Router       /v1/admin/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sid, err := ctxSessionID(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), sid); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
