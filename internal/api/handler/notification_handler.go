package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/promontazh/landing-api/internal/core/domain"
)

// NotificationFeed exposes recently published notifications.
type NotificationFeed interface {
	Recent() []domain.Notification
}

// NotificationHandler serves the admin notification feed.
type NotificationHandler struct {
	feed NotificationFeed
}

func NewNotificationHandler(feed NotificationFeed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// List handles GET /v1/admin/notifications.
//
// @Summary      List recent notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   notificationResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/admin/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	recent := h.feed.Recent()

	resp := make([]notificationResponse, 0, len(recent))
	for _, n := range recent {
		resp = append(resp, notificationResponse{
			Title:       n.Title,
			Description: n.Description,
			Severity:    string(n.Severity),
			CreatedAt:   n.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, resp)
}
