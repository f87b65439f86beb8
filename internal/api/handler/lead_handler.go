package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/promontazh/landing-api/internal/core/domain"
	"github.com/promontazh/landing-api/internal/core/ports"
)

// LeadHandler handles HTTP requests for installation requests.
type LeadHandler struct {
	service ports.LeadService
}

func NewLeadHandler(service ports.LeadService) *LeadHandler {
	return &LeadHandler{service: service}
}

// Register handles POST /v1/leads. A submission with any empty field is
// declined without an error body.
//
// @Summary      Submit an installation request
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      registerLeadRequest  true  "Contact details"
// @Success      201   {object}  leadResponse
// @Success      204   "Declined: incomplete submission"
// @Failure      400   {object}  errorResponse
// @Router       /v1/leads [post]
func (h *LeadHandler) Register(c echo.Context) error {
	var req registerLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	lead, err := h.service.Register(c.Request().Context(), ports.RegisterLeadInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			return c.NoContent(http.StatusNoContent)
		}
		return err
	}

	return c.JSON(http.StatusCreated, toLeadResponse(lead))
}

// List handles GET /v1/admin/leads.
//
// @Summary      List submitted installation requests
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   leadResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/admin/leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	leads, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]leadResponse, 0, len(leads))
	for _, l := range leads {
		resp = append(resp, toLeadResponse(&l))
	}
	return c.JSON(http.StatusOK, resp)
}

func toLeadResponse(l *domain.Client) leadResponse {
	return leadResponse{
		ID:    l.ID,
		Name:  l.Name,
		Email: l.Email,
		Phone: l.Phone,
		Date:  l.Date,
	}
}
