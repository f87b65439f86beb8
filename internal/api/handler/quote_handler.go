package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/promontazh/landing-api/internal/core/domain"
	"github.com/promontazh/landing-api/internal/core/ports"
)

// QuoteHandler handles HTTP requests for the price calculator.
type QuoteHandler struct {
	service ports.QuoteService
}

func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// Calculate handles POST /v1/quotes. An empty or unparseable quantity, or
// an unknown service, is declined without an error body: the calculator
// simply shows nothing.
//
// @Summary      Calculate a price estimate
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      quoteRequest  true  "Service and quantity"
// @Success      200   {object}  quoteResponse
// @Success      204   "Declined: invalid quantity or unknown service"
// @Failure      400   {object}  errorResponse
// @Router       /v1/quotes [post]
func (h *QuoteHandler) Calculate(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	result, err := h.service.Calculate(c.Request().Context(), ports.QuoteInput{
		ServiceID: req.ServiceID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuantity) || errors.Is(err, domain.ErrServiceNotFound) {
			return c.NoContent(http.StatusNoContent)
		}
		return err
	}

	return c.JSON(http.StatusOK, quoteResponse{
		ServiceID:   result.ServiceID,
		ServiceName: result.ServiceName,
		Unit:        result.Unit,
		UnitPrice:   result.UnitPrice,
		Quantity:    result.Quantity,
		Total:       result.Total,
	})
}
