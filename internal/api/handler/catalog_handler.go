package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/promontazh/landing-api/internal/core/domain"
	"github.com/promontazh/landing-api/internal/core/ports"
)

// CatalogHandler handles HTTP requests for the service catalog.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// List handles GET /v1/services.
//
// @Summary      List the service catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   serviceResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	services, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]serviceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, toServiceResponse(&s))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /v1/admin/services. A submission with an empty name
// or unit, or a non-positive price, is declined without an error body.
//
// @Summary      Add a service to the catalog
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createServiceRequest  true  "New service"
// @Success      201   {object}  serviceResponse
// @Success      204   "Declined: incomplete submission"
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/admin/services [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	svc, err := h.service.Add(c.Request().Context(), ports.AddServiceInput{
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Unit:      req.Unit,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			return c.NoContent(http.StatusNoContent)
		}
		return err
	}

	return c.JSON(http.StatusCreated, toServiceResponse(svc))
}

// UpdateField handles PATCH /v1/admin/services/:id.
//
// @Summary      Edit one attribute of a service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                        true  "Service id"
// @Param        body  body      updateServiceFieldRequest  true  "Field edit"
// @Success      200   {object}  serviceResponse
// @Success      204   "Declined: unknown service"
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/services/{id} [patch]
func (h *CatalogHandler) UpdateField(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req updateServiceFieldRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	field := domain.ServiceField(req.Field)
	value, err := decodeFieldValue(field, req.Value)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	svc, err := h.service.UpdateField(c.Request().Context(), id, field, value)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			return c.NoContent(http.StatusNoContent)
		}
		return err
	}

	return c.JSON(http.StatusOK, toServiceResponse(svc))
}

// SetPrice handles PUT /v1/admin/services/:id/price.
//
// @Summary      Update a service price
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Service id"
// @Param        body  body      setPriceRequest  true  "New unit price"
// @Success      200   {object}  serviceResponse
// @Success      204   "Declined: unknown service"
// @Failure      401   {object}  errorResponse
// @Router       /v1/admin/services/{id}/price [put]
func (h *CatalogHandler) SetPrice(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req setPriceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	svc, err := h.service.SetPrice(c.Request().Context(), id, req.UnitPrice)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			return c.NoContent(http.StatusNoContent)
		}
		return err
	}

	return c.JSON(http.StatusOK, toServiceResponse(svc))
}

// Delete handles DELETE /v1/admin/services/:id. Removing an unknown
// service is indistinguishable from removing an existing one.
//
// @Summary      Remove a service from the catalog
// @Tags         catalog
// @Security     BearerAuth
// @Param        id  path  int  true  "Service id"
// @Success      204  "Removed (or nothing to remove)"
// @Failure      401  {object}  errorResponse
// @Router       /v1/admin/services/{id} [delete]
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			return c.NoContent(http.StatusNoContent)
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid service id")
	}
	return id, nil
}

// decodeFieldValue resolves the loosely-typed edit value against the target
// field: unit_price takes a number, name and unit take strings.
func decodeFieldValue(field domain.ServiceField, raw json.RawMessage) (any, error) {
	if field == domain.FieldUnitPrice {
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, errors.New("unit_price must be a number")
		}
		return f, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errors.New(string(field) + " must be a string")
	}
	return s, nil
}

func toServiceResponse(s *domain.Service) serviceResponse {
	return serviceResponse{
		ID:        s.ID,
		Name:      s.Name,
		UnitPrice: s.UnitPrice,
		Unit:      s.Unit,
	}
}
