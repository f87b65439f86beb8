package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/promontazh/landing-api/internal/core/domain"
	"github.com/promontazh/landing-api/internal/core/ports"
)

type stubQuoteService struct {
	calculateFn func(ctx context.Context, input ports.QuoteInput) (*ports.QuoteResult, error)
}

func (s *stubQuoteService) Calculate(ctx context.Context, input ports.QuoteInput) (*ports.QuoteResult, error) {
	return s.calculateFn(ctx, input)
}

func TestQuoteHandler_Calculate_Success(t *testing.T) {
	stub := &stubQuoteService{
		calculateFn: func(ctx context.Context, input ports.QuoteInput) (*ports.QuoteResult, error) {
			if input.ServiceID != 1 || input.Quantity != "3" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.QuoteResult{
				ServiceID:   1,
				ServiceName: "Air conditioner installation",
				Unit:        "pc",
				UnitPrice:   8500,
				Quantity:    3,
				Total:       25500,
			}, nil
		},
	}
	h := NewQuoteHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/v1/quotes", `{"service_id":1,"quantity":"3"}`)
	if err := h.Calculate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total"] != float64(25500) {
		t.Fatalf("expected total 25500, got %v", resp["total"])
	}
}

// A garbage quantity produces no estimate and no error body.
func TestQuoteHandler_Calculate_InvalidQuantity(t *testing.T) {
	stub := &stubQuoteService{
		calculateFn: func(ctx context.Context, input ports.QuoteInput) (*ports.QuoteResult, error) {
			return nil, domain.ErrInvalidQuantity
		},
	}
	h := NewQuoteHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/v1/quotes", `{"service_id":1,"quantity":"abc"}`)
	if err := h.Calculate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("decline must have no body, got %q", rec.Body.String())
	}
}

func TestQuoteHandler_Calculate_UnknownService(t *testing.T) {
	stub := &stubQuoteService{
		calculateFn: func(ctx context.Context, input ports.QuoteInput) (*ports.QuoteResult, error) {
			return nil, domain.ErrServiceNotFound
		},
	}
	h := NewQuoteHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/v1/quotes", `{"service_id":99,"quantity":"1"}`)
	if err := h.Calculate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestQuoteHandler_Calculate_InvalidPayload(t *testing.T) {
	stub := &stubQuoteService{
		calculateFn: func(ctx context.Context, input ports.QuoteInput) (*ports.QuoteResult, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	h := NewQuoteHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/v1/quotes", "not-json")
	_ = h.Calculate(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
