package handler

import "encoding/json"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type serviceResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Unit      string  `json:"unit"`
}

type createServiceRequest struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Unit      string  `json:"unit"`
}

// updateServiceFieldRequest edits a single attribute. value is decoded
// after field is known: a string for name/unit, a number for unit_price.
type updateServiceFieldRequest struct {
	Field string          `json:"field" validate:"required,oneof=name unit unit_price"`
	Value json.RawMessage `json:"value" validate:"required"`
}

type setPriceRequest struct {
	UnitPrice float64 `json:"unit_price" validate:"required"`
}

type quoteRequest struct {
	ServiceID int64  `json:"service_id"`
	Quantity  string `json:"quantity"`
}

type quoteResponse struct {
	ServiceID   int64   `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    float64 `json:"quantity"`
	Total       float64 `json:"total"`
}

type registerLeadRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type leadResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Date  string `json:"date"`
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type notificationResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	CreatedAt   string `json:"created_at"`
}
