package domain

import "errors"

// ServiceField identifies a single editable attribute of a catalog entry.
type ServiceField string

const (
	FieldName      ServiceField = "name"
	FieldUnitPrice ServiceField = "unit_price"
	FieldUnit      ServiceField = "unit"
)

var ErrServiceNotFound = errors.New("service not found")
var ErrMissingFields = errors.New("missing required fields")
var ErrUnknownField = errors.New("unknown service field")
var ErrInvalidQuantity = errors.New("invalid quantity")

// Valid reports whether f names an editable service attribute.
func (f ServiceField) Valid() bool {
	switch f {
	case FieldName, FieldUnitPrice, FieldUnit:
		return true
	}
	return false
}

// Service is a catalog entry: an installation job priced per unit of measure.
type Service struct {
	ID        int64   `json:"id" bson:"_id"`
	Name      string  `json:"name" bson:"name"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price"`
	Unit      string  `json:"unit" bson:"unit"`
}

// DefaultCatalog returns the seed list the catalog starts from when no
// override is configured. IDs are fixed so links and quotes stay stable
// across restarts of a fresh deployment.
func DefaultCatalog() []Service {
	return []Service{
		{ID: 1, Name: "Air conditioner installation", UnitPrice: 8500, Unit: "pc"},
		{ID: 2, Name: "Ventilation ductwork", UnitPrice: 12000, Unit: "m"},
		{ID: 3, Name: "Electrical wiring", UnitPrice: 1500, Unit: "point"},
		{ID: 4, Name: "Cable routing", UnitPrice: 350, Unit: "m"},
	}
}
