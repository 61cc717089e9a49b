package models

import "github.com/shopspring/decimal"

// ProjectionLine is one cart line joined against the catalog, with
// computed totals. For a line whose product is no longer in the catalog
// the name is the raw product id and both prices are zero.
type ProjectionLine struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// Projection is the derived, non-persisted view of a cart: lines in
// cart order plus the subtotal across them.
type Projection struct {
	Lines    []ProjectionLine `json:"lines"`
	Subtotal decimal.Decimal  `json:"subtotal"`
}

// Empty reports whether the projection has no lines at all. A cart
// holding a single zero-price line is not empty.
func (p Projection) Empty() bool {
	return len(p.Lines) == 0
}
