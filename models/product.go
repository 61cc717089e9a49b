package models

import "github.com/shopspring/decimal"

// Product represents a catalog item available for purchase
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
}
