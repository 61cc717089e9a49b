package models

import "github.com/shopspring/decimal"

// BillingInfo is the user-supplied billing and shipping block for one
// checkout attempt. Fields are carried verbatim into the order payload;
// validation, if any, is the caller's concern. Never persisted.
type BillingInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
	Notes    string `json:"notes"`
}

// OrderItem is one itemized line of a composed order.
type OrderItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderPayload is the ephemeral representation of a checkout attempt,
// built fresh per attempt and handed to a transport. Never stored.
type OrderPayload struct {
	Reference string          `json:"reference"`
	Subject   string          `json:"subject"`
	Body      string          `json:"body"`
	Items     []OrderItem     `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Billing   BillingInfo     `json:"billing"`
}
