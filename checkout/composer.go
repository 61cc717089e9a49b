package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"kitis-shop/models"
)

// ErrEmptyCart is returned when an order is composed from a projection
// with no lines. Checkout must not proceed silently on an empty cart.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// Composer turns a cart projection plus billing info into an order
// payload. It never touches the cart store; clearing after a successful
// send is the caller's explicit step.
type Composer struct {
	StoreName string
}

// Compose builds the payload for one checkout attempt. Billing fields
// are carried verbatim; no validation happens here.
func (c *Composer) Compose(proj models.Projection, billing models.BillingInfo) (*models.OrderPayload, error) {
	if proj.Empty() {
		return nil, ErrEmptyCart
	}

	storeName := c.StoreName
	if storeName == "" {
		storeName = "Kitis Hardware"
	}

	items := make([]models.OrderItem, 0, len(proj.Lines))
	lines := []string{
		"Order from " + storeName,
		"---",
		"Items:",
	}
	for _, pl := range proj.Lines {
		items = append(items, models.OrderItem{
			Name:      pl.Name,
			Quantity:  pl.Quantity,
			LineTotal: pl.LineTotal,
		})
		lines = append(lines, fmt.Sprintf("- %s (x%d) — $%s", pl.Name, pl.Quantity, pl.LineTotal.StringFixed(2)))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("Subtotal: $%s", proj.Subtotal.StringFixed(2)),
		"",
		"Billing / Shipping info:",
		"Name: "+billing.FullName,
		"Email: "+billing.Email,
		"Address: "+billing.Address,
		"City: "+billing.City,
		"State/Region: "+billing.State,
		"ZIP: "+billing.Zip,
		"Country: "+billing.Country,
	)
	if billing.Notes != "" {
		lines = append(lines, "", "Notes:", billing.Notes)
	}
	lines = append(lines, "", "Please reply with payment & shipping options. Thanks!")

	customer := billing.FullName
	if customer == "" {
		customer = "Customer"
	}

	return &models.OrderPayload{
		Reference: uuid.NewString(),
		Subject:   "Order from " + customer,
		Body:      strings.Join(lines, "\n"),
		Items:     items,
		Subtotal:  proj.Subtotal,
		Billing:   billing,
	}, nil
}
