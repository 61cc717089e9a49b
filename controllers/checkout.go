// controllers/checkout.go
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"kitis-shop/cart"
	"kitis-shop/checkout"
	"kitis-shop/models"
	"kitis-shop/pricing"
)

// CheckoutController handles order submission
type CheckoutController struct {
	Cart      *cart.Store
	Projector *pricing.Projector
	Service   *checkout.Service
	OrderTo   string
	log       *zap.Logger
}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController(store *cart.Store, projector *pricing.Projector, service *checkout.Service, orderTo string, log *zap.Logger) *CheckoutController {
	return &CheckoutController{
		Cart:      store,
		Projector: projector,
		Service:   service,
		OrderTo:   orderTo,
		log:       log,
	}
}

// Checkout composes the order and sends it through the configured
// transport. The cart is cleared only after the transport confirms
// success; on failure the cart and the submitted billing info stay
// intact so the user can retry.
func (cc *CheckoutController) Checkout(w http.ResponseWriter, r *http.Request) {
	var billing models.BillingInfo
	if err := json.NewDecoder(r.Body).Decode(&billing); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	c := cc.Cart.Load(r.Context())
	proj, err := cc.Projector.Project(c)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	pending, err := cc.Service.Submit(r.Context(), proj, billing)
	if errors.Is(err, checkout.ErrEmptyCart) {
		http.Error(w, "Your cart is empty.", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Could not compose order", http.StatusInternalServerError)
		return
	}

	if err := pending.Wait(); err != nil {
		cc.log.Error("order send failed", zap.Error(err))
		http.Error(w, "Could not send your order. Your cart is unchanged, please try again.", http.StatusBadGateway)
		return
	}

	if err := cc.Cart.Clear(r.Context()); err != nil {
		// The order went out; a stale cart is an annoyance, not a failure.
		cc.log.Warn("could not clear cart after order", zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Order sent successfully. We will reply with payment & shipping options.",
	})
}

// MailtoLink returns a pre-addressed mailto URL carrying the composed
// order, for shops that let the visitor's own mail client do the send.
func (cc *CheckoutController) MailtoLink(w http.ResponseWriter, r *http.Request) {
	// Billing fields come from the query for a GET link.
	q := r.URL.Query()
	billing := models.BillingInfo{
		FullName: q.Get("fullName"),
		Email:    q.Get("email"),
		Address:  q.Get("address"),
		City:     q.Get("city"),
		State:    q.Get("state"),
		Zip:      q.Get("zip"),
		Country:  q.Get("country"),
		Notes:    q.Get("notes"),
	}

	c := cc.Cart.Load(r.Context())
	proj, err := cc.Projector.Project(c)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	payload, err := cc.Service.Composer.Compose(proj, billing)
	if errors.Is(err, checkout.ErrEmptyCart) {
		http.Error(w, "Your cart is empty.", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Could not compose order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"mailto": checkout.Mailto(payload, cc.OrderTo),
	})
}
