package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"kitis-shop/cart"
	"kitis-shop/models"
	"kitis-shop/pricing"
)

// CartController handles cart-related requests
type CartController struct {
	Cart      *cart.Store
	Projector *pricing.Projector
	log       *zap.Logger
}

// NewCartController creates a new CartController
func NewCartController(store *cart.Store, projector *pricing.Projector, log *zap.Logger) *CartController {
	return &CartController{Cart: store, Projector: projector, log: log}
}

type cartResponse struct {
	Cart  models.Projection `json:"cart"`
	Count int               `json:"count"`
}

// respondWithCart writes the current projection and badge count.
func (cc *CartController) respondWithCart(w http.ResponseWriter, r *http.Request) {
	c := cc.Cart.Load(r.Context())
	proj, err := cc.Projector.Project(c)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cartResponse{Cart: proj, Count: c.Count()})
}

// GetCart retrieves the cart projection
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	cc.respondWithCart(w, r)
}

// AddItem adds a product to the cart
func (cc *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.ProductID == "" {
		http.Error(w, "product_id is required", http.StatusBadRequest)
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if err := cc.Cart.Add(r.Context(), input.ProductID, input.Quantity); err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}
	cc.respondWithCart(w, r)
}

// UpdateItem sets a line's quantity; zero or less removes the line
func (cc *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Quantity int `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	params := mux.Vars(r)
	if err := cc.Cart.SetQuantity(r.Context(), params["id"], input.Quantity); err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}
	cc.respondWithCart(w, r)
}

// IncrementItem raises a line's quantity by one
func (cc *CartController) IncrementItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	if err := cc.Cart.Increment(r.Context(), params["id"]); err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}
	cc.respondWithCart(w, r)
}

// DecrementItem lowers a line's quantity by one, removing it at zero
func (cc *CartController) DecrementItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	if err := cc.Cart.Decrement(r.Context(), params["id"]); err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}
	cc.respondWithCart(w, r)
}

// RemoveItem removes a product from the cart
func (cc *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	if err := cc.Cart.Remove(r.Context(), params["id"]); err != nil {
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}
	cc.respondWithCart(w, r)
}

// ClearCart empties the cart entirely
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := cc.Cart.Clear(r.Context()); err != nil {
		http.Error(w, "Error clearing cart", http.StatusInternalServerError)
		return
	}
	cc.respondWithCart(w, r)
}

// CartPage renders the cart as HTML
func (cc *CartController) CartPage(w http.ResponseWriter, r *http.Request) {
	c := cc.Cart.Load(r.Context())
	proj, err := cc.Projector.Project(c)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := cartPage{Projection: proj, Count: c.Count()}
	if err := cartTemplate.Execute(w, data); err != nil {
		cc.log.Error("could not render cart page", zap.Error(err))
	}
}
