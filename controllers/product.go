package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"kitis-shop/cart"
	"kitis-shop/models"
)

// ProductController handles product-related requests
type ProductController struct {
	Catalog *models.Catalog
	Cart    *cart.Store
	log     *zap.Logger
}

// NewProductController creates a new ProductController
func NewProductController(catalog *models.Catalog, cartStore *cart.Store, log *zap.Logger) *ProductController {
	return &ProductController{Catalog: catalog, Cart: cartStore, log: log}
}

// GetProducts retrieves the full catalog
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pc.Catalog.Products())
}

// GetProductByID retrieves a single product
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	product, ok := pc.Catalog.FindByID(params["id"])
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// ShopPage renders the product grid as HTML
func (pc *ProductController) ShopPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := shopPage{
		Products: pc.Catalog.Products(),
		Count:    pc.Cart.Count(r.Context()),
	}
	if err := shopTemplate.Execute(w, data); err != nil {
		pc.log.Error("could not render shop page", zap.Error(err))
	}
}
