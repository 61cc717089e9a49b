// routes/routes.go
package routes

import (
	"kitis-shop/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, productController *controllers.ProductController, cartController *controllers.CartController, checkoutController *controllers.CheckoutController) {
	// Product routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")
	router.HandleFunc("/shop", productController.ShopPage).Methods("GET")

	// Cart routes
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	router.HandleFunc("/cart/page", cartController.CartPage).Methods("GET")
	router.HandleFunc("/cart/items", cartController.AddItem).Methods("POST")
	router.HandleFunc("/cart/items/{id}", cartController.UpdateItem).Methods("PUT")
	router.HandleFunc("/cart/items/{id}", cartController.RemoveItem).Methods("DELETE")
	router.HandleFunc("/cart/items/{id}/increment", cartController.IncrementItem).Methods("POST")
	router.HandleFunc("/cart/items/{id}/decrement", cartController.DecrementItem).Methods("POST")

	// Checkout routes
	router.HandleFunc("/checkout", checkoutController.Checkout).Methods("POST")
	router.HandleFunc("/checkout/mailto", checkoutController.MailtoLink).Methods("GET")
}
