package controllers

import (
	"html/template"

	"kitis-shop/models"
)

// Server-side renditions of the storefront pages. Template escaping
// covers everything the old hand-built markup escaped by hand.

type shopPage struct {
	Products []models.Product
	Count    int
}

type cartPage struct {
	models.Projection
	Count int
}

var shopTemplate = template.Must(template.New("shop").Funcs(moneyFuncs).Parse(`<!DOCTYPE html>
<html>
<head><title>Kitis Hardware</title></head>
<body>
<nav><a href="/shop">Shop</a> <a href="/cart/page">Cart (<span id="cart-count">{{.Count}}</span>)</a></nav>
<div id="products-grid" class="grid">
{{range .Products}}
  <div class="product">
    <img src="{{.ImageURL}}" alt="{{.Name}}">
    <h4>{{.Name}}</h4>
    <p class="small muted">{{.Description}}</p>
    <div class="controls">
      <div class="price">${{money .Price}}</div>
      <div>
        <button class="btn" data-add="{{.ID}}">Add to cart</button>
      </div>
    </div>
  </div>
{{end}}
</div>
</body>
</html>
`))

var cartTemplate = template.Must(template.New("cart").Funcs(moneyFuncs).Parse(`<!DOCTYPE html>
<html>
<head><title>Your Cart</title></head>
<body>
<nav><a href="/shop">Shop</a> <span id="cart-count">{{.Count}}</span></nav>
<div id="cart-area">
{{if .Empty}}
  <p class="muted">Your cart is empty. <a href="/shop" class="link">Browse products.</a></p>
{{else}}
  <div class="cart-list">
  {{range .Lines}}
    <div class="cart-item" data-id="{{.ProductID}}">
      <img src="{{.ImageURL}}" alt="{{.Name}}" />
      <div class="cart-item-info">
        <div><strong>{{.Name}}</strong></div>
        <div class="muted small">{{.Description}}</div>
        <div class="small hint">Unit: ${{money .UnitPrice}} &bull; Line: ${{money .LineTotal}}</div>
      </div>
      <div class="cart-item-actions">
        <div class="qty-controls">
          <button class="qty-decr" title="Decrease">&minus;</button>
          <div class="qty">{{.Quantity}}</div>
          <button class="qty-incr" title="Increase">+</button>
        </div>
        <div><button class="remove">Remove</button></div>
      </div>
    </div>
  {{end}}
  </div>
  <div class="total-row">
    <div>Subtotal</div>
    <div>${{money .Subtotal}}</div>
  </div>
  <div class="small muted hint">Shipping will be arranged after you email your order.</div>
{{end}}
</div>
</body>
</html>
`))
