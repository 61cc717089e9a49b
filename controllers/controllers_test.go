package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kitis-shop/cart"
	"kitis-shop/checkout"
	"kitis-shop/controllers"
	"kitis-shop/models"
	"kitis-shop/pricing"
	"kitis-shop/routes"
	"kitis-shop/storage"
)

type fakeTransport struct {
	err  error
	sent int
}

func (f *fakeTransport) Send(_ context.Context, _ *models.OrderPayload) error {
	if f.err != nil {
		return f.err
	}
	f.sent++
	return nil
}

type testApp struct {
	router    *mux.Router
	cartStore *cart.Store
	transport *fakeTransport
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	logger := zap.NewNop()
	catalog := models.DefaultCatalog()
	cartStore := cart.NewStore(storage.NewMemory(), logger)
	projector := &pricing.Projector{Catalog: catalog}
	transport := &fakeTransport{}
	service := &checkout.Service{
		Composer:  &checkout.Composer{StoreName: "Kitis Hardware"},
		Transport: transport,
	}

	router := mux.NewRouter()
	routes.RegisterRoutes(router,
		controllers.NewProductController(catalog, cartStore, logger),
		controllers.NewCartController(cartStore, projector, logger),
		controllers.NewCheckoutController(cartStore, projector, service, "orders@example.com", logger),
	)
	return &testApp{router: router, cartStore: cartStore, transport: transport}
}

func (a *testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

type cartResponse struct {
	Cart  models.Projection `json:"cart"`
	Count int               `json:"count"`
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var resp cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestGetProducts(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 6)
	assert.Equal(t, "esp32-dev", products[0].ID)
}

func TestGetProductByIDNotFound(t *testing.T) {
	app := newTestApp(t)
	rec := app.do(t, http.MethodGet, "/products/discontinued-widget", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddAndReadCart(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/cart/items", `{"product_id":"esp32-dev","qty":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeCart(t, rec)
	assert.Equal(t, 2, resp.Count)

	// Adding without qty defaults to one and merges into the same line.
	rec = app.do(t, http.MethodPost, "/cart/items", `{"product_id":"esp32-dev"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeCart(t, rec)
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Cart.Lines, 1)
	assert.Equal(t, "45.00", resp.Cart.Subtotal.StringFixed(2))
}

func TestUpdateAndRemoveCartItem(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/cart/items", `{"product_id":"rpi-zero","qty":1}`)

	rec := app.do(t, http.MethodPut, "/cart/items/rpi-zero", `{"qty":4}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, decodeCart(t, rec).Count)

	rec = app.do(t, http.MethodDelete, "/cart/items/rpi-zero", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decodeCart(t, rec).Count)
}

func TestIncrementDecrementEndpoints(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/cart/items", `{"product_id":"oled-display","qty":1}`)

	rec := app.do(t, http.MethodPost, "/cart/items/oled-display/increment", "")
	assert.Equal(t, 2, decodeCart(t, rec).Count)

	app.do(t, http.MethodPost, "/cart/items/oled-display/decrement", "")
	rec = app.do(t, http.MethodPost, "/cart/items/oled-display/decrement", "")
	resp := decodeCart(t, rec)
	assert.Equal(t, 0, resp.Count)
	assert.True(t, resp.Cart.Empty())
}

func TestCheckoutWithEmptyCartIsRejected(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/checkout", `{"fullName":"Ada"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "cart is empty")
	assert.Zero(t, app.transport.sent)
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/cart/items", `{"product_id":"esp32-dev","qty":2}`)

	rec := app.do(t, http.MethodPost, "/checkout", `{"fullName":"Ada Lovelace","email":"ada@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, app.transport.sent)
	assert.Equal(t, 0, app.cartStore.Count(context.Background()))
}

func TestCheckoutTransportFailureKeepsCart(t *testing.T) {
	app := newTestApp(t)
	app.transport.err = errors.New("relay down")
	app.do(t, http.MethodPost, "/cart/items", `{"product_id":"esp32-dev","qty":2}`)

	rec := app.do(t, http.MethodPost, "/checkout", `{"fullName":"Ada Lovelace"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "try again")
	// The cart survives for the retry.
	assert.Equal(t, 2, app.cartStore.Count(context.Background()))
}

func TestMailtoLink(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/cart/items", `{"product_id":"esp32-dev","qty":1}`)

	rec := app.do(t, http.MethodGet, "/checkout/mailto?fullName=Ada&email=ada%40example.com", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp["mailto"], "mailto:orders@example.com?subject="))
}

func TestShopAndCartPagesRender(t *testing.T) {
	app := newTestApp(t)
	app.do(t, http.MethodPost, "/cart/items", `{"product_id":"oled-display","qty":1}`)

	rec := app.do(t, http.MethodGet, "/shop", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ESP32 Dev Board")
	// Names with markup-significant characters arrive escaped.
	assert.Contains(t, rec.Body.String(), "0.96&#34; OLED Display")

	rec = app.do(t, http.MethodGet, "/cart/page", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Subtotal")
	assert.Contains(t, rec.Body.String(), "$6.50")
}
