package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kitis-shop/models"
	"kitis-shop/pricing"
)

func TestProjectComputesLineAndSubtotal(t *testing.T) {
	p := &pricing.Projector{Catalog: models.DefaultCatalog()}

	proj, err := p.Project(models.Cart{{ProductID: "esp32-dev", Quantity: 3}})
	require.NoError(t, err)

	require.Len(t, proj.Lines, 1)
	assert.Equal(t, "ESP32 Dev Board", proj.Lines[0].Name)
	assert.Equal(t, "15.00", proj.Lines[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "45.00", proj.Lines[0].LineTotal.StringFixed(2))
	assert.Equal(t, "45.00", proj.Subtotal.StringFixed(2))
}

func TestProjectSumsAcrossLines(t *testing.T) {
	p := &pricing.Projector{Catalog: models.DefaultCatalog()}

	proj, err := p.Project(models.Cart{
		{ProductID: "esp32-dev", Quantity: 1},    // 15.00
		{ProductID: "rpi-zero", Quantity: 2},     // 37.00
		{ProductID: "nrf24-module", Quantity: 4}, // 17.00
	})
	require.NoError(t, err)
	assert.Equal(t, "69.00", proj.Subtotal.StringFixed(2))
}

func TestEmptyCartYieldsEmptyProjection(t *testing.T) {
	p := &pricing.Projector{Catalog: models.DefaultCatalog()}

	proj, err := p.Project(models.Cart{})
	require.NoError(t, err)
	assert.True(t, proj.Empty())
	assert.Len(t, proj.Lines, 0)
	assert.Equal(t, "0.00", proj.Subtotal.StringFixed(2))
}

func TestDanglingReferenceBecomesZeroPricePlaceholder(t *testing.T) {
	p := &pricing.Projector{Catalog: models.DefaultCatalog()}

	proj, err := p.Project(models.Cart{
		{ProductID: "discontinued-widget", Quantity: 2},
		{ProductID: "esp32-dev", Quantity: 1},
	})
	require.NoError(t, err)

	require.Len(t, proj.Lines, 2)
	ghost := proj.Lines[0]
	assert.Equal(t, "discontinued-widget", ghost.Name)
	assert.Equal(t, "0.00", ghost.UnitPrice.StringFixed(2))
	assert.Equal(t, "0.00", ghost.LineTotal.StringFixed(2))
	assert.Equal(t, 2, ghost.Quantity)

	// The ghost line does not perturb the subtotal.
	assert.Equal(t, "15.00", proj.Subtotal.StringFixed(2))
	assert.False(t, proj.Empty())
}

func TestStrictModeRejectsDanglingReference(t *testing.T) {
	p := &pricing.Projector{Catalog: models.DefaultCatalog(), Strict: true}

	_, err := p.Project(models.Cart{{ProductID: "discontinued-widget", Quantity: 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, pricing.ErrUnknownProduct)
	assert.Contains(t, err.Error(), "discontinued-widget")
}
