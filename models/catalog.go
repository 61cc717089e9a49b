package models

import "github.com/shopspring/decimal"

// Catalog is the static, read-only set of products known to the store.
// It is defined at startup and never mutated afterwards.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// NewCatalog builds a catalog from an ordered product list. Later
// duplicates of an id are ignored; the first definition wins.
func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if _, exists := c.byID[p.ID]; exists {
			continue
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c
}

// FindByID resolves a product by id.
func (c *Catalog) FindByID(id string) (*Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.products[i], true
}

// Products returns the catalog in definition order.
func (c *Catalog) Products() []Product {
	return c.products
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultCatalog returns the Kitis Hardware product line.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Product{
		{
			ID:          "esp32-dev",
			Name:        "ESP32 Dev Board",
			Price:       price("15.00"),
			Description: "Dual-core WiFi + Bluetooth microcontroller, great for IoT.",
			ImageURL:    "https://picsum.photos/seed/esp32/400/300",
		},
		{
			ID:          "rpi-zero",
			Name:        "Raspberry Pi Zero W",
			Price:       price("18.50"),
			Description: "Tiny single-board computer for compact projects.",
			ImageURL:    "https://picsum.photos/seed/pi/400/300",
		},
		{
			ID:          "nrf24-module",
			Name:        "nRF24L01+ Module",
			Price:       price("4.25"),
			Description: "2.4GHz radio module for short-range wireless comms.",
			ImageURL:    "https://picsum.photos/seed/rf/400/300",
		},
		{
			ID:          "mcu-sensor-kit",
			Name:        "Micro Sensor Kit",
			Price:       price("9.99"),
			Description: "Assorted sensors (temp, light, motion) for prototyping.",
			ImageURL:    "https://picsum.photos/seed/sensors/400/300",
		},
		{
			ID:          "oled-display",
			Name:        "0.96\" OLED Display",
			Price:       price("6.50"),
			Description: "Compact I2C OLED for small UI projects.",
			ImageURL:    "https://picsum.photos/seed/oled/400/300",
		},
		{
			ID:          "aaa-batt-holder",
			Name:        "Battery Holder (3x AAA)",
			Price:       price("2.75"),
			Description: "Simple battery holder with on/off switch.",
			ImageURL:    "https://picsum.photos/seed/batt/400/300",
		},
	})
}
