package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"kitis-shop/models"
)

// ErrUnknownProduct is returned in strict mode when a cart line refers
// to a product the catalog no longer knows.
var ErrUnknownProduct = errors.New("pricing: unknown product in cart")

// Projector joins carts against a catalog to produce display totals.
//
// By default a line whose product has left the catalog is kept and
// priced at zero, with the raw id standing in for the name — stale
// carts render, they do not crash. With Strict set such a line is an
// error instead.
type Projector struct {
	Catalog *models.Catalog
	Strict  bool
}

// Project computes per-line and aggregate totals for the cart. An empty
// cart yields a projection with no lines and a zero subtotal.
func (p *Projector) Project(c models.Cart) (models.Projection, error) {
	proj := models.Projection{
		Lines:    make([]models.ProjectionLine, 0, len(c)),
		Subtotal: decimal.Zero,
	}
	for _, line := range c {
		pl := models.ProjectionLine{
			ProductID: line.ProductID,
			Name:      line.ProductID,
			UnitPrice: decimal.Zero,
			Quantity:  line.Quantity,
		}
		if product, ok := p.Catalog.FindByID(line.ProductID); ok {
			pl.Name = product.Name
			pl.Description = product.Description
			pl.ImageURL = product.ImageURL
			pl.UnitPrice = product.Price
		} else if p.Strict {
			return models.Projection{}, fmt.Errorf("%w: %s", ErrUnknownProduct, line.ProductID)
		}
		pl.LineTotal = pl.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		proj.Subtotal = proj.Subtotal.Add(pl.LineTotal)
		proj.Lines = append(proj.Lines, pl)
	}
	return proj, nil
}
