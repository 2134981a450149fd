package domain

import (
	"github.com/shopspring/decimal"
)

// Product is a catalog entry supplied by an external source (API or file).
// Products are immutable inputs to the simulation; identity key is ID.
type Product struct {
	ID       int             `json:"id"`
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

// HasValidPrice reports whether the listed price is strictly positive.
func (p *Product) HasValidPrice() bool {
	return p.Price.IsPositive()
}

// Category holds a product category name fetched from the catalog source.
type Category struct {
	Name string `json:"name"`
}
