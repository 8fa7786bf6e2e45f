package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

type Category string

const (
	CategoryMen   Category = "men"
	CategoryWomen Category = "women"
)

type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Images        []string         `json:"images"`
	Description   string           `json:"description"`
	Category      Category         `json:"category"`
	Subcategory   string           `json:"subcategory"`
	Sizes         []string         `json:"sizes"`
	Colors        []string         `json:"colors"`
	InStock       bool             `json:"inStock"`
	Featured      bool             `json:"featured,omitempty"`
	NewArrival    bool             `json:"newArrival,omitempty"`
	Rating        float64          `json:"rating"`
	Reviews       int              `json:"reviews"`
}

// Catalog is the static set of purchasable products. It is loaded once at
// startup and never mutated; every accessor returns copies.
type Catalog struct {
	products []Product
}

func New(products []Product) *Catalog {
	return &Catalog{products: products}
}

// Default returns the catalog with the built-in Quarrel collection.
func Default() *Catalog {
	return New(defaultProducts())
}

func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id string) (Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

func (c *Catalog) Featured() []Product {
	var out []Product
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) NewArrivals() []Product {
	var out []Product
	for _, p := range c.products {
		if p.NewArrival {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}
