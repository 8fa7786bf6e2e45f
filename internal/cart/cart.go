package cart

import (
	"errors"

	"github.com/harshh999/quarrel-store/internal/catalog"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrLineNotFound    = errors.New("line not found in cart")
	ErrInvalidVariant  = errors.New("size or color not offered for product")
	ErrOutOfStock      = errors.New("product is out of stock")
)

// Key uniquely identifies at most one cart line at any time. Two lines with
// the same key never coexist; operations address lines by key, never by
// position.
type Key struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type Line struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Quantity    int             `json:"quantity"`
}

func (l Line) Key() Key {
	return Key{ProductID: l.ProductID, Size: l.Size, Color: l.Color}
}

// Cart is an ordered sequence of lines, insertion order preserved. A merge
// keeps the merged line at its original position.
type Cart struct {
	Lines []Line
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Subtotal is the exact decimal sum of unit price times quantity across all
// lines.
func (c Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.Lines {
		sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum
}

func (c Cart) clone() Cart {
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}

func (c Cart) indexOf(key Key) int {
	for i, l := range c.Lines {
		if l.Key() == key {
			return i
		}
	}
	return -1
}

// Add returns a new cart with quantity units of (product, size, color). An
// existing line with the same key has its quantity incremented in place;
// otherwise a new line is appended. Quantity must be >= 1.
func Add(c Cart, product catalog.Product, size, color string, quantity int) (Cart, error) {
	if quantity <= 0 {
		return Cart{}, ErrInvalidQuantity
	}
	if !product.InStock {
		return Cart{}, ErrOutOfStock
	}
	if !contains(product.Sizes, size) || !contains(product.Colors, color) {
		return Cart{}, ErrInvalidVariant
	}

	next := c.clone()
	key := Key{ProductID: product.ID, Size: size, Color: color}
	if i := next.indexOf(key); i >= 0 {
		next.Lines[i].Quantity += quantity
		return next, nil
	}

	next.Lines = append(next.Lines, Line{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Size:        size,
		Color:       color,
		Quantity:    quantity,
	})
	return next, nil
}

// SetQuantity returns a new cart with the keyed line's quantity replaced.
// A quantity of zero removes the line entirely; negative quantities are
// rejected.
func SetQuantity(c Cart, key Key, quantity int) (Cart, error) {
	if quantity < 0 {
		return Cart{}, ErrInvalidQuantity
	}

	i := c.indexOf(key)
	if i < 0 {
		return Cart{}, ErrLineNotFound
	}

	if quantity == 0 {
		return Remove(c, key)
	}

	next := c.clone()
	next.Lines[i].Quantity = quantity
	return next, nil
}

// Remove returns a new cart without the keyed line.
func Remove(c Cart, key Key) (Cart, error) {
	i := c.indexOf(key)
	if i < 0 {
		return Cart{}, ErrLineNotFound
	}

	next := Cart{Lines: make([]Line, 0, len(c.Lines)-1)}
	next.Lines = append(next.Lines, c.Lines[:i]...)
	next.Lines = append(next.Lines, c.Lines[i+1:]...)
	return next, nil
}

// Clear returns an empty cart, unconditionally.
func Clear(Cart) Cart {
	return Cart{}
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
