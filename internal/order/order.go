package order

import (
	"time"

	"github.com/harshh999/quarrel-store/internal/cart"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
)

func (s Status) String() string {
	return string(s)
}

type Address struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// Order is created once at checkout completion and never mutated. Items is
// a deep copy of the cart lines at placement time; later cart mutations
// must not alter it. No component advances Status after creation.
type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []cart.Line     `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Status          Status          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	ShippingAddress Address         `json:"shippingAddress"`
}

// Snapshot deep-copies cart lines so the order is immune to later cart
// changes.
func Snapshot(lines []cart.Line) []cart.Line {
	out := make([]cart.Line, len(lines))
	copy(out, lines)
	return out
}
