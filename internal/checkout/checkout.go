package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/harshh999/quarrel-store/internal/cart"
	"github.com/harshh999/quarrel-store/internal/order"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart   = errors.New("cart is empty, nothing to checkout")
	ErrNotLoggedIn = errors.New("no user logged in")
)

// taxRate is fixed at 8%, not configurable.
var taxRate = decimal.RequireFromString("0.08")

// DefaultProcessingDelay mirrors the simulated payment delay of the
// original storefront.
const DefaultProcessingDelay = 2 * time.Second

// Totals carries the exact decimal amounts for one checkout. Round to two
// places only at presentation time.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals prices a cart: subtotal is the sum of line prices, tax is
// 8% of the subtotal, total adds the shipping cost.
func ComputeTotals(c cart.Cart, method ShippingMethod) Totals {
	subtotal := c.Subtotal()
	tax := subtotal.Mul(taxRate)
	return Totals{
		Subtotal: subtotal,
		Shipping: method.Cost(),
		Tax:      tax,
		Total:    subtotal.Add(method.Cost()).Add(tax),
	}
}

// Archive is the optional durable order sink written through after the
// adapter append.
type Archive interface {
	SaveOrder(ctx context.Context, o order.Order) error
}

// Service orchestrates order placement: totals, the simulated processing
// delay, the order snapshot, persistence, and the cart reset.
type Service struct {
	orders  *order.Store
	cart    *cart.Service
	archive Archive // nil when no archive is configured
	delay   time.Duration
}

func NewService(orders *order.Store, cartSvc *cart.Service, archive Archive, delay time.Duration) *Service {
	return &Service{
		orders:  orders,
		cart:    cartSvc,
		archive: archive,
		delay:   delay,
	}
}

// PlaceOrder simulates payment processing for the given cart and writes the
// resulting order record. The delay honors ctx: cancellation abandons the
// placement without writing anything. On success the cart is cleared
// through the write-through cart service.
func (s *Service) PlaceOrder(ctx context.Context, userID string, c cart.Cart, address order.Address, method ShippingMethod) (*order.Order, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	totals := ComputeTotals(c, method)

	// Simulated payment processing, cancellable.
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	o := order.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Items:           order.Snapshot(c.Lines),
		Total:           totals.Total,
		Status:          order.StatusProcessing,
		CreatedAt:       time.Now().UTC(),
		ShippingAddress: address,
	}

	if err := s.orders.Append(ctx, o); err != nil {
		return nil, fmt.Errorf("record order: %w", err)
	}

	if s.archive != nil {
		// Best effort: the adapter copy is the session's system of record.
		if err := s.archive.SaveOrder(ctx, o); err != nil {
			log.Printf("order archive error: %v", err)
		}
	}

	if _, err := s.cart.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear cart after checkout: %w", err)
	}

	return &o, nil
}
