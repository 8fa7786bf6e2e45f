package order

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/harshh999/quarrel-store/internal/store"
)

const ordersKey = "orders"

// Store is the append-only order record list kept in the persistence
// adapter under the "orders" key.
type Store struct {
	kv store.KV
}

func NewStore(kv store.KV) *Store {
	return &Store{kv: kv}
}

// Append adds one order to the persisted list.
func (s *Store) Append(ctx context.Context, o Order) error {
	orders := s.loadAll(ctx)
	orders = append(orders, o)
	if err := store.PutJSON(ctx, s.kv, ordersKey, orders); err != nil {
		return fmt.Errorf("persist orders: %w", err)
	}
	return nil
}

// List returns every persisted order in placement order.
func (s *Store) List(ctx context.Context) []Order {
	return s.loadAll(ctx)
}

// ListByUser returns the given user's orders in placement order.
func (s *Store) ListByUser(ctx context.Context, userID string) []Order {
	var out []Order
	for _, o := range s.loadAll(ctx) {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) loadAll(ctx context.Context) []Order {
	var orders []Order
	err := store.GetJSON(ctx, s.kv, ordersKey, &orders)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			// Malformed history fails closed to an empty list.
			log.Printf("orders load error: %v", err)
		}
		return nil
	}
	return orders
}
