package cart

import (
	"context"
	"errors"
	"log"

	"github.com/harshh999/quarrel-store/internal/catalog"
	"github.com/harshh999/quarrel-store/internal/store"
	"golang.org/x/sync/singleflight"
)

const cartKey = "cart"

// Service routes every cart mutation through the pure reducer and mirrors
// the result to the persistence adapter (write-through). The in-memory value
// read back from the store is authoritative for the running session.
type Service struct {
	kv  store.KV
	sfg singleflight.Group // Prevents duplicate concurrent rehydrations
}

func NewService(kv store.KV) *Service {
	return &Service{kv: kv}
}

// Get returns the persisted cart, rehydrating an empty cart when nothing is
// stored or the stored value is malformed.
func (s *Service) Get(ctx context.Context) (Cart, error) {
	v, err, _ := s.sfg.Do(cartKey, func() (interface{}, error) {
		return s.load(ctx), nil
	})
	if err != nil {
		return Cart{}, err
	}
	return v.(Cart), nil
}

func (s *Service) load(ctx context.Context) Cart {
	var lines []Line
	err := store.GetJSON(ctx, s.kv, cartKey, &lines)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			// Malformed state fails closed to an empty cart.
			log.Printf("cart load error: %v", err)
		}
		return Cart{}
	}
	return Cart{Lines: lines}
}

func (s *Service) Add(ctx context.Context, product catalog.Product, size, color string, quantity int) (Cart, error) {
	next, err := Add(s.load(ctx), product, size, color, quantity)
	if err != nil {
		return Cart{}, err
	}
	return s.persist(ctx, next)
}

func (s *Service) SetQuantity(ctx context.Context, key Key, quantity int) (Cart, error) {
	next, err := SetQuantity(s.load(ctx), key, quantity)
	if err != nil {
		return Cart{}, err
	}
	return s.persist(ctx, next)
}

func (s *Service) Remove(ctx context.Context, key Key) (Cart, error) {
	next, err := Remove(s.load(ctx), key)
	if err != nil {
		return Cart{}, err
	}
	return s.persist(ctx, next)
}

func (s *Service) Clear(ctx context.Context) (Cart, error) {
	return s.persist(ctx, Clear(s.load(ctx)))
}

func (s *Service) persist(ctx context.Context, c Cart) (Cart, error) {
	lines := c.Lines
	if lines == nil {
		lines = []Line{}
	}
	if err := store.PutJSON(ctx, s.kv, cartKey, lines); err != nil {
		log.Printf("cart persist error: %v", err)
		return Cart{}, err
	}
	return c, nil
}
