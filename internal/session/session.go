package session

import (
	"context"
	"log"

	"github.com/harshh999/quarrel-store/internal/auth"
	"github.com/harshh999/quarrel-store/internal/cart"
)

// Session is the explicit owner of per-session state: the active user and
// the cart. All cart mutation goes through the cart service's reducer; the
// session never mutates state in place.
type Session struct {
	auth *auth.Service
	cart *cart.Service
}

func New(authSvc *auth.Service, cartSvc *cart.Service) *Session {
	return &Session{auth: authSvc, cart: cartSvc}
}

// Restore rehydrates the session from the persistence adapter with
// best-effort defaults: nil user, empty cart. It never fails; malformed
// state is logged and dropped.
func (s *Session) Restore(ctx context.Context) {
	if user := s.auth.Current(ctx); user != nil {
		log.Printf("restored session for %s", user.Email)
	}
	c, err := s.cart.Get(ctx)
	if err != nil {
		log.Printf("cart restore error: %v", err)
		return
	}
	if !c.IsEmpty() {
		log.Printf("restored cart with %d lines", len(c.Lines))
	}
}

// CurrentUser returns the active user, or nil when nobody is logged in.
func (s *Session) CurrentUser(ctx context.Context) *auth.User {
	return s.auth.Current(ctx)
}

// Cart returns the current cart value.
func (s *Session) Cart(ctx context.Context) (cart.Cart, error) {
	return s.cart.Get(ctx)
}
