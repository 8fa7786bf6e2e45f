package session

import (
	"context"
	"testing"

	"github.com/harshh999/quarrel-store/internal/auth"
	"github.com/harshh999/quarrel-store/internal/cart"
	"github.com/harshh999/quarrel-store/internal/catalog"
	"github.com/harshh999/quarrel-store/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestore_RehydratesUserAndCart(t *testing.T) {
	kv := store.NewMemoryStore()
	ctx := context.Background()

	// A previous session registers and fills a cart.
	previousAuth := auth.NewService(kv)
	previousCart := cart.NewService(kv)
	registered, err := previousAuth.Register(ctx, "jane@example.com", "pw", "Jane", "Doe")
	require.NoError(t, err)
	product, err := catalog.Default().Get("1")
	require.NoError(t, err)
	_, err = previousCart.Add(ctx, product, "M", "Black", 2)
	require.NoError(t, err)

	// A new session over the same adapter sees both.
	sess := New(auth.NewService(kv), cart.NewService(kv))
	sess.Restore(ctx)

	user := sess.CurrentUser(ctx)
	require.NotNil(t, user)
	assert.Equal(t, registered.ID, user.ID)

	c, err := sess.Cart(ctx)
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestRestore_EmptyAdapterDefaults(t *testing.T) {
	kv := store.NewMemoryStore()
	sess := New(auth.NewService(kv), cart.NewService(kv))
	ctx := context.Background()

	sess.Restore(ctx)

	assert.Nil(t, sess.CurrentUser(ctx))
	c, err := sess.Cart(ctx)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestRestore_MalformedStateFailsClosed(t *testing.T) {
	kv := store.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "user", []byte("{broken")))
	require.NoError(t, kv.Set(ctx, "cart", []byte("{broken")))

	sess := New(auth.NewService(kv), cart.NewService(kv))
	sess.Restore(ctx)

	assert.Nil(t, sess.CurrentUser(ctx))
	c, err := sess.Cart(ctx)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}
