package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	kv := NewMemoryStore()
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, PutJSON(ctx, kv, "k", payload{Name: "cart", Count: 3}))

	var out payload
	require.NoError(t, GetJSON(ctx, kv, "k", &out))
	assert.Equal(t, payload{Name: "cart", Count: 3}, out)
}

func TestCodec_WritesVersionedEnvelope(t *testing.T) {
	kv := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, PutJSON(ctx, kv, "k", []int{1, 2}))

	raw, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1,"data":[1,2]}`, string(raw))
}

func TestCodec_MissingKey(t *testing.T) {
	var out int
	err := GetJSON(context.Background(), NewMemoryStore(), "absent", &out)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestCodec_MalformedEnvelope(t *testing.T) {
	kv := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "k", []byte("{broken")))

	var out int
	assert.Error(t, GetJSON(ctx, kv, "k", &out))
}

func TestCodec_UnknownSchemaVersion(t *testing.T) {
	kv := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "k", []byte(`{"v":99,"data":1}`)))

	var out int
	err := GetJSON(ctx, kv, "k", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema version")
}
