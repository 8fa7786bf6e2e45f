package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// schemaVersion is stamped on every persisted value so the layout can
// evolve without guessing what an old blob means.
const schemaVersion = 1

type envelope struct {
	Version int             `json:"v"`
	Data    json.RawMessage `json:"data"`
}

// PutJSON marshals v into a versioned envelope and writes it under key.
func PutJSON(ctx context.Context, kv KV, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	raw, err := json.Marshal(envelope{Version: schemaVersion, Data: data})
	if err != nil {
		return fmt.Errorf("marshal envelope for %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// GetJSON reads key and unmarshals its envelope payload into out. Missing
// keys return ErrKeyNotFound; malformed payloads and unknown schema versions
// are errors the caller is expected to fail closed on.
func GetJSON(ctx context.Context, kv KV, key string, out any) error {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("unmarshal envelope for %s: %w", key, err)
	}
	if env.Version != schemaVersion {
		return fmt.Errorf("unsupported schema version %d for %s", env.Version, key)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}
