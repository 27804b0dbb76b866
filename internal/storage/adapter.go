package storage

import (
	"context"
	"encoding/json"
)

// Adapter reads and writes named string snapshots in durable client-side
// key-value storage. Each store owns exactly one key; no two stores share
// one. Missing or unreadable entries are reported as absence, never as an
// error.
//
// Concurrent writers to the same key (e.g. two processes on the same state
// dir) are unreconciled last-writer-wins. There is no ordering guarantee
// between writes to different keys.
type Adapter interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SaveJSON marshals value and writes it under key.
func SaveJSON(ctx context.Context, a Adapter, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return a.Set(ctx, key, string(b))
}

// LoadJSON reads key and unmarshals into dest. It returns (false, nil) when
// the key is absent and (false, err) when the stored snapshot cannot be
// decoded; callers treat both as "no prior state" and log the latter.
func LoadJSON[T any](ctx context.Context, a Adapter, key string, dest *T) (bool, error) {
	raw, ok := a.Get(ctx, key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}
