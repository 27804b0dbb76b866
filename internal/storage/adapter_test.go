package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileAdapterRoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter, err := NewFileAdapter(t.TempDir())
	require.NoError(t, err)

	_, ok := adapter.Get(ctx, "cart")
	assert.False(t, ok)

	require.NoError(t, adapter.Set(ctx, "cart", `[{"product_id":"p1"}]`))
	v, ok := adapter.Get(ctx, "cart")
	require.True(t, ok)
	assert.Equal(t, `[{"product_id":"p1"}]`, v)

	require.NoError(t, adapter.Delete(ctx, "cart"))
	_, ok = adapter.Get(ctx, "cart")
	assert.False(t, ok)

	// deleting a missing key is not an error
	require.NoError(t, adapter.Delete(ctx, "cart"))
}

func TestMemoryAdapterRoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()

	require.NoError(t, adapter.Set(ctx, "language", `"ar"`))
	v, ok := adapter.Get(ctx, "language")
	require.True(t, ok)
	assert.Equal(t, `"ar"`, v)

	require.NoError(t, adapter.Delete(ctx, "language"))
	_, ok = adapter.Get(ctx, "language")
	assert.False(t, ok)
}

func TestLoadJSONAbsentKey(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()

	var dest []string
	found, err := LoadJSON(ctx, adapter, "nothing", &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLoadJSONMalformedSnapshot(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()
	require.NoError(t, adapter.Set(ctx, "cart", "{broken"))

	var dest []string
	found, err := LoadJSON(ctx, adapter, "cart", &dest)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestSaveJSONThenLoadJSON(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()

	type snap struct {
		Code string `json:"code"`
	}
	require.NoError(t, SaveJSON(ctx, adapter, "currency", snap{Code: "JPY"}))

	var dest snap
	found, err := LoadJSON(ctx, adapter, "currency", &dest)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "JPY", dest.Code)
}
