package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/storefront-state/internal/currency"
	"github.com/oksasatya/storefront-state/internal/domain/entity"
	"github.com/oksasatya/storefront-state/internal/storage"
	"github.com/oksasatya/storefront-state/pkg/notify"
)

func newTestCurrency(t *testing.T) (*CurrencyStore, *storage.MemoryAdapter) {
	t.Helper()
	adapter := storage.NewMemoryAdapter()
	return NewCurrencyStore(context.Background(), adapter, currency.BaseCurrency, testLogger(), notify.Nop{}), adapter
}

func TestCurrencyDefaultIsBase(t *testing.T) {
	cs, _ := newTestCurrency(t)
	assert.Equal(t, "USD", cs.Active().Code)
}

func TestCurrencyConvertUsesStaticRate(t *testing.T) {
	ctx := context.Background()
	cs, _ := newTestCurrency(t)

	assert.InDelta(t, 10, cs.Convert(10), 1e-9) // base rate is 1

	cs.Select(ctx, entity.Currency{Code: "JPY"})
	assert.InDelta(t, 10*155, cs.Convert(10), 1e-9)
}

func TestCurrencyFormatPrefixTwoDecimals(t *testing.T) {
	ctx := context.Background()
	cs, _ := newTestCurrency(t)

	assert.Equal(t, "$20.00", cs.Format(19.999))
	assert.Equal(t, "$1234.50", cs.Format(1234.5))

	cs.Select(ctx, entity.Currency{Code: "EUR"})
	assert.Equal(t, "€18.40", cs.Format(19.999))
}

func TestCurrencyFormatZeroDecimalSuffix(t *testing.T) {
	ctx := context.Background()
	cs, _ := newTestCurrency(t)

	cs.Select(ctx, entity.Currency{Code: "JPY"})
	// 19.999 * 155 = 3099.845, rounded to whole units with grouping
	assert.Equal(t, "3,100 ¥", cs.Format(19.999))

	cs.Select(ctx, entity.Currency{Code: "IDR"})
	// 2 * 16300 = 32600
	assert.Equal(t, "32,600 Rp", cs.Format(2))
}

func TestCurrencyFormatIsDeterministic(t *testing.T) {
	ctx := context.Background()
	cs, _ := newTestCurrency(t)

	cs.Select(ctx, entity.Currency{Code: "JPY"})
	first := cs.Format(42.42)
	second := cs.Format(42.42)
	assert.Equal(t, first, second)
}

func TestCurrencySelectPersistsCode(t *testing.T) {
	ctx := context.Background()
	cs, adapter := newTestCurrency(t)

	cs.Select(ctx, entity.Currency{Code: "GBP"})

	reloaded := NewCurrencyStore(ctx, adapter, currency.BaseCurrency, testLogger(), notify.Nop{})
	assert.Equal(t, "GBP", reloaded.Active().Code)
}

func TestCurrencyUnknownCodeFallsBackToBase(t *testing.T) {
	ctx := context.Background()
	cs, adapter := newTestCurrency(t)

	cs.Select(ctx, entity.Currency{Code: "XXX"})
	assert.Equal(t, "USD", cs.Active().Code)

	// a stale snapshot with a code no longer in the table also falls back
	assert.NoError(t, storage.SaveJSON(ctx, adapter, CurrencySnapshotKey, "ZWL"))
	reloaded := NewCurrencyStore(ctx, adapter, currency.BaseCurrency, testLogger(), notify.Nop{})
	assert.Equal(t, "USD", reloaded.Active().Code)
}
