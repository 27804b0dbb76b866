package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/storefront-state/internal/domain/entity"
	"github.com/oksasatya/storefront-state/internal/i18n"
	"github.com/oksasatya/storefront-state/internal/storage"
	"github.com/oksasatya/storefront-state/pkg/notify"
)

func newTestLanguage(t *testing.T) (*LanguageStore, *storage.MemoryAdapter) {
	t.Helper()
	adapter := storage.NewMemoryAdapter()
	return NewLanguageStore(context.Background(), adapter, i18n.Default, i18n.BaseLanguage, testLogger(), notify.Nop{}), adapter
}

func TestLanguageResolveKnownKey(t *testing.T) {
	ls, _ := newTestLanguage(t)
	assert.Equal(t, "items in cart", ls.Resolve("cart.itemsInCart"))
}

func TestLanguageResolveActiveLanguage(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestLanguage(t)

	ls.Select(ctx, entity.Language{Code: "id"})
	assert.Equal(t, "Keranjang Belanja", ls.Resolve("cart.title"))
}

func TestLanguageResolveFallsBackToBase(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestLanguage(t)

	// the id catalog has no checkout subtree; the walk restarts on en
	ls.Select(ctx, entity.Language{Code: "id"})
	assert.Equal(t, "Checkout", ls.Resolve("checkout.title"))
}

func TestLanguageResolveMissingKeyReturnsLiteral(t *testing.T) {
	ls, _ := newTestLanguage(t)
	assert.Equal(t, "missing.key", ls.Resolve("missing.key"))
	assert.Equal(t, "cart.noSuchKey", ls.Resolve("cart.noSuchKey"))
}

func TestLanguageResolveInteriorNodeReturnsKey(t *testing.T) {
	ls, _ := newTestLanguage(t)
	// "cart" names a subtree, not a leaf
	assert.Equal(t, "cart", ls.Resolve("cart"))
}

func TestLanguageDirection(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestLanguage(t)

	assert.Equal(t, entity.DirectionLTR, ls.Direction())

	ls.Select(ctx, entity.Language{Code: "ar"})
	assert.Equal(t, entity.DirectionRTL, ls.Direction())

	ls.Select(ctx, entity.Language{Code: "id"})
	assert.Equal(t, entity.DirectionLTR, ls.Direction())
}

func TestLanguageSelectUpdatesLocaleTag(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestLanguage(t)

	assert.Equal(t, "en-US", ls.Tag().String())

	ls.Select(ctx, entity.Language{Code: "ar"})
	assert.Equal(t, "ar-SA", ls.Tag().String())
}

func TestLanguageSelectPersistsCode(t *testing.T) {
	ctx := context.Background()
	ls, adapter := newTestLanguage(t)

	ls.Select(ctx, entity.Language{Code: "ar"})

	reloaded := NewLanguageStore(ctx, adapter, i18n.Default, i18n.BaseLanguage, testLogger(), notify.Nop{})
	assert.Equal(t, "ar", reloaded.Active().Code)
	assert.Equal(t, entity.DirectionRTL, reloaded.Direction())
}

func TestLanguageUnknownCodeFallsBackToBase(t *testing.T) {
	ctx := context.Background()
	ls, _ := newTestLanguage(t)

	ls.Select(ctx, entity.Language{Code: "fr"})
	assert.Equal(t, "en", ls.Active().Code)
}
