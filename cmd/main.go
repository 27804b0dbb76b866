package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/storefront-state/config"
	"github.com/oksasatya/storefront-state/internal/application"
	"github.com/oksasatya/storefront-state/internal/container"
	"github.com/oksasatya/storefront-state/internal/i18n"
	"github.com/oksasatya/storefront-state/internal/identity"
	"github.com/oksasatya/storefront-state/internal/storage"
	"github.com/oksasatya/storefront-state/pkg/helpers"
	"github.com/oksasatya/storefront-state/pkg/notify"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx := context.Background()

	adapter, err := newAdapter(cfg)
	if err != nil {
		log.Fatalf("failed to init snapshot storage: %v", err)
	}

	var backend identity.Backend
	if cfg.IdentityBackendURL != "" {
		backend = identity.NewHTTPBackend(cfg.IdentityBackendURL, cfg.IdentityTimeout)
	} else {
		backend = identity.NewDevBackend()
	}

	notifier := &notify.LogNotifier{Logger: logger}

	// Provide infra singletons to the container
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetAdapter(adapter)
	container.SetBackend(backend)
	container.SetNotifier(notifier)

	// Construct and hydrate the stores
	session := application.NewSessionStore(adapter, backend, cfg.IsDevelopment(), logger, notifier)
	cart := application.NewCartStore(ctx, adapter, logger, notifier)
	wishlist := application.NewWishlistStore(ctx, adapter, logger, notifier)
	currency := application.NewCurrencyStore(ctx, adapter, cfg.BaseCurrency, logger, notifier)
	language := application.NewLanguageStore(ctx, adapter, i18n.Default, cfg.DefaultLanguage, logger, notifier)

	container.SetSession(session)
	container.SetCart(cart)
	container.SetWishlist(wishlist)
	container.SetCurrency(currency)
	container.SetLanguage(language)

	if err := session.RestoreSession(ctx); err != nil {
		logger.WithError(err).Warn("session restore failed, continuing unauthenticated")
	}

	report(logger, session, cart, wishlist, currency, language)
}

func newAdapter(cfg *config.Config) (storage.Adapter, error) {
	switch cfg.StorageBackend {
	case "redis":
		rdb := storage.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		return storage.NewRedisAdapter(rdb, ""), nil
	case "memory":
		return storage.NewMemoryAdapter(), nil
	default:
		return storage.NewFileAdapter(cfg.StateDir)
	}
}

// report logs a one-shot view of the hydrated state, the way a page header
// would read it: identity, cart totals in the active currency, and a few
// resolved strings.
func report(logger *logrus.Logger, session *application.SessionStore, cart *application.CartStore, wishlist *application.WishlistStore, currency *application.CurrencyStore, language *application.LanguageStore) {
	fields := logrus.Fields{
		"status":    session.Status(),
		"dashboard": session.DashboardPath(),
		"items":     cart.TotalItems(),
		"subtotal":  currency.Format(cart.Subtotal()),
		"wishlist":  wishlist.Count(),
		"currency":  currency.Active().Code,
		"language":  language.Active().Code,
		"direction": language.Direction(),
	}
	if id := session.Current(); id != nil {
		fields["email"] = id.Email
		fields["role"] = id.Role
	}
	logger.WithFields(fields).Info(language.Resolve("nav.home") + " state hydrated")
}
