package container

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/storefront-state/config"
	"github.com/oksasatya/storefront-state/internal/application"
	"github.com/oksasatya/storefront-state/internal/identity"
	"github.com/oksasatya/storefront-state/internal/storage"
	"github.com/oksasatya/storefront-state/pkg/notify"
)

// app-level container to share constructed components across packages.
// Stores live once per process; consumers receive these handles explicitly
// instead of reaching for ambient globals of their own.

var (
	cfg      *config.Config
	logger   *logrus.Logger
	adapter  storage.Adapter
	backend  identity.Backend
	notifier notify.Notifier

	session  *application.SessionStore
	cart     *application.CartStore
	wishlist *application.WishlistStore
	currency *application.CurrencyStore
	language *application.LanguageStore
)

func SetConfig(c *config.Config)    { cfg = c }
func GetConfig() *config.Config     { return cfg }
func SetLogger(l *logrus.Logger)    { logger = l }
func GetLogger() *logrus.Logger     { return logger }
func SetAdapter(a storage.Adapter)  { adapter = a }
func GetAdapter() storage.Adapter   { return adapter }
func SetBackend(b identity.Backend) { backend = b }
func GetBackend() identity.Backend  { return backend }
func SetNotifier(n notify.Notifier) { notifier = n }
func GetNotifier() notify.Notifier {
	if notifier != nil {
		return notifier
	}
	return notify.Nop{}
}

func SetSession(s *application.SessionStore)   { session = s }
func GetSession() *application.SessionStore    { return session }
func SetCart(s *application.CartStore)         { cart = s }
func GetCart() *application.CartStore          { return cart }
func SetWishlist(s *application.WishlistStore) { wishlist = s }
func GetWishlist() *application.WishlistStore  { return wishlist }
func SetCurrency(s *application.CurrencyStore) { currency = s }
func GetCurrency() *application.CurrencyStore  { return currency }
func SetLanguage(s *application.LanguageStore) { language = s }
func GetLanguage() *application.LanguageStore  { return language }
