package application

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/oksasatya/storefront-state/internal/currency"
	"github.com/oksasatya/storefront-state/internal/domain/entity"
	"github.com/oksasatya/storefront-state/internal/storage"
	"github.com/oksasatya/storefront-state/pkg/notify"
)

// CurrencySnapshotKey is the single persisted key owned by the currency store.
const CurrencySnapshotKey = "currency"

// CurrencyStore owns the active currency selection and derives converted and
// formatted prices from the static rate table. Formatting is deterministic:
// the rule sets are static lookups, not a locale engine.
type CurrencyStore struct {
	mu     sync.RWMutex
	active entity.Currency

	adapter storage.Adapter
	logger  *logrus.Logger
	notify  notify.Notifier
	printer *message.Printer
}

func NewCurrencyStore(ctx context.Context, adapter storage.Adapter, defaultCode string, logger *logrus.Logger, n notify.Notifier) *CurrencyStore {
	s := &CurrencyStore{
		active:  currency.ByCode(defaultCode),
		adapter: adapter,
		logger:  logger,
		notify:  n,
		printer: message.NewPrinter(language.English),
	}
	s.hydrate(ctx)
	return s
}

// hydrate restores the persisted currency code. Unknown or unreadable codes
// fall back to the default.
func (s *CurrencyStore) hydrate(ctx context.Context) {
	var code string
	found, err := storage.LoadJSON(ctx, s.adapter, CurrencySnapshotKey, &code)
	if err != nil {
		s.logger.WithError(err).WithField("key", CurrencySnapshotKey).Warn("currency snapshot unreadable, using default")
		return
	}
	if found {
		s.active = currency.ByCode(code)
	}
}

// Select sets the active currency and persists its code. Unknown codes are
// coerced to the base currency.
func (s *CurrencyStore) Select(ctx context.Context, c entity.Currency) {
	s.mu.Lock()
	s.active = currency.ByCode(c.Code)
	if err := storage.SaveJSON(ctx, s.adapter, CurrencySnapshotKey, s.active.Code); err != nil {
		s.logger.WithError(err).WithField("key", CurrencySnapshotKey).Warn("currency snapshot write failed")
	}
	code := s.active.Code
	s.mu.Unlock()

	s.notify.Successf("Currency switched to %s", code)
}

// Active returns the current currency descriptor.
func (s *CurrencyStore) Active() entity.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Convert turns an amount in the base currency into the active currency.
func (s *CurrencyStore) Convert(amountInBase float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return amountInBase * currency.RateOf(s.active.Code)
}

// Format converts and renders an amount in the active currency.
// Zero-decimal currencies round to whole units with grouping separators;
// all others carry exactly two fractional digits. Symbol placement follows
// the static prefix allow-list.
func (s *CurrencyStore) Format(amountInBase float64) string {
	s.mu.RLock()
	active := s.active
	printer := s.printer
	s.mu.RUnlock()

	converted := amountInBase * currency.RateOf(active.Code)

	var amount string
	if currency.IsZeroDecimal(active.Code) {
		amount = printer.Sprintf("%d", int64(math.Round(converted)))
	} else {
		amount = fmt.Sprintf("%.2f", converted)
	}

	if currency.IsSymbolPrefix(active.Code) {
		return active.Symbol + amount
	}
	return amount + " " + active.Symbol
}
