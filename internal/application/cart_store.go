package application

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/storefront-state/internal/domain/entity"
	"github.com/oksasatya/storefront-state/internal/storage"
	"github.com/oksasatya/storefront-state/pkg/notify"
)

// CartSnapshotKey is the single persisted key owned by the cart store.
const CartSnapshotKey = "cart"

// CartStore owns the shopping cart line items. Lines are uniquely keyed by
// product id; adding an existing product merges quantities. Totals are
// derived from the live list on every read and never cached, so they cannot
// drift from the items. Every mutation persists the full list after the
// in-memory change commits.
type CartStore struct {
	mu    sync.RWMutex
	items []entity.CartItem

	adapter storage.Adapter
	logger  *logrus.Logger
	notify  notify.Notifier
}

func NewCartStore(ctx context.Context, adapter storage.Adapter, logger *logrus.Logger, n notify.Notifier) *CartStore {
	s := &CartStore{adapter: adapter, logger: logger, notify: n}
	s.hydrate(ctx)
	return s
}

// hydrate restores the persisted line list. A missing or malformed snapshot
// means no prior state.
func (s *CartStore) hydrate(ctx context.Context) {
	var items []entity.CartItem
	found, err := storage.LoadJSON(ctx, s.adapter, CartSnapshotKey, &items)
	if err != nil {
		s.logger.WithError(err).WithField("key", CartSnapshotKey).Warn("cart snapshot unreadable, starting empty")
		return
	}
	if found {
		s.items = items
	}
}

// Add merges quantity into an existing line for the same product, or appends
// a new line. The existing line's price and name are preserved on merge.
// Quantity must be positive; the store does not clamp on add.
func (s *CartStore) Add(ctx context.Context, item entity.CartItem, quantity int) {
	s.mu.Lock()
	merged := false
	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		item.Quantity = quantity
		s.items = append(s.items, item)
	}
	s.persist(ctx)
	s.mu.Unlock()

	s.notify.Successf("%s added to cart", item.Name)
}

// Remove drops the line entirely regardless of its quantity.
func (s *CartStore) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	var removed *entity.CartItem
	for i, it := range s.items {
		if it.ProductID == productID {
			removed = &it
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	if removed != nil {
		s.persist(ctx)
	}
	s.mu.Unlock()

	if removed != nil {
		s.notify.Successf("%s removed from cart", removed.Name)
	}
}

// SetQuantity replaces a line's quantity in place. A quantity of zero or
// below behaves as Remove.
func (s *CartStore) SetQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		s.Remove(ctx, productID)
		return
	}
	s.mu.Lock()
	updated := false
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			updated = true
			break
		}
	}
	s.mu.Unlock()

	if updated {
		s.notify.Successf("Cart updated")
	}
}

// Clear empties the cart.
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.persist(ctx)
	s.mu.Unlock()

	s.notify.Successf("Cart cleared")
}

// Items returns a copy of the current line list.
func (s *CartStore) Items() []entity.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItems sums the quantities over the current lines.
func (s *CartStore) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// Subtotal sums unit price times quantity over the current lines.
func (s *CartStore) Subtotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum float64
	for _, it := range s.items {
		sum += it.LineTotal()
	}
	return sum
}

// persist writes the full line list. Callers hold the write lock, so the
// snapshot always reflects the committed in-memory state. Write failures
// are logged and do not fail the mutation.
func (s *CartStore) persist(ctx context.Context) {
	if err := storage.SaveJSON(ctx, s.adapter, CartSnapshotKey, s.items); err != nil {
		s.logger.WithError(err).WithField("key", CartSnapshotKey).Warn("cart snapshot write failed")
	}
}
