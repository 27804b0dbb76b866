package application

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/storefront-state/internal/domain/entity"
	"github.com/oksasatya/storefront-state/internal/storage"
	"github.com/oksasatya/storefront-state/pkg/notify"
)

// WishlistSnapshotKey is the single persisted key owned by the wishlist store.
const WishlistSnapshotKey = "wishlist"

// WishlistStore owns a deduplicated set of saved products. Add is
// idempotent: an entry that is already present is preserved unchanged.
type WishlistStore struct {
	mu    sync.RWMutex
	items []entity.WishlistItem

	adapter storage.Adapter
	logger  *logrus.Logger
	notify  notify.Notifier
}

func NewWishlistStore(ctx context.Context, adapter storage.Adapter, logger *logrus.Logger, n notify.Notifier) *WishlistStore {
	s := &WishlistStore{adapter: adapter, logger: logger, notify: n}
	s.hydrate(ctx)
	return s
}

func (s *WishlistStore) hydrate(ctx context.Context) {
	var items []entity.WishlistItem
	found, err := storage.LoadJSON(ctx, s.adapter, WishlistSnapshotKey, &items)
	if err != nil {
		s.logger.WithError(err).WithField("key", WishlistSnapshotKey).Warn("wishlist snapshot unreadable, starting empty")
		return
	}
	if found {
		s.items = items
	}
}

// Add appends the item unless its id is already present.
func (s *WishlistStore) Add(ctx context.Context, item entity.WishlistItem) {
	s.mu.Lock()
	for _, it := range s.items {
		if it.ID == item.ID {
			s.mu.Unlock()
			return
		}
	}
	s.items = append(s.items, item)
	s.persist(ctx)
	s.mu.Unlock()

	s.notify.Successf("%s saved to wishlist", item.Name)
}

// Remove drops the entry with the given id; a miss is a no-op.
func (s *WishlistStore) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	var removed *entity.WishlistItem
	for i, it := range s.items {
		if it.ID == id {
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
		s.notify.Successf("%s removed from wishlist", removed.Name)
	}
}

// Contains reports membership by id.
func (s *WishlistStore) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Clear empties the wishlist.
func (s *WishlistStore) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = nil
	s.persist(ctx)
	s.mu.Unlock()

	s.notify.Successf("Wishlist cleared")
}

// Count is the current number of saved items.
func (s *WishlistStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Items returns a copy of the current list.
func (s *WishlistStore) Items() []entity.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.WishlistItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *WishlistStore) persist(ctx context.Context) {
	if err := storage.SaveJSON(ctx, s.adapter, WishlistSnapshotKey, s.items); err != nil {
		s.logger.WithError(err).WithField("key", WishlistSnapshotKey).Warn("wishlist snapshot write failed")
	}
}
