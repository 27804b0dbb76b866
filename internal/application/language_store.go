package application

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/oksasatya/storefront-state/internal/domain/entity"
	"github.com/oksasatya/storefront-state/internal/i18n"
	"github.com/oksasatya/storefront-state/internal/storage"
	"github.com/oksasatya/storefront-state/pkg/notify"
)

// LanguageSnapshotKey is the single persisted key owned by the language store.
const LanguageSnapshotKey = "language"

// LanguageStore owns the active language selection and resolves dotted
// translation keys against the catalog. Resolution never fails: a key
// missing from both the active and the base language comes back as the
// literal key, which keeps missing localization visible and diagnosable.
type LanguageStore struct {
	mu     sync.RWMutex
	active entity.Language
	dir    entity.Direction
	tag    language.Tag

	catalog i18n.Catalog
	adapter storage.Adapter
	logger  *logrus.Logger
	notify  notify.Notifier
}

func NewLanguageStore(ctx context.Context, adapter storage.Adapter, catalog i18n.Catalog, defaultCode string, logger *logrus.Logger, n notify.Notifier) *LanguageStore {
	s := &LanguageStore{
		catalog: catalog,
		adapter: adapter,
		logger:  logger,
		notify:  n,
	}
	s.adopt(i18n.ByCode(defaultCode))
	s.hydrate(ctx)
	return s
}

func (s *LanguageStore) adopt(lang entity.Language) {
	s.active = lang
	s.dir = i18n.DirectionOf(lang.Code)
	s.tag = i18n.TagOf(lang.Code)
}

func (s *LanguageStore) hydrate(ctx context.Context) {
	var code string
	found, err := storage.LoadJSON(ctx, s.adapter, LanguageSnapshotKey, &code)
	if err != nil {
		s.logger.WithError(err).WithField("key", LanguageSnapshotKey).Warn("language snapshot unreadable, using default")
		return
	}
	if found {
		s.adopt(i18n.ByCode(code))
	}
}

// Select sets the active language, persists its code, and updates the
// ambient text direction and locale tag consumed by the rendering layer.
func (s *LanguageStore) Select(ctx context.Context, lang entity.Language) {
	s.mu.Lock()
	s.adopt(i18n.ByCode(lang.Code))
	if err := storage.SaveJSON(ctx, s.adapter, LanguageSnapshotKey, s.active.Code); err != nil {
		s.logger.WithError(err).WithField("key", LanguageSnapshotKey).Warn("language snapshot write failed")
	}
	name := s.active.Name
	s.mu.Unlock()

	s.notify.Successf("Language switched to %s", name)
}

// Active returns the current language descriptor.
func (s *LanguageStore) Active() entity.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Resolve walks dottedKey through the active language's tree. When any
// segment is missing, the same walk restarts against the base language.
// When both walks miss, or the key names an interior node, the literal
// dotted key is returned.
func (s *LanguageStore) Resolve(dottedKey string) string {
	s.mu.RLock()
	code := s.active.Code
	s.mu.RUnlock()

	if root := s.catalog.Root(code); root != nil {
		if v, ok := root.Lookup(dottedKey); ok {
			return v
		}
	}
	if code != i18n.BaseLanguage {
		if root := s.catalog.Root(i18n.BaseLanguage); root != nil {
			if v, ok := root.Lookup(dottedKey); ok {
				return v
			}
		}
	}
	return dottedKey
}

// Direction is rtl for exactly one designated language and ltr otherwise.
func (s *LanguageStore) Direction() entity.Direction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// Tag returns the active locale tag.
func (s *LanguageStore) Tag() language.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tag
}
