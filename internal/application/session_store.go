package application

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/storefront-state/internal/domain/entity"
	"github.com/oksasatya/storefront-state/internal/identity"
	"github.com/oksasatya/storefront-state/internal/storage"
	"github.com/oksasatya/storefront-state/pkg/notify"
	"github.com/oksasatya/storefront-state/pkg/validation"
)

// IdentitySnapshotKey is the single persisted key owned by the session store.
const IdentitySnapshotKey = "identity"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrEmailTaken       = errors.New("email already registered")
)

// Status is the session state machine position.
type Status string

const (
	StatusUnauthenticated Status = "unauthenticated"
	StatusAuthenticating  Status = "authenticating"
	StatusAuthenticated   Status = "authenticated"
)

// seededIdentity is one fixed development account. The table short-circuits
// the identity backend on login so the client works fully offline.
type seededIdentity struct {
	password string
	identity entity.Identity
}

func seededTable() map[string]seededIdentity {
	return map[string]seededIdentity{
		"admin@example.com": {
			password: "password123",
			identity: entity.Identity{ID: "seed-admin", Email: "admin@example.com", Role: entity.RoleAdmin, Name: "Admin"},
		},
		"seller@example.com": {
			password: "password123",
			identity: entity.Identity{ID: "seed-seller", Email: "seller@example.com", Role: entity.RoleSeller, Name: "Demo Seller"},
		},
		"buyer@example.com": {
			password: "password123",
			identity: entity.Identity{ID: "seed-buyer", Email: "buyer@example.com", Role: entity.RoleBuyer, Name: "Demo Buyer"},
		},
	}
}

// SessionStore owns the current identity and its authentication status.
// Backend calls run outside the store lock; in-memory state and the
// persisted snapshot only change after a call resolves, so the store is
// never observed in a partially-mutated state.
type SessionStore struct {
	mu      sync.RWMutex
	current *entity.Identity
	status  Status

	adapter storage.Adapter
	backend identity.Backend
	logger  *logrus.Logger
	notify  notify.Notifier
	devMode bool
	seeded  map[string]seededIdentity
}

func NewSessionStore(adapter storage.Adapter, backend identity.Backend, devMode bool, logger *logrus.Logger, n notify.Notifier) *SessionStore {
	return &SessionStore{
		status:  StatusUnauthenticated,
		adapter: adapter,
		backend: backend,
		logger:  logger,
		notify:  n,
		devMode: devMode,
		seeded:  seededTable(),
	}
}

// RestoreSession adopts a persisted identity snapshot when one exists,
// otherwise asks the backend for an active session and synthesizes a
// minimal identity from it. Exactly one of {persisted identity, backend
// identity, remain absent} happens.
func (s *SessionStore) RestoreSession(ctx context.Context) error {
	var snap entity.Identity
	found, err := storage.LoadJSON(ctx, s.adapter, IdentitySnapshotKey, &snap)
	if err != nil {
		s.logger.WithError(err).WithField("key", IdentitySnapshotKey).Warn("identity snapshot unreadable, ignoring")
	}
	if found {
		snap.Normalize()
		s.adopt(ctx, &snap, false)
		return nil
	}

	sess, err := s.backend.GetSession(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("session probe failed")
		return err
	}
	if sess == nil {
		return nil
	}
	id := s.identityFromSession(sess)
	s.adopt(ctx, id, true)
	return nil
}

// Login first checks the seeded development table; a match adopts that
// identity without any backend call. Otherwise the backend authenticates
// and a default-role identity is synthesized from its session.
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	s.setStatus(StatusAuthenticating)

	if acc, ok := s.seeded[email]; ok && acc.password == password {
		id := acc.identity
		s.adopt(ctx, &id, true)
		s.notify.Successf("Welcome back, %s", id.Name)
		return nil
	}

	sess, err := s.backend.SignInWithPassword(ctx, email, password)
	if err != nil {
		s.setStatus(StatusUnauthenticated)
		s.logger.WithError(err).WithField("email", email).Warn("login failed")
		s.notify.Errorf("Login failed: %v", err)
		return err
	}
	id := s.identityFromSession(sess)
	s.adopt(ctx, id, true)
	s.notify.Successf("Welcome back, %s", id.Name)
	return nil
}

// RegisterInput carries new-account data.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,pwd"`
}

// Register creates an account. In development mode the identity is
// synthesized locally without contacting the backend; emails already in the
// seeded table are rejected. Otherwise the backend registers and Login
// chains on success.
func (s *SessionStore) Register(ctx context.Context, in RegisterInput) error {
	if err := validation.Struct(in); err != nil {
		s.logger.WithField("details", validation.ToDetails(err)).Warn("register input invalid")
		s.notify.Errorf("Registration failed: invalid input")
		return err
	}

	if s.devMode {
		if _, exists := s.seeded[in.Email]; exists {
			s.notify.Errorf("An account with this email already exists")
			return ErrEmailTaken
		}
		id := &entity.Identity{
			ID:    uuid.NewString(),
			Email: in.Email,
			Role:  entity.RoleBuyer,
			Name:  in.Name,
		}
		s.adopt(ctx, id, true)
		s.notify.Successf("Welcome, %s", id.Name)
		return nil
	}

	if err := s.backend.SignUp(ctx, identity.SignUpInput{
		Email:    in.Email,
		Password: in.Password,
		Metadata: map[string]string{"name": in.Name},
	}); err != nil {
		s.logger.WithError(err).WithField("email", in.Email).Warn("registration failed")
		s.notify.Errorf("Registration failed: %v", err)
		return err
	}
	return s.Login(ctx, in.Email, in.Password)
}

// Logout ends the backend session and clears local state. Local persisted
// and in-memory identity are cleared even when the backend call fails, so a
// dead backend cannot pin the client in an authenticated state; the error
// is still returned.
func (s *SessionStore) Logout(ctx context.Context) error {
	err := s.backend.SignOut(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("backend sign-out failed, clearing local session anyway")
	}

	s.mu.Lock()
	if dErr := s.adapter.Delete(ctx, IdentitySnapshotKey); dErr != nil {
		s.logger.WithError(dErr).WithField("key", IdentitySnapshotKey).Warn("identity snapshot delete failed")
	}
	s.current = nil
	s.status = StatusUnauthenticated
	s.mu.Unlock()

	s.notify.Successf("Signed out")
	return err
}

// ProfileUpdate carries partial identity changes; empty fields are left
// unchanged.
type ProfileUpdate struct {
	Name   string
	Avatar string
	Role   entity.Role
}

// UpdateProfile merges the patch into the current identity, re-validating
// the role when one is supplied, then persists and replaces it.
func (s *SessionStore) UpdateProfile(ctx context.Context, patch ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNotAuthenticated
	}
	updated := *s.current
	if patch.Name != "" {
		updated.Name = patch.Name
	}
	if patch.Avatar != "" {
		updated.Avatar = patch.Avatar
	}
	if patch.Role != "" {
		updated.Role = entity.NormalizeRole(patch.Role)
	}
	if err := storage.SaveJSON(ctx, s.adapter, IdentitySnapshotKey, &updated); err != nil {
		s.logger.WithError(err).WithField("key", IdentitySnapshotKey).Warn("identity snapshot write failed")
	}
	s.current = &updated

	s.notify.Successf("Profile updated")
	return nil
}

// DashboardPath maps the current role to its canonical route. An absent
// identity maps to the login route.
func (s *SessionStore) DashboardPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return "/login"
	}
	switch s.current.Role {
	case entity.RoleAdmin:
		return "/admin/dashboard"
	case entity.RoleSeller:
		return "/seller/dashboard"
	default:
		return "/buyer/dashboard"
	}
}

// Current returns a copy of the signed-in identity, or nil.
func (s *SessionStore) Current() *entity.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// Status returns the session state machine position.
func (s *SessionStore) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// IsAuthenticated reports whether an identity is present.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// identityFromSession synthesizes a minimal default-role identity from a
// backend session.
func (s *SessionStore) identityFromSession(sess *identity.Session) *entity.Identity {
	name := sess.Name
	if name == "" {
		name = "Shopper"
	}
	return &entity.Identity{
		ID:    sess.UserID,
		Email: sess.Email,
		Role:  entity.RoleBuyer,
		Name:  name,
	}
}

// adopt commits an identity in memory and, when persist is set, writes the
// snapshot after the in-memory change.
func (s *SessionStore) adopt(ctx context.Context, id *entity.Identity, persist bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = id
	s.status = StatusAuthenticated
	if persist {
		if err := storage.SaveJSON(ctx, s.adapter, IdentitySnapshotKey, id); err != nil {
			s.logger.WithError(err).WithField("key", IdentitySnapshotKey).Warn("identity snapshot write failed")
		}
	}
}

func (s *SessionStore) setStatus(st Status) {
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}
