package identity

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/oksasatya/storefront-state/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

type devAccount struct {
	id           string
	email        string
	name         string
	passwordHash string
}

// DevBackend is an in-memory identity provider for local development and
// tests. Passwords are bcrypt-hashed like the real thing so the login path
// is exercised end to end.
type DevBackend struct {
	mu       sync.Mutex
	accounts map[string]devAccount // by email
	active   *Session
}

func NewDevBackend() *DevBackend {
	return &DevBackend{accounts: map[string]devAccount{}}
}

func (d *DevBackend) SignInWithPassword(_ context.Context, email, password string) (*Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	acc, ok := d.accounts[email]
	if !ok || !helpers.CompareHashAndPassword(acc.passwordHash, password) {
		return nil, ErrInvalidCredentials
	}
	s := &Session{UserID: acc.id, Email: acc.email, Name: acc.name}
	d.active = s
	return s, nil
}

func (d *DevBackend) SignUp(_ context.Context, in SignUpInput) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.accounts[in.Email]; exists {
		return ErrEmailTaken
	}
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return err
	}
	d.accounts[in.Email] = devAccount{
		id:           uuid.NewString(),
		email:        in.Email,
		name:         in.Metadata["name"],
		passwordHash: hash,
	}
	return nil
}

func (d *DevBackend) SignOut(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active = nil
	return nil
}

func (d *DevBackend) GetSession(context.Context) (*Session, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active, nil
}
