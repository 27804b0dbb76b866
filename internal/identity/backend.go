package identity

import (
	"context"
	"errors"
)

// ErrBackendUnavailable is returned when no identity backend is configured
// for an operation that requires one.
var ErrBackendUnavailable = errors.New("identity backend unavailable")

// Session is the minimal view of an authenticated backend session. The
// session store synthesizes a full identity from it.
type Session struct {
	UserID string
	Email  string
	Name   string
}

// SignUpInput carries registration data to the backend.
type SignUpInput struct {
	Email    string
	Password string
	Metadata map[string]string
}

// Backend is the opaque identity provider the session store delegates to.
// GetSession returns (nil, nil) when no session is active.
type Backend interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, in SignUpInput) error
	SignOut(ctx context.Context) error
	GetSession(ctx context.Context) (*Session, error)
}
