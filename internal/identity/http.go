package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// HTTPBackend talks JSON over HTTP to a remote identity provider and keeps
// the bearer token for the lifetime of the process. GetSession is answered
// from the token's claims; verifying the signature is the server's job, the
// client only needs the subject and email to synthesize an identity.
type HTTPBackend struct {
	BaseURL string
	Client  *http.Client

	mu    sync.Mutex
	token string
}

func NewHTTPBackend(baseURL string, timeout time.Duration) *HTTPBackend {
	return &HTTPBackend{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

type signInResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

func (h *HTTPBackend) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var out signInResponse
	if err := h.post(ctx, "/auth/sign-in", body, &out); err != nil {
		return nil, err
	}
	h.mu.Lock()
	h.token = out.AccessToken
	h.mu.Unlock()
	return &Session{UserID: out.User.ID, Email: out.User.Email, Name: out.User.Name}, nil
}

func (h *HTTPBackend) SignUp(ctx context.Context, in SignUpInput) error {
	body := map[string]interface{}{
		"email":    in.Email,
		"password": in.Password,
		"metadata": in.Metadata,
	}
	return h.post(ctx, "/auth/sign-up", body, nil)
}

func (h *HTTPBackend) SignOut(ctx context.Context) error {
	err := h.post(ctx, "/auth/sign-out", map[string]string{}, nil)
	h.mu.Lock()
	h.token = ""
	h.mu.Unlock()
	return err
}

func (h *HTTPBackend) GetSession(context.Context) (*Session, error) {
	h.mu.Lock()
	token := h.token
	h.mu.Unlock()
	if token == "" {
		return nil, nil
	}
	claims := &sessionClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, nil // stale or garbled token, treat as signed out
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return &Session{UserID: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}

func (h *HTTPBackend) post(ctx context.Context, path string, body interface{}, dest interface{}) error {
	if h.BaseURL == "" {
		return ErrBackendUnavailable
	}
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	h.mu.Lock()
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}
	h.mu.Unlock()

	res, err := h.Client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
		}
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("identity backend: %s", apiErr.Message)
		}
		return fmt.Errorf("identity backend: status %d", res.StatusCode)
	}
	if dest == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(dest)
}
