package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mkale/transitmate/internal/pkg/apperrors"
	"github.com/mkale/transitmate/internal/pkg/models"
	natspkg "github.com/mkale/transitmate/internal/pkg/nats"
	nrpkg "github.com/mkale/transitmate/internal/pkg/newrelic"
	"github.com/nats-io/nats.go"
)

// HTTPIdentityGW talks to a configured external identity provider over HTTP
// and, when NATS is available, relays the provider's auth-state push channel.
type HTTPIdentityGW struct {
	baseURL          string
	client           *http.Client
	natsClient       *natspkg.Client
	authStateSubject string
}

// NewHTTPIdentityGW creates the HTTP identity provider gateway
func NewHTTPIdentityGW(cfg *models.Config, natsClient *natspkg.Client) *HTTPIdentityGW {
	timeout := time.Duration(cfg.Provider.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPIdentityGW{
		baseURL:          cfg.Provider.BaseURL,
		client:           &http.Client{Timeout: timeout},
		natsClient:       natsClient,
		authStateSubject: cfg.Provider.AuthStateSubject,
	}
}

type providerSession struct {
	SessionID string `json:"sessionId"`
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
}

type providerResponse struct {
	Session *providerSession `json:"session,omitempty"`
	Code    string           `json:"code,omitempty"`
	Message string           `json:"message,omitempty"`
}

// SignUp registers an account with the provider
func (g *HTTPIdentityGW) SignUp(ctx context.Context, username, email, password string) (*models.RiderSession, error) {
	payload := map[string]string{"username": username, "email": email, "password": password}
	return g.postSession(ctx, "/v1/accounts", payload)
}

// SignIn authenticates against the provider
func (g *HTTPIdentityGW) SignIn(ctx context.Context, email, password string) (*models.RiderSession, error) {
	payload := map[string]string{"email": email, "password": password}
	return g.postSession(ctx, "/v1/sessions", payload)
}

// SignOut ends the provider session
func (g *HTTPIdentityGW) SignOut(ctx context.Context) error {
	url := g.baseURL + "/v1/sessions/current"
	return nrpkg.WithExternalSegment(ctx, "identity-provider", "DELETE", url, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrProvider, err)
		}
		resp, err := g.client.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrProvider, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusServiceUnavailable {
			return apperrors.ErrProviderNotConfigured
		}
		if resp.StatusCode >= 400 {
			return fmt.Errorf("%w: sign out failed with status %d", apperrors.ErrProvider, resp.StatusCode)
		}
		return nil
	})
}

// CurrentUser fetches the provider's current session
func (g *HTTPIdentityGW) CurrentUser(ctx context.Context) (*models.RiderSession, error) {
	url := g.baseURL + "/v1/sessions/current"

	var session *models.RiderSession
	err := nrpkg.WithExternalSegment(ctx, "identity-provider", "GET", url, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrProvider, err)
		}
		resp, err := g.client.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrProvider, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusServiceUnavailable {
			return apperrors.ErrProviderNotConfigured
		}
		if resp.StatusCode == http.StatusNotFound {
			return nil // no active session
		}

		var body providerResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return fmt.Errorf("%w: invalid provider response: %v", apperrors.ErrProvider, err)
		}
		if body.Session != nil {
			session = mapProviderSession(body.Session)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// SubscribeSessionChanges relays the provider's auth-state notifications from
// NATS. Without a broker connection there is no push channel and the
// subscription degrades to a no-op.
func (g *HTTPIdentityGW) SubscribeSessionChanges(cb func(*models.RiderSession)) (func(), error) {
	if g.natsClient == nil {
		return nil, nil
	}

	sub, err := g.natsClient.Subscribe(g.authStateSubject, func(msg *nats.Msg) {
		var session models.RiderSession
		if len(msg.Data) == 0 || string(msg.Data) == "null" {
			cb(nil)
			return
		}
		if err := json.Unmarshal(msg.Data, &session); err != nil {
			return
		}
		cb(&session)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: auth state subscription failed: %v", apperrors.ErrProvider, err)
	}

	return func() { _ = sub.Unsubscribe() }, nil
}

func (g *HTTPIdentityGW) postSession(ctx context.Context, path string, payload map[string]string) (*models.RiderSession, error) {
	url := g.baseURL + path

	var session *models.RiderSession
	err := nrpkg.WithExternalSegment(ctx, "identity-provider", "POST", url, func() error {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrProvider, err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrProvider, err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrProvider, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusServiceUnavailable {
			// Provider reachable but reports itself uninitialized; the caller
			// falls back to local mock authentication.
			return apperrors.ErrProviderNotConfigured
		}

		var body providerResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return fmt.Errorf("%w: invalid provider response: %v", apperrors.ErrProvider, err)
		}

		if resp.StatusCode >= 400 {
			return fmt.Errorf("%w: %s", apperrors.ErrProvider, providerMessage(body))
		}
		if body.Session == nil {
			return fmt.Errorf("%w: provider returned no session", apperrors.ErrProvider)
		}

		session = mapProviderSession(body.Session)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// providerMessage maps provider error codes to the short human-readable
// messages surfaced to callers
func providerMessage(body providerResponse) string {
	switch body.Code {
	case "email-already-in-use":
		return "Email already registered"
	case "invalid-email":
		return "Invalid email address"
	case "weak-password":
		return "Password is too weak"
	case "user-not-found", "wrong-password":
		return "Invalid email or password"
	}
	if body.Message != "" {
		return body.Message
	}
	return "identity provider request failed"
}

func mapProviderSession(s *providerSession) *models.RiderSession {
	return &models.RiderSession{
		SessionID: s.SessionID,
		Email:     s.Email,
		Username:  s.Username,
	}
}
