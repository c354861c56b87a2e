package service

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/brightstone/gemgate/internal/clock"
	apperrors "github.com/brightstone/gemgate/internal/errors"
)

// Authenticator performs the blocking supplier authenticate call and returns
// a fresh access token.
type Authenticator interface {
	Authenticate(ctx context.Context) (string, error)
}

// AuthenticatorFunc adapts a function to the Authenticator interface.
type AuthenticatorFunc func(ctx context.Context) (string, error)

// Authenticate calls f.
func (f AuthenticatorFunc) Authenticate(ctx context.Context) (string, error) {
	return f(ctx)
}

// TokenCache holds the single process-wide supplier access token and its
// expiry. The token is reused while unexpired; expired or missing tokens
// trigger one authenticate call, collapsed across concurrent callers so a
// burst of requests produces a single refresh.
type TokenCache struct {
	auth Authenticator
	ttl  time.Duration
	clk  clock.Clock

	group singleflight.Group

	mu        sync.Mutex
	value     string
	expiresAt time.Time
}

// NewTokenCache creates a token cache refreshing through auth with a fixed
// time-to-live. The clock is injected so tests can simulate expiry.
func NewTokenCache(auth Authenticator, ttl time.Duration, clk clock.Clock) *TokenCache {
	return &TokenCache{
		auth: auth,
		ttl:  ttl,
		clk:  clk,
	}
}

// Token returns the cached token while unexpired, refreshing it otherwise.
// An authenticate call that yields no token fails with ErrAuthentication.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.value != "" && c.clk.Now().Before(c.expiresAt) {
		value := c.value
		c.mu.Unlock()
		return value, nil
	}
	c.mu.Unlock()

	value, err, _ := c.group.Do("token", func() (any, error) {
		token, err := c.auth.Authenticate(ctx)
		if err != nil {
			return nil, err
		}
		if token == "" {
			return nil, apperrors.Wrap(apperrors.ErrAuthentication, "supplier returned an empty token")
		}

		c.mu.Lock()
		c.value = token
		c.expiresAt = c.clk.Now().Add(c.ttl)
		c.mu.Unlock()

		return token, nil
	})
	if err != nil {
		return "", err
	}

	return value.(string), nil
}
