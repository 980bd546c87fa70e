// Package auth is the Auth Provider: administrator sign-in and sign-out,
// current-user lookup from bearer tokens and auth-state notifications.
package auth

import (
	"context"
	"errors"
	"time"

	"docadmin/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Event is delivered to OnAuthStateChange listeners.
type Event struct {
	User     model.User
	SignedIn bool
}

// Provider authenticates administrators.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*model.Session, error)
	SignOut(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*model.User, error)
	// OnAuthStateChange registers fn and returns a function that removes it.
	OnAuthStateChange(fn func(Event)) (unsubscribe func())
}

// SessionStore remembers revoked token IDs until the tokens would have expired anyway.
type SessionStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
