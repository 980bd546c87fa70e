package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"docadmin/internal/config"
	"docadmin/internal/logger"
	"docadmin/internal/model"
)

const issuer = "docadmin"

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTProvider authenticates the single configured administrator and issues
// HS256 access tokens. Revocation state lives in a SessionStore.
type JWTProvider struct {
	email        string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	sessions     SessionStore
	log          *logger.Logger
	now          func() time.Time

	mu        sync.RWMutex
	listeners map[uint64]func(Event)
	nextID    uint64
}

var _ Provider = (*JWTProvider)(nil)

// NewJWTProvider validates cfg and builds the provider.
func NewJWTProvider(cfg config.AuthConfig, sessions SessionStore, log *logger.Logger) (*JWTProvider, error) {
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("admin email and password hash are required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if _, err := bcrypt.Cost([]byte(cfg.AdminPasswordHash)); err != nil {
		return nil, fmt.Errorf("admin password hash: %w", err)
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &JWTProvider{
		email:        strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		passwordHash: []byte(cfg.AdminPasswordHash),
		secret:       []byte(cfg.JWTSecret),
		ttl:          ttl,
		sessions:     sessions,
		log:          log.With("service", "AuthProvider"),
		now:          time.Now,
		listeners:    make(map[uint64]func(Event)),
	}, nil
}

// UserID derives a stable identifier from an email address.
func UserID(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(strings.TrimSpace(email)))).String()
}

func (p *JWTProvider) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email != p.email {
		// same bcrypt work for unknown emails
		_ = bcrypt.CompareHashAndPassword(p.passwordHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(p.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user := model.User{ID: UserID(email), Email: email}
	now := p.now()
	expiresAt := now.Add(p.ttl)
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	p.log.Info("admin signed in", "user_id", user.ID)
	p.notify(Event{User: user, SignedIn: true})

	return &model.Session{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

func (p *JWTProvider) SignOut(ctx context.Context, token string) error {
	claims, err := p.parse(token)
	if err != nil {
		return err
	}
	ttl := claims.ExpiresAt.Time.Sub(p.now())
	if ttl < time.Second {
		ttl = time.Second
	}
	if err := p.sessions.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	user := model.User{ID: claims.Subject, Email: claims.Email}
	p.log.Info("admin signed out", "user_id", user.ID)
	p.notify(Event{User: user, SignedIn: false})
	return nil
}

func (p *JWTProvider) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	claims, err := p.parse(token)
	if err != nil {
		return nil, err
	}
	revoked, err := p.sessions.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}
	if revoked {
		return nil, ErrInvalidToken
	}
	return &model.User{ID: claims.Subject, Email: claims.Email}, nil
}

func (p *JWTProvider) OnAuthStateChange(fn func(Event)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.listeners, id)
		p.mu.Unlock()
	}
}

func (p *JWTProvider) notify(ev Event) {
	p.mu.RLock()
	fns := make([]func(Event), 0, len(p.listeners))
	for _, fn := range p.listeners {
		fns = append(fns, fn)
	}
	p.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func (p *JWTProvider) parse(token string) (*tokenClaims, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return p.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if claims.ID == "" || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
