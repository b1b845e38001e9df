package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"internhub/internal/metrics"
	"internhub/internal/model"
)

// Manager owns the session lifecycle on top of a Store.
type Manager struct {
	store  Store
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewManager(store Store, ttl time.Duration, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, ttl: ttl, logger: logger, now: time.Now}
}

// Create starts a session for a token/user pair returned by login or register.
func (m *Manager) Create(ctx context.Context, token string, user model.User) (*Session, error) {
	if token == "" {
		return nil, errors.New("session token required")
	}
	id := uuid.NewString()
	st := State{Token: token, User: user}
	if err := m.store.Save(ctx, id, st, m.ttl); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	metrics.SessionsCreated.Inc()
	m.logger.Info("session created", zap.String("session", id), zap.String("user", user.Email))
	return New(id, st, m.clearHook()), nil
}

// Restore loads a session by id. A backend token whose own expiry has
// passed ends the session.
func (m *Manager) Restore(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrNoSession
	}
	st, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.Token == "" || m.tokenExpired(st.Token) {
		_ = m.Destroy(ctx, id)
		return nil, ErrNoSession
	}
	return New(id, st, m.clearHook()), nil
}

// Destroy removes a session from the store.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	m.logger.Info("session destroyed", zap.String("session", id))
	return nil
}

func (m *Manager) clearHook() func(string) {
	return func(id string) {
		// The request that triggered the clear may already be cancelled.
		if err := m.Destroy(context.Background(), id); err != nil {
			m.logger.Warn("session clear failed", zap.String("session", id), zap.Error(err))
		}
	}
}

// tokenExpired reads the exp claim of a JWT without verifying it; the
// backend owns the key. Opaque tokens never expire here.
func (m *Manager) tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !m.now().Before(exp.Time)
}
