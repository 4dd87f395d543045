package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"eventPortal/internal/config"

	"github.com/google/uuid"
)

var (
	ErrEmptyCredentials = errors.New("email and password are required")
	ErrUnknownProvider  = errors.New("unknown identity provider")
)

// Service simulates the SSO gate in front of the intake form. Any non-empty
// credential pair or known provider authenticates after a fixed delay; no
// directory is consulted. Tokens live in memory until their TTL runs out.
type Service struct {
	log        *slog.Logger
	loginDelay time.Duration
	sessionTTL time.Duration
	now        func() time.Time

	mu       sync.Mutex
	sessions map[string]time.Time
}

func New(log *slog.Logger, cfg config.Auth) *Service {
	return &Service{
		log:        log,
		loginDelay: cfg.LoginDelay,
		sessionTTL: cfg.SessionTTL,
		now:        time.Now,
		sessions:   make(map[string]time.Time),
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	const op = "auth.Login"

	if email == "" || password == "" {
		return "", ErrEmptyCredentials
	}

	if err := s.wait(ctx); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	token := s.issue()

	s.log.Info("credential login", slog.String("op", op), slog.String("email", email))

	return token, nil
}

func (s *Service) LoginSSO(ctx context.Context, provider string) (string, error) {
	const op = "auth.LoginSSO"

	switch strings.ToLower(provider) {
	case "microsoft", "google":
	default:
		return "", ErrUnknownProvider
	}

	if err := s.wait(ctx); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	token := s.issue()

	s.log.Info("sso login", slog.String("op", op), slog.String("provider", provider))

	return token, nil
}

// Valid reports whether the token belongs to a live session. Expired tokens
// are dropped on the way out.
func (s *Service) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.sessions[token]
	if !ok {
		return false
	}

	if s.now().After(expiry) {
		delete(s.sessions, token)
		return false
	}

	return true
}

func (s *Service) issue() string {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = s.now().Add(s.sessionTTL)
	s.mu.Unlock()

	return token
}

// wait mimics the identity provider round trip.
func (s *Service) wait(ctx context.Context) error {
	timer := time.NewTimer(s.loginDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
