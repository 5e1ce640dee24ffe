// Package session holds the single source of truth for "who is using this
// client and with what credentials". The in-memory state is mirrored to the
// durable local store under two keys: the full user record as JSON, and the
// bare token duplicated for start-up convenience. All mutation funnels
// through Login and Logout; nothing else writes.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hiddenhaul/haul/internal/client/models"
	"github.com/hiddenhaul/haul/internal/client/repositories/localstore"
	"github.com/hiddenhaul/haul/internal/logging"
)

const (
	// RecordKey is the local-store key holding the serialized user record.
	RecordKey = "user"
	// TokenKey duplicates the bearer token under its own key.
	TokenKey = "token"
)

// Store is the process-wide session. Zero value is not usable; construct
// with NewStore. Safe for concurrent use: writers fully replace the state,
// readers take the lock, so a partially-authenticated session is never
// observable.
type Store struct {
	mu       sync.RWMutex
	loggedIn bool
	role     models.Role
	name     string
	token    string

	repo localstore.Repository
	log  logging.Logger
}

func NewStore(repo localstore.Repository, log logging.Logger) *Store {
	return &Store{role: models.RoleGuest, repo: repo, log: log}
}

// Login replaces the session wholesale with u and persists the record.
// Field validation is the caller's job; u normally comes straight from a
// successful authentication response.
func (s *Store) Login(ctx context.Context, u models.User) error {
	s.mu.Lock()
	s.loggedIn = true
	s.role = u.Role
	s.name = u.Name
	s.token = u.Token
	s.mu.Unlock()

	record, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to serialize session record: %w", err)
	}
	// one transaction: the record and its token copy can never diverge
	return s.repo.SetMany(ctx, map[string][]byte{
		RecordKey: record,
		TokenKey:  []byte(u.Token),
	})
}

// Logout resets the session to guest and removes the persisted record.
// Calling it while already logged out is a no-op with the same outcome.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.loggedIn = false
	s.role = models.RoleGuest
	s.name = ""
	s.token = ""
	s.mu.Unlock()

	return s.repo.DeleteMany(ctx, RecordKey, TokenKey)
}

// Restore hydrates the session from the persisted record. Intended to run
// once at process start, before the command loop. A missing record leaves
// the session at guest. A malformed record (bad JSON, empty token, unknown
// role) is purged and the session stays at guest; that is a recoverable
// condition, not an error.
func (s *Store) Restore(ctx context.Context) error {
	record, err := s.repo.Get(ctx, RecordKey)
	if err != nil {
		return err
	}
	if record == nil {
		return nil
	}

	var u models.User
	if err := json.Unmarshal(record, &u); err != nil || u.Token == "" || !u.Role.Valid() {
		s.log.Warn(ctx, "purging malformed session record")
		return s.repo.DeleteMany(ctx, RecordKey, TokenKey)
	}

	return s.Login(ctx, u)
}

func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

func (s *Store) Role() models.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

func (s *Store) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// Token is the canonical source for outgoing request credentials. The
// duplicated local-store copy exists only for start-up restore parity.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// TokenExpiry decodes the token's exp claim without verifying the
// signature. Cosmetic: the status line shows it, the server enforces it.
func (s *Store) TokenExpiry() (time.Time, bool) {
	tok := s.Token()
	if tok == "" {
		return time.Time{}, false
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tok, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
