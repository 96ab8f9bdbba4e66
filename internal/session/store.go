package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/golang-jwt/jwt"
	"github.com/shamsy-hassan/FSH-sub001/internal/domain"
)

// Store persists the bearer token, user id and user type across restarts.
// It is the single writer for session state: the auth gateway sets it on
// login/refresh and clears it on logout or refresh failure. Gateways read it
// to attach the Authorization header and to run client-side admin guards.
type Store struct {
	mu   sync.RWMutex
	path string
	cur  domain.Session
}

// Open loads the persisted session if one exists. A missing file yields an
// empty (unauthenticated) session, not an error.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir session dir: %w", err)
	}

	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	if err := sonic.Unmarshal(raw, &s.cur); err != nil {
		// A corrupt session file is treated as logged out.
		s.cur = domain.Session{}
	}
	return s, nil
}

func (s *Store) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func (s *Store) Token() string {
	return s.Current().Token
}

func (s *Store) UserID() string {
	return s.Current().UserID
}

func (s *Store) UserType() string {
	return s.Current().UserType
}

func (s *Store) Authenticated() bool {
	return s.Current().Authenticated()
}

func (s *Store) IsAdmin() bool {
	return s.Current().IsAdmin()
}

// Set replaces the session and flushes it to disk.
func (s *Store) Set(token, userID, userType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = domain.Session{Token: token, UserID: userID, UserType: userType}
	return s.flushLocked()
}

// SetToken replaces only the bearer token, keeping identity fields. Used by
// the refresh flow.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.Token = token
	return s.flushLocked()
}

// Clear drops the session and removes the file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = domain.Session{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *Store) flushLocked() error {
	raw, err := sonic.Marshal(s.cur)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Claims parses the bearer token without verifying its signature. The client
// has no key material; this is introspection only (expiry, identity), never an
// authenticity check.
func (s *Store) Claims() (jwt.MapClaims, error) {
	token := s.Token()
	if token == "" {
		return nil, fmt.Errorf("no token in session")
	}
	parsed, _, err := new(jwt.Parser).ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}
	return claims, nil
}
