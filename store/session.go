package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/siga-greffe/greffe-api/models"
)

// Persistent storage keys for the authenticated session. The names are
// fixed by the original client and kept for compatibility with tooling
// that inspects the session file.
const (
	SessionTokenKey    = "SIGA_AUTH_TOKEN"
	SessionRoleKey     = "SIGA_USER_ROLE"
	SessionFullNameKey = "SIGA_USER_FULLNAME"
)

// Session holds the authenticated registry session, persisted as a small
// JSON file so a gateway restart does not force a re-login.
type Session struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
}

// LoadSession reads the session file at path, or starts an empty session
// when the file does not exist.
func LoadSession(path string) *Session {
	s := &Session{path: path, values: map[string]string{}}
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			zap.S().Warnw("could not read session file", "path", path, "error", err)
		}
		return s
	}
	if err := json.Unmarshal(b, &s.values); err != nil {
		zap.S().Warnw("could not parse session file, starting unauthenticated", "path", path, "error", err)
		s.values = map[string]string{}
	}
	return s
}

// Login stores the role, bearer token and display name and marks the
// session authenticated. An empty fullName falls back to the local part
// of the email address.
func (s *Session) Login(role models.UserRole, token, fullName, email string) {
	if strings.TrimSpace(fullName) == "" {
		fullName = email
		if i := strings.Index(email, "@"); i > 0 {
			fullName = email[:i]
		}
	}

	s.mu.Lock()
	s.values[SessionTokenKey] = token
	s.values[SessionRoleKey] = string(role)
	s.values[SessionFullNameKey] = fullName
	s.mu.Unlock()
	s.persist()
}

// Logout clears the token, role and display name and marks the session
// unauthenticated.
func (s *Session) Logout() {
	s.mu.Lock()
	delete(s.values, SessionTokenKey)
	delete(s.values, SessionRoleKey)
	delete(s.values, SessionFullNameKey)
	s.mu.Unlock()
	s.persist()
}

// Token returns the stored bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[SessionTokenKey]
}

// Role returns the stored registry role.
func (s *Session) Role() models.UserRole {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.UserRole(s.values[SessionRoleKey])
}

// FullName returns the stored display name.
func (s *Session) FullName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[SessionFullNameKey]
}

// IsAuthenticated reports whether a token is present and, when the token
// is a JWT with an exp claim, not yet expired. Opaque tokens count as
// authenticated; the backend remains the authority either way.
func (s *Session) IsAuthenticated() bool {
	token := s.Token()
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(time.Now())
}

// Info returns the session description exposed to views.
func (s *Session) Info() models.SessionInfo {
	if !s.IsAuthenticated() {
		return models.SessionInfo{}
	}
	return models.SessionInfo{
		Authenticated: true,
		Role:          s.Role(),
		FullName:      s.FullName(),
	}
}

func (s *Session) persist() {
	if s.path == "" {
		return
	}
	s.mu.RLock()
	b, err := json.MarshalIndent(s.values, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		zap.S().Errorw("could not encode session", "error", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		zap.S().Errorw("could not create session directory", "error", err)
		return
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		zap.S().Errorw("could not write session file", "path", s.path, "error", err)
	}
}
