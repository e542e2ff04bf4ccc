// Package session persists the admin login state between CLI invocations,
// the way the web console keeps its token and user profile in local storage.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"igsaa-nomination/config"
	"igsaa-nomination/models"
)

// ErrNotLoggedIn is returned when no session file exists.
var ErrNotLoggedIn = errors.New("not logged in")

// Session is the persisted login state: the bearer token and the profile
// returned at login. Serialization happens only at session start and end.
type Session struct {
	Token string           `json:"token"`
	User  models.AdminUser `json:"user"`
}

// Load reads the session file written by a previous login.
func Load() (*Session, error) {
	data, err := os.ReadFile(config.SessionFile())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the session file, creating its directory if needed. The file
// is user-readable only since it holds the bearer token.
func (s *Session) Save() error {
	path := config.SessionFile()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Clear removes the session file. Missing file is not an error.
func Clear() error {
	err := os.Remove(config.SessionFile())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Expired decodes the token claims without verifying the signature — the
// server is the authority, this only avoids doomed requests — and reports
// whether the expiry has passed.
func (s *Session) Expired() bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(time.Now())
}

// HasRole reports whether the logged-in user holds any of the given roles.
func (s *Session) HasRole(roles ...string) bool {
	for _, role := range roles {
		if s.User.Role == role {
			return true
		}
	}
	return false
}
