package session

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// Session holds the admin access token and persists it across restarts in a
// plain token file. A non-empty stored token means "authenticated"; validity
// is only discovered lazily, on the first rejected request.
type Session struct {
	path  string
	token string
}

func New(path string) *Session {
	return &Session{path: path}
}

// Load reads the token back from disk. A missing file is not an error, it
// just means logged out.
func (s *Session) Load() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.token = ""
			return nil
		}
		return err
	}
	s.token = strings.TrimSpace(string(b))
	return nil
}

// Save stores the token durably and flips state to authenticated.
func (s *Session) Save(token string) error {
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return err
	}
	s.token = token
	return nil
}

// Clear drops the token regardless of prior validity.
func (s *Session) Clear() error {
	s.token = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Session) Token() string { return s.token }

func (s *Session) IsAuthenticated() bool { return s.token != "" }
