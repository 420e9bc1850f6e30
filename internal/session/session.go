// Package session persists the CLI client's bearer token between
// invocations so the user does not have to log in before every command.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSession is returned by Load when no token has been saved yet.
var ErrNoSession = errors.New("no saved session")

// Store reads and writes the bearer token at a fixed file path.
type Store struct {
	path string
}

// NewStore constructs a Store persisting to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes token to the session file, creating parent directories as
// needed. The file is readable by the owner only.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Load returns the saved token. Returns ErrNoSession if the session file
// does not exist or is empty.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("read session file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoSession
	}
	return token, nil
}

// Clear removes the session file. Removing a file that does not exist is
// not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
