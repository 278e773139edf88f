// Package session persists the authenticated user identity between runs.
// There is no authentication flow here: the identity is supplied by the
// embedding shell (or the login command) and only gates remote mirroring.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/shiftledger/internal/ports/secondary"
)

// Session is the on-disk session shape.
type Session struct {
	UserID string `json:"user_id"`
}

// FileSession implements secondary.SessionProvider with a JSON file in the
// data directory.
type FileSession struct {
	dir string
}

// New creates a file-backed session store rooted at dir.
func New(dir string) *FileSession {
	return &FileSession{dir: dir}
}

func (s *FileSession) path() string {
	return filepath.Join(s.dir, "session.json")
}

// CurrentUserID returns the signed-in user id, or "" for a guest.
func (s *FileSession) CurrentUserID(ctx context.Context) (string, error) {
	data, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return "", fmt.Errorf("failed to parse session: %w", err)
	}
	return sess.UserID, nil
}

// SignIn records the user identity.
func (s *FileSession) SignIn(userID string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(Session{UserID: userID}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(s.path(), data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// SignOut clears the stored identity. Missing sessions are not an error.
func (s *FileSession) SignOut() error {
	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

// Ensure FileSession implements the interface
var _ secondary.SessionProvider = (*FileSession)(nil)
