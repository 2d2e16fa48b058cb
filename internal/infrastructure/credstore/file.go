// Package credstore provides the durable credential stores backing the
// session: a JSON file for the default single-machine setup and Redis when
// the gateway runs where local disk is not durable.
//
// Both backends share one contract: exactly one token/user pair, written
// together, cleared together, and self-healing on corruption. A pair that
// does not decode is wiped and reported as absent, never as an error.
package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/localspot/directory-gateway/internal/core/domain"
)

// FileStore persists the credential pair as a single JSON document. Writes go
// through a temp file and rename so no reader ever observes a partial pair.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at path. The parent directory is created
// on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultCredentialsPath returns the conventional location under the user's
// config directory.
func DefaultCredentialsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "directory-gateway", "credentials.json"), nil
}

func (f *FileStore) Load(_ context.Context) (*domain.Credentials, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var creds domain.Credentials
	if err := json.Unmarshal(raw, &creds); err != nil || !creds.Complete() {
		// Corrupted or half-written pair: wipe it and start anonymous.
		_ = os.Remove(f.path)
		return nil, nil
	}
	return &creds, nil
}

func (f *FileStore) Save(_ context.Context, token string, user *domain.User) error {
	raw, err := json.Marshal(domain.Credentials{Token: token, User: user})
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return fmt.Errorf("create temp credentials: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod credentials: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close credentials: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("commit credentials: %w", err)
	}
	return nil
}

func (f *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}
