// Package keystore persists the model API key as a 0600 file under the
// user's daylens directory. It is the credential collaborator: failures are
// reported as booleans or absence, never propagated as errors.
package keystore

import (
	"os"
	"path/filepath"
	"strings"
)

const keyFileName = "api_key"

// Store reads and writes the API key below a base directory.
type Store struct {
	dir string
}

// New returns a Store rooted at ~/.daylens. The fallback when the home
// directory cannot be resolved is the current directory.
func New() *Store {
	home, err := os.UserHomeDir()
	if err != nil {
		return &Store{dir: ".daylens"}
	}
	return &Store{dir: filepath.Join(home, ".daylens")}
}

// NewAt returns a Store rooted at an explicit directory.
func NewAt(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the key. Returns false on any failure.
func (s *Store) Save(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return false
	}
	path := filepath.Join(s.dir, keyFileName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(key+"\n"), 0o600); err != nil {
		return false
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return false
	}
	return true
}

// Load returns the stored key. The second return value is false when no
// key is stored or the file cannot be read.
func (s *Store) Load() (string, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, keyFileName))
	if err != nil {
		return "", false
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", false
	}
	return key, true
}

// Clear removes the stored key. Removal of an absent key is a no-op.
func (s *Store) Clear() {
	os.Remove(filepath.Join(s.dir, keyFileName))
}
