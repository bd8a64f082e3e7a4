package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/dherbrich/oandash/internal/common"
	"github.com/dherbrich/oandash/internal/filex"
)

type JSONFileRepository struct {
	path string
}

func NewJSONFileRepository(path string) *JSONFileRepository {
	return &JSONFileRepository{path: path}
}

// Path returns the store file location.
func (r *JSONFileRepository) Path() string {
	return r.path
}

// Lookup returns the encrypted API key stored for username, or "" when the
// file is missing, unreadable or malformed, or has no such user or field.
// Callers treat "" as "no credential found".
func Lookup(username, path string) string {
	apikey, err := NewJSONFileRepository(path).Get(context.Background(), username)
	if err != nil {
		return ""
	}
	return apikey
}

// Get returns the encrypted blob for username. Anything short of a
// non-empty string apikey field yields common.ErrCredentialNotFound,
// wrapped with the cause.
func (r *JSONFileRepository) Get(ctx context.Context, username string) (string, error) {
	users, err := r.load()
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrCredentialNotFound, err)
	}

	entry, ok := users[username]
	if !ok {
		return "", fmt.Errorf("%w: no entry for %q", common.ErrCredentialNotFound, username)
	}
	apikey, ok := entry[APIKeyField].(string)
	if !ok || apikey == "" {
		return "", fmt.Errorf("%w: no %s field for %q", common.ErrCredentialNotFound, APIKeyField, username)
	}
	return apikey, nil
}

// Set stores encrypted under username, creating the file (0600) and its
// directory (0700) when needed. Other users and other fields of the same
// entry are preserved.
func (r *JSONFileRepository) Set(ctx context.Context, username, encrypted string) error {
	users, err := r.load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read store %s: %w", r.path, err)
	}
	if users == nil {
		users = make(map[string]map[string]any)
	}

	entry := users[username]
	if entry == nil {
		entry = make(map[string]any)
	}
	entry[APIKeyField] = encrypted
	users[username] = entry

	return r.save(users)
}

// Delete removes username from the store. A missing user is reported as
// common.ErrCredentialNotFound.
func (r *JSONFileRepository) Delete(ctx context.Context, username string) error {
	users, err := r.load()
	if err != nil {
		return fmt.Errorf("failed to read store %s: %w", r.path, err)
	}
	if _, ok := users[username]; !ok {
		return fmt.Errorf("%w: no entry for %q", common.ErrCredentialNotFound, username)
	}
	delete(users, username)
	return r.save(users)
}

// List returns the stored usernames in sorted order. A missing file is an
// empty store.
func (r *JSONFileRepository) List(ctx context.Context) ([]string, error) {
	users, err := r.load()
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store %s: %w", r.path, err)
	}

	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r *JSONFileRepository) load() (map[string]map[string]any, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}
	var users map[string]map[string]any
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.path, err)
	}
	return users, nil
}

// save writes through a temp file in the same directory and renames it over
// the store so a crash never leaves a truncated file.
func (r *JSONFileRepository) save(users map[string]map[string]any) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	return filex.WriteFileAtomic(r.path, data, 0o600)
}
