// Package snapshot persists collected ecosystem data as JSON documents in a
// flat data directory. Every write is a full overwrite of the named document.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Snapshot document names shared by the collector and the reporter.
const (
	UserInfoFile      = "user_info.json"
	EnterprisesFile   = "enterprises.json"
	OrganizationsFile = "organizations.json"
	RepositoriesFile  = "repositories.json"
	FollowersFile     = "followers.json"
	FollowingFile     = "following.json"
	StarredReposFile  = "starred_repos.json"
	GistsFile         = "gists.json"
	SummaryFile       = "summary.json"
)

// Store reads and writes snapshot documents under a single directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created lazily on
// the first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the snapshot directory.
func (s *Store) Dir() string {
	return s.dir
}

// Write serializes v as indented JSON to the named document, replacing any
// previous content.
func (s *Store) Write(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling snapshot %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", name, err)
	}
	return nil
}

// Read deserializes the named document into v. It reports false with a nil
// error when the document does not exist, so callers can treat absent
// optional snapshots as empty collections.
func (s *Store) Read(name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading snapshot %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decoding snapshot %s: %w", name, err)
	}
	return true, nil
}
