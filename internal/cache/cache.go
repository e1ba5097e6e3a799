// Copyright 2026 Syafiq Hadzir
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cache implements a content-addressed, write-once on-disk cache
// for remote query responses.
//
// Entries are keyed by a BLAKE3 fingerprint of the normalized query
// parameters, so identical queries always map to the same entry and a
// resumed run reproduces earlier retrieval results without re-issuing
// requests. Entries carry no expiry; staleness is managed by the
// operator clearing the cache.
package cache

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
)

// ErrMiss indicates that no entry exists for a fingerprint.
var ErrMiss = errors.New("cache miss")

// Fingerprint returns the deterministic key for a query against one
// alphabet segment and page.
func Fingerprint(segment string, page int) string {
	h := blake3.Sum256([]byte(fmt.Sprintf("segment=%s&page=%d", segment, page)))
	return hex.EncodeToString(h[:])
}

// Store is an on-disk response cache rooted at a directory. Entries are
// sharded by the first two characters of the fingerprint.
type Store struct {
	root string
}

// NewStore returns a Store rooted at dir, creating it if necessary.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	return &Store{root: dir}, nil
}

func (s *Store) path(fingerprint string) string {
	return filepath.Join(s.root, fingerprint[:2], fingerprint+".json")
}

// Get returns the cached response body for fingerprint, or ErrMiss.
func (s *Store) Get(fingerprint string) ([]byte, error) {
	data, err := os.ReadFile(s.path(fingerprint))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("reading cache entry: %w", err)
	}
	return data, nil
}

// Put stores the response body under fingerprint. Entries are write-once:
// the body is written to a temporary file and linked into place only if
// no entry exists yet. When two processes race, the loser re-reads the
// winner's entry instead of failing.
func (s *Store) Put(fingerprint string, body []byte) error {
	path := s.path(fingerprint)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating cache shard: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".entry-*")
	if err != nil {
		return fmt.Errorf("creating cache entry: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing cache entry: %w", err)
	}

	// Link rather than rename so an existing entry is never replaced.
	if err := os.Link(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("storing cache entry: %w", err)
	}
	os.Remove(tmpPath)
	return nil
}

// Clear removes every cache entry. Used by operator tooling to
// invalidate stale responses.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return fmt.Errorf("reading cache directory: %w", err)
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(s.root, e.Name())); err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}
	}
	return nil
}
