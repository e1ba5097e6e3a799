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

// Package checkpoint persists crawl progress so an interrupted sweep can
// resume without repeating completed segments.
//
// The checkpoint is a single JSON file replaced atomically after every
// completed segment. A missing file means a fresh start; an unreadable
// or unparseable file is surfaced as ErrCorrupt and never silently
// treated as "no progress".
package checkpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SchemaVersion is the current checkpoint schema version. Files with a
// different version are treated as corrupt rather than guessed at.
const SchemaVersion = 1

// ErrCorrupt indicates an unreadable or unparseable checkpoint file.
var ErrCorrupt = errors.New("corrupt checkpoint")

// Checkpoint records sweep progress for one dictionary target.
type Checkpoint struct {
	SchemaVersion int       `json:"schema_version"`
	LastSegment   string    `json:"last_segment"`
	Completed     []string  `json:"completed"`
	TotalWords    int       `json:"total_words"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsCompleted reports whether segment has already been completed.
func (c *Checkpoint) IsCompleted(segment string) bool {
	for _, s := range c.Completed {
		if s == segment {
			return true
		}
	}
	return false
}

// MarkCompleted records segment as completed with its word count.
func (c *Checkpoint) MarkCompleted(segment string, words int) {
	if c.IsCompleted(segment) {
		return
	}
	c.Completed = append(c.Completed, segment)
	c.LastSegment = segment
	c.TotalWords += words
	c.UpdatedAt = time.Now().UTC()
}

// Store persists checkpoints at a fixed path.
type Store struct {
	path string
}

// NewStore returns a Store writing to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the checkpoint. A missing file returns a fresh checkpoint;
// any other failure returns ErrCorrupt.
func (s *Store) Load() (*Checkpoint, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Checkpoint{SchemaVersion: SchemaVersion}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", ErrCorrupt, s.path, err)
	}

	var c Checkpoint
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrCorrupt, s.path, err)
	}
	if c.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("%w: schema version %d, want %d", ErrCorrupt, c.SchemaVersion, SchemaVersion)
	}
	return &c, nil
}

// Save writes the checkpoint atomically: the record is marshaled to a
// temporary file in the same directory and renamed over the previous
// one, so a crash never leaves a partially written checkpoint.
func (s *Store) Save(c *Checkpoint) error {
	c.SchemaVersion = SchemaVersion

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling checkpoint: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating checkpoint directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".checkpoint-*")
	if err != nil {
		return fmt.Errorf("creating checkpoint: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing checkpoint: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("syncing checkpoint: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing checkpoint: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing checkpoint: %w", err)
	}
	return nil
}

// Clear deletes the checkpoint file to restart from scratch.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing checkpoint: %w", err)
	}
	return nil
}
