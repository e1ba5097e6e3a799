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

package checkpoint

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestStore_LoadFresh checks that a missing file means a fresh start.
func TestStore_LoadFresh(t *testing.T) {
	t.Parallel()

	s := NewStore(filepath.Join(t.TempDir(), "checkpoint.json"))
	c, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Completed) != 0 || c.TotalWords != 0 {
		t.Errorf("fresh checkpoint not empty: %+v", c)
	}
}

// TestStore_SaveLoad round-trips a checkpoint.
func TestStore_SaveLoad(t *testing.T) {
	t.Parallel()

	s := NewStore(filepath.Join(t.TempDir(), "checkpoint.json"))

	c := &Checkpoint{}
	c.MarkCompleted("ก", 120)
	c.MarkCompleted("ข", 45)

	if err := s.Save(c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if diff := cmp.Diff(c, got); diff != "" {
		t.Errorf("Load (-want, +got):\n%s", diff)
	}
	if !got.IsCompleted("ก") || got.IsCompleted("ค") {
		t.Errorf("IsCompleted wrong: %+v", got)
	}
	if got.LastSegment != "ข" || got.TotalWords != 165 {
		t.Errorf("running totals wrong: %+v", got)
	}
}

// TestStore_LoadCorrupt checks that unparseable files surface ErrCorrupt
// instead of being treated as no progress.
func TestStore_LoadCorrupt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not json",
			content: "{{{",
		},
		{
			name:    "wrong schema version",
			content: `{"schema_version": 99}`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "checkpoint.json")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			_, err := NewStore(path).Load()
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("Load: got %v, want %v", err, ErrCorrupt)
			}
		})
	}
}

// TestStore_Clear tests restart-from-scratch.
func TestStore_Clear(t *testing.T) {
	t.Parallel()

	s := NewStore(filepath.Join(t.TempDir(), "checkpoint.json"))
	c := &Checkpoint{}
	c.MarkCompleted("ก", 1)
	if err := s.Save(c); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load after Clear: %v", err)
	}
	if len(got.Completed) != 0 {
		t.Errorf("checkpoint not cleared: %+v", got)
	}

	// Clearing a missing checkpoint is not an error.
	if err := s.Clear(); err != nil {
		t.Errorf("Clear twice: %v", err)
	}
}

// TestCheckpoint_MarkCompletedIdempotent checks repeated completion does
// not double-count.
func TestCheckpoint_MarkCompletedIdempotent(t *testing.T) {
	t.Parallel()

	c := &Checkpoint{}
	c.MarkCompleted("ก", 10)
	c.MarkCompleted("ก", 10)

	if c.TotalWords != 10 || len(c.Completed) != 1 {
		t.Errorf("duplicate completion counted: %+v", c)
	}
}
