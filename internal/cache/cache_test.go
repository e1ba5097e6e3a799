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

package cache

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestFingerprint_Deterministic checks that identical queries hash
// identically and distinct queries do not collide.
func TestFingerprint_Deterministic(t *testing.T) {
	t.Parallel()

	a := Fingerprint("ก", 1)
	b := Fingerprint("ก", 1)
	if a != b {
		t.Errorf("identical queries produced different fingerprints: %s != %s", a, b)
	}

	if Fingerprint("ก", 2) == a {
		t.Error("page change did not change the fingerprint")
	}
	if Fingerprint("ข", 1) == a {
		t.Error("segment change did not change the fingerprint")
	}
}

// TestStore_GetPut tests the miss/put/hit cycle.
func TestStore_GetPut(t *testing.T) {
	t.Parallel()

	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	fp := Fingerprint("ก", 1)

	if _, err := s.Get(fp); !errors.Is(err, ErrMiss) {
		t.Fatalf("Get before Put: got %v, want %v", err, ErrMiss)
	}

	body := []byte(`[2,["กา","ก่า"]]`)
	if err := s.Put(fp, body); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(fp)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if diff := cmp.Diff(string(body), string(got)); diff != "" {
		t.Errorf("Get (-want, +got):\n%s", diff)
	}
}

// TestStore_WriteOnce checks that a second Put for the same fingerprint
// does not replace the first entry.
func TestStore_WriteOnce(t *testing.T) {
	t.Parallel()

	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	fp := Fingerprint("ข", 1)
	first := []byte("first")

	if err := s.Put(fp, first); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(fp, []byte("second")); err != nil {
		t.Fatalf("second Put: %v", err)
	}

	got, err := s.Get(fp)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(first) {
		t.Errorf("entry was replaced: got %q, want %q", got, first)
	}
}

// TestStore_Clear tests operator cache invalidation.
func TestStore_Clear(t *testing.T) {
	t.Parallel()

	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	fp := Fingerprint("ค", 1)
	if err := s.Put(fp, []byte("x")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := s.Get(fp); !errors.Is(err, ErrMiss) {
		t.Errorf("Get after Clear: got %v, want %v", err, ErrMiss)
	}
}
