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

package thai_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/syafiqhadzir/orstsync/thai"
)

// TestNormalizer_Normalize tests Normalizer.Normalize.
func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		options *thai.NormalizerOptions

		expected string
		err      error
	}{
		{
			name:     "simple word",
			raw:      "กระดาษ",
			expected: "กระดาษ",
		},
		{
			name:     "leading vowel word",
			raw:      "เก้าอี้",
			expected: "เก้าอี้",
		},
		{
			name:     "surrounding whitespace trimmed",
			raw:      "  ก่อน\t",
			expected: "ก่อน",
		},
		{
			name:     "internal whitespace folded",
			raw:      "กรุง  เทพ",
			expected: "กรุง เทพ",
		},
		{
			name: "combining marks reordered canonically",
			// Tone mark (ccc 107) written before Sara U (ccc 103); NFC
			// reorders the pair so both spellings collapse to one form.
			raw:      "กุ้",
			expected: "กุ้",
		},
		{
			name: "empty",
			raw:  "",
			err:  thai.ErrEmpty,
		},
		{
			name: "whitespace only",
			raw:  "   ",
			err:  thai.ErrWhitespaceOnly,
		},
		{
			name: "latin rejected",
			raw:  "กกa",
			err:  thai.ErrOutOfScript,
		},
		{
			name: "cjk rejected",
			raw:  "中",
			err:  thai.ErrOutOfScript,
		},
		{
			name:    "compound rejected when disallowed",
			raw:     "ก ข",
			options: &thai.NormalizerOptions{AllowCompound: false},
			err:     thai.ErrOutOfScript,
		},
		{
			name:     "thai digits accepted",
			raw:      "๒๔๗๕",
			expected: "๒๔๗๕",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			n := thai.NewNormalizer(tc.options)
			got, err := n.Normalize(tc.raw)
			if !errors.Is(err, tc.err) {
				t.Fatalf("Normalize(%q): unexpected error: got %v, want %v", tc.raw, err, tc.err)
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("Normalize(%q) (-want, +got):\n%s", tc.raw, diff)
			}
		})
	}
}

// TestNormalizer_Idempotent checks that normalization is idempotent for
// accepted input.
func TestNormalizer_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"กระดาษ",
		" กรุง  เทพ ",
		"นํา",
		"เถ้าแก่",
	}

	n := thai.NewNormalizer(nil)
	for _, raw := range inputs {
		once, err := n.Normalize(raw)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", raw, err)
		}
		twice, err := n.Normalize(once)
		if err != nil {
			t.Fatalf("Normalize(Normalize(%q)): %v", raw, err)
		}
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}

// TestDedupe tests Dedupe.
func TestDedupe(t *testing.T) {
	t.Parallel()

	got := thai.Dedupe([]string{"กา", "ขา", "กา", "คา", "ขา"})
	expected := []string{"กา", "ขา", "คา"}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Dedupe (-want, +got):\n%s", diff)
	}
}

// TestIsCompound tests IsCompound.
func TestIsCompound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word     string
		expected bool
	}{
		{"กา", false},
		{"ก ข", true},
		{"ก-ข", true},
		{"ก–ข", true},
	}

	for _, tc := range tests {
		tc := tc
		if got := thai.IsCompound(tc.word); got != tc.expected {
			t.Errorf("IsCompound(%q): got %v, want %v", tc.word, got, tc.expected)
		}
	}
}
