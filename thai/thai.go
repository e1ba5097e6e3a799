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

package thai

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Rejection reasons returned by Normalize.
var (
	// ErrEmpty indicates an empty input.
	ErrEmpty = errors.New("empty headword")

	// ErrWhitespaceOnly indicates an input consisting only of whitespace.
	ErrWhitespaceOnly = errors.New("whitespace-only headword")

	// ErrOutOfScript indicates a code point outside the accepted script
	// ranges and punctuation set.
	ErrOutOfScript = errors.New("character outside Thai script")
)

// Range is an inclusive range of Unicode code points.
type Range struct {
	Lo rune
	Hi rune
}

// Contains reports whether r falls within the range.
func (rg Range) Contains(r rune) bool {
	return r >= rg.Lo && r <= rg.Hi
}

// Default code point ranges for the Thai script. The reference material
// splits the Thai block into consonants, vowels, tone marks, signs and
// digits; U+0E3F (Baht) and U+0E4E (Yamakkan) fall outside headwords in
// practice but remain accepted as part of the sign range.
var (
	Consonants = Range{0x0E01, 0x0E2E} // ก..ฮ
	Vowels     = Range{0x0E30, 0x0E3A} // ะ..พินทุ
	LeadVowels = Range{0x0E40, 0x0E47} // เ..ไม้ไต่คู้
	ToneMarks  = Range{0x0E48, 0x0E4B} // ไม้เอก..ไม้จัตวา
	Signs      = Range{0x0E4C, 0x0E4F} // การันต์..ฟองมัน
	Digits     = Range{0x0E50, 0x0E59} // ๐..๙
)

// DefaultRanges is the default script allow-list.
var DefaultRanges = []Range{Consonants, Vowels, LeadVowels, ToneMarks, Signs, Digits}

// punctuation accepted inside compound headwords.
const punctuation = " -–" // space, hyphen, en dash

// Normalizer canonicalizes raw headword text and rejects entries that
// fall outside the accepted script. The zero value is not usable; use
// NewNormalizer.
type Normalizer struct {
	ranges        []Range
	allowCompound bool
}

// NormalizerOptions configure a Normalizer.
type NormalizerOptions struct {
	// Ranges is the script allow-list. Defaults to DefaultRanges when nil.
	Ranges []Range

	// AllowCompound permits multi-word entries containing spaces or
	// hyphens. When false such entries are rejected as out of script.
	AllowCompound bool
}

// DefaultNormalizerOptions accept compound words and the default ranges.
var DefaultNormalizerOptions = &NormalizerOptions{
	AllowCompound: true,
}

// NewNormalizer returns a Normalizer with the given options.
func NewNormalizer(options *NormalizerOptions) *Normalizer {
	if options == nil {
		options = DefaultNormalizerOptions
	}
	ranges := options.Ranges
	if ranges == nil {
		ranges = DefaultRanges
	}
	return &Normalizer{
		ranges:        ranges,
		allowCompound: options.AllowCompound,
	}
}

// Normalize canonicalizes raw into a valid headword. It applies NFC
// composition, trims surrounding whitespace, folds internal whitespace
// spans to a single space, and validates every remaining code point
// against the script allow-list. Normalize is idempotent for accepted
// input: Normalize(Normalize(x)) == Normalize(x).
func (n *Normalizer) Normalize(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmpty
	}

	t := transform.Chain(norm.NFC, &whitespaceFolder{})
	word, _, err := transform.String(t, raw)
	if err != nil {
		return "", fmt.Errorf("normalizing %q: %w", raw, err)
	}

	if word == "" {
		return "", ErrWhitespaceOnly
	}

	for _, r := range word {
		if !n.accepts(r) {
			return "", fmt.Errorf("%w: %q", ErrOutOfScript, r)
		}
	}

	return word, nil
}

func (n *Normalizer) accepts(r rune) bool {
	for _, rg := range n.ranges {
		if rg.Contains(r) {
			return true
		}
	}
	if n.allowCompound && strings.ContainsRune(punctuation, r) {
		return true
	}
	return false
}

// IsThai reports whether r lies within the default Thai script ranges.
func IsThai(r rune) bool {
	for _, rg := range DefaultRanges {
		if rg.Contains(r) {
			return true
		}
	}
	return false
}

// IsCompound reports whether word is a compound entry containing spaces
// or hyphens.
func IsCompound(word string) bool {
	return strings.ContainsAny(word, " -–")
}

// Dedupe removes duplicate words preserving first-occurrence order.
func Dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	var out []string
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
