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

import "sort"

// Alphabet is the Thai base alphabet in Royal Institute dictionary
// order. A symbol's index in this sequence is its collation rank. The
// sequence holds the 44 consonants with the vowels ฤ and ฦ interleaved
// after ร and ล, matching the printed Royal Institute dictionary.
var Alphabet = []rune{
	'ก', 'ข', 'ฃ', 'ค', 'ฅ', 'ฆ', 'ง',
	'จ', 'ฉ', 'ช', 'ซ', 'ฌ', 'ญ',
	'ฎ', 'ฏ', 'ฐ', 'ฑ', 'ฒ', 'ณ',
	'ด', 'ต', 'ถ', 'ท', 'ธ', 'น',
	'บ', 'ป', 'ผ', 'ฝ', 'พ', 'ฟ', 'ภ', 'ม',
	'ย', 'ร', 'ฤ', 'ล', 'ฦ', 'ว',
	'ศ', 'ษ', 'ส', 'ห', 'ฬ', 'อ', 'ฮ',
}

// Fallback offsets for characters outside the base alphabet. Both
// offsets exceed every alphabet rank, so base letters always take
// precedence at the same position; non-Thai characters sort after Thai
// marks.
const (
	thaiFallback    = 0x1000
	nonThaiFallback = 0x200000
)

var alphabetRank = func() map[rune]int32 {
	m := make(map[rune]int32, len(Alphabet))
	for i, r := range Alphabet {
		m[r] = int32(i)
	}
	return m
}()

// Key derives the collation key for word. Keys compare lexicographically
// with the standard prefix rule and produce Royal Institute dictionary
// order rather than raw code point order.
func Key(word string) []int32 {
	key := make([]int32, 0, len(word)/3)
	for _, r := range word {
		if rank, ok := alphabetRank[r]; ok {
			key = append(key, rank)
			continue
		}
		if IsThai(r) {
			key = append(key, thaiFallback+int32(r))
			continue
		}
		key = append(key, nonThaiFallback+int32(r))
	}
	return key
}

// Compare returns -1, 0, or 1 comparing a and b in Royal Institute
// dictionary order.
func Compare(a, b string) int {
	return compareKeys(Key(a), Key(b))
}

func compareKeys(ka, kb []int32) int {
	n := len(ka)
	if len(kb) < n {
		n = len(kb)
	}
	for i := 0; i < n; i++ {
		switch {
		case ka[i] < kb[i]:
			return -1
		case ka[i] > kb[i]:
			return 1
		}
	}
	// A strict prefix ranks first.
	switch {
	case len(ka) < len(kb):
		return -1
	case len(ka) > len(kb):
		return 1
	}
	return 0
}

// SortWords sorts words in place in Royal Institute dictionary order.
// Collation keys are computed once per word for the duration of the
// sort.
func SortWords(words []string) {
	keys := make(map[string][]int32, len(words))
	keyOf := func(w string) []int32 {
		k, ok := keys[w]
		if !ok {
			k = Key(w)
			keys[w] = k
		}
		return k
	}
	sort.SliceStable(words, func(i, j int) bool {
		return compareKeys(keyOf(words[i]), keyOf(words[j])) < 0
	})
}

// Sorted returns a sorted copy of words in Royal Institute dictionary
// order, leaving the input unmodified.
func Sorted(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	SortWords(out)
	return out
}
