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

// Package diff compares two dictionary word sets and renders the audit
// report for operator review.
//
// Words present in the old artifact but absent from a fresh retrieval
// are "ghost words". They are reported for manual review and never
// removed automatically; whether a ghost is a scraper defect, a retired
// entry, or a word worth preserving is an editorial decision.
package diff

import "github.com/syafiqhadzir/orstsync/thai"

// Result is the outcome of comparing an old and a new word set. Added
// and Removed are sorted in Royal Institute collation order, so a given
// pair of input sets always renders identically.
type Result struct {
	// Added lists words present in new but not in old.
	Added []string

	// Removed lists ghost words: present in old but not in new.
	Removed []string

	// Unchanged counts words present in both.
	Unchanged int

	// OldCount and NewCount are the input set sizes.
	OldCount int
	NewCount int
}

// HasChanges reports whether the sets differ.
func (r *Result) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0
}

// NetChange is the signed size difference between the sets.
func (r *Result) NetChange() int {
	return r.NewCount - r.OldCount
}

// PercentChange is the relative size change against the old set, or 0
// when the old set is empty.
func (r *Result) PercentChange() float64 {
	if r.OldCount == 0 {
		return 0
	}
	return float64(r.NewCount-r.OldCount) / float64(r.OldCount) * 100
}

// Compare computes the set difference between old and new word lists.
// Duplicates in either input collapse before comparison. Compare is a
// pure function of its inputs.
func Compare(old, updated []string) *Result {
	oldSet := make(map[string]struct{}, len(old))
	for _, w := range old {
		oldSet[w] = struct{}{}
	}
	newSet := make(map[string]struct{}, len(updated))
	for _, w := range updated {
		newSet[w] = struct{}{}
	}

	result := &Result{
		OldCount: len(oldSet),
		NewCount: len(newSet),
	}

	for w := range newSet {
		if _, ok := oldSet[w]; !ok {
			result.Added = append(result.Added, w)
		}
	}
	for w := range oldSet {
		if _, ok := newSet[w]; ok {
			result.Unchanged++
		} else {
			result.Removed = append(result.Removed, w)
		}
	}

	thai.SortWords(result.Added)
	thai.SortWords(result.Removed)
	return result
}
