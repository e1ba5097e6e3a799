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

package diff

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

// displayLimit caps the inline word listing in a report section; the
// remainder folds into a details block.
const displayLimit = 50

// ReportOptions configure WriteReport.
type ReportOptions struct {
	// OldName and NewName describe the compared sources.
	OldName string
	NewName string

	// FailedSegments lists alphabet segments whose retrieval failed
	// during the sweep that produced the new set.
	FailedSegments []string

	// Now overrides the report timestamp (for testing).
	Now time.Time
}

// WriteReport renders the Markdown audit report for a comparison.
func WriteReport(w io.Writer, r *Result, options *ReportOptions) error {
	if options == nil {
		options = &ReportOptions{}
	}
	oldName := options.OldName
	if oldName == "" {
		oldName = "previous dictionary"
	}
	newName := options.NewName
	if newName == "" {
		newName = "retrieved dictionary"
	}
	now := options.Now
	if now.IsZero() {
		now = time.Now()
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# ORST Dictionary Synchronization Audit Report\n\n")
	fmt.Fprintf(bw, "**Generated:** %s\n\n---\n\n", now.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(bw, "## Summary\n\n")
	fmt.Fprintf(bw, "| Metric | Count |\n|--------|-------|\n")
	fmt.Fprintf(bw, "| Old dictionary | %d words |\n", r.OldCount)
	fmt.Fprintf(bw, "| New dictionary | %d words |\n", r.NewCount)
	fmt.Fprintf(bw, "| Added words | %d |\n", len(r.Added))
	fmt.Fprintf(bw, "| Ghost words | %d |\n", len(r.Removed))
	fmt.Fprintf(bw, "| Unchanged words | %d |\n", r.Unchanged)
	fmt.Fprintf(bw, "| Net change | %+d |\n\n", r.NetChange())

	if r.OldCount > 0 {
		fmt.Fprintf(bw, "**Change rate:** %+.1f%%\n\n", r.PercentChange())
	}

	if len(options.FailedSegments) > 0 {
		fmt.Fprintf(bw, "> [!CAUTION]\n> Retrieval failed for %d segment(s): %v.\n"+
			"> Ghost words may be artifacts of the failed segments rather than real removals.\n\n",
			len(options.FailedSegments), options.FailedSegments)
	}

	fmt.Fprintf(bw, "---\n\n## Added Words\n\n")
	writeWordSection(bw, r.Added, fmt.Sprintf(
		"The following words are present in %s but were not in %s.", newName, oldName),
		"*No words were added.*")

	fmt.Fprintf(bw, "---\n\n## Ghost Words (Removed)\n\n")
	if len(r.Removed) > 0 {
		fmt.Fprintf(bw, "> [!WARNING]\n> The following words exist in %s but are NOT in %s.\n"+
			"> They require manual review; nothing is removed automatically.\n\n", oldName, newName)
	}
	writeWordSection(bw, r.Removed, "", "*No ghost words found.*")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing audit report: %w", err)
	}
	return nil
}

func writeWordSection(w io.Writer, words []string, intro, empty string) {
	if len(words) == 0 {
		fmt.Fprintf(w, "%s\n\n", empty)
		return
	}
	if intro != "" {
		fmt.Fprintf(w, "%s\n\n", intro)
	}

	shown := words
	if len(shown) > displayLimit {
		shown = shown[:displayLimit]
	}
	for _, word := range shown {
		fmt.Fprintf(w, "- %s\n", word)
	}

	if rest := words[len(shown):]; len(rest) > 0 {
		fmt.Fprintf(w, "\n<details>\n<summary>Show all %d words</summary>\n\n", len(words))
		for _, word := range rest {
			fmt.Fprintf(w, "- %s\n", word)
		}
		fmt.Fprintf(w, "\n</details>\n")
	}
	fmt.Fprintf(w, "\n")
}

// WriteWordList writes words one per line for downstream tooling.
func WriteWordList(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(word + "\n"); err != nil {
			return fmt.Errorf("writing word list: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing word list: %w", err)
	}
	return nil
}
