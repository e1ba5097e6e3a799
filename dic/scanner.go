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

package dic

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const bom = "\uFEFF"

// Scanner scans a .dic file from start to end, yielding one headword per
// Scan. The count header and comment lines are consumed transparently;
// affix flags after a slash are stripped.
type Scanner struct {
	s *bufio.Scanner

	line  int
	word  string
	count int64
}

// NewScanner returns a new Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		s:     bufio.NewScanner(bufio.NewReader(r)),
		count: -1,
	}
}

// Scan advances to the next headword. It returns false when the input is
// exhausted or an error occurs.
func (s *Scanner) Scan() bool {
	for s.s.Scan() {
		s.line++
		line := s.s.Text()
		if s.line == 1 {
			line = strings.TrimPrefix(line, bom)
		}
		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		// The first non-empty line may be a count header, either a bare
		// decimal or the `# N` comment form.
		if s.count < 0 && s.word == "" {
			header := strings.TrimSpace(strings.TrimPrefix(line, "#"))
			if n, err := strconv.ParseInt(header, 10, 64); err == nil {
				s.count = n
				continue
			}
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		// Affix flags follow the headword after a slash.
		if i := strings.IndexByte(line, '/'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}

		s.word = line
		return true
	}
	return false
}

// Word returns the headword at the current position.
func (s *Scanner) Word() string {
	return s.word
}

// Count returns the declared word count from the header, or -1 when the
// file carries no header.
func (s *Scanner) Count() int64 {
	return s.count
}

// Err returns the first error encountered while scanning.
func (s *Scanner) Err() error {
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("scanning dictionary: %w", err)
	}
	return nil
}
