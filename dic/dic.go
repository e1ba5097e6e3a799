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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/syafiqhadzir/orstsync/thai"
)

// Format violations reported by ValidateFormat.
var (
	// ErrEmptyWordList indicates an attempt to write a dictionary with
	// no words.
	ErrEmptyWordList = errors.New("empty word list")

	// ErrMissingHeader indicates a file whose first line is not a word
	// count.
	ErrMissingHeader = errors.New("missing count header")

	// ErrCountMismatch indicates a header count that disagrees with the
	// number of body lines.
	ErrCountMismatch = errors.New("count header mismatch")
)

// WriteOptions configure Write.
type WriteOptions struct {
	// Backup copies an existing file at the target path to a
	// timestamp-suffixed sibling before it is replaced.
	Backup bool

	// Sort sorts the words in Royal Institute order before writing.
	// Callers that have already sorted may disable it.
	Sort bool
}

// DefaultWriteOptions back up the previous artifact and sort.
var DefaultWriteOptions = &WriteOptions{
	Backup: true,
	Sort:   true,
}

// Write writes words to path as a .dic file. The replacement of path is
// atomic: the content is written to a temporary file in the same
// directory and renamed into place, so a failure mid-write leaves any
// existing file untouched. When options.Backup is set and a file already
// exists at path, it is copied to a timestamped sibling and the copy is
// flushed to disk before the replace happens.
//
// Write returns the backup path when a backup was created.
func Write(words []string, path string, options *WriteOptions) (string, error) {
	if options == nil {
		options = DefaultWriteOptions
	}
	if len(words) == 0 {
		return "", ErrEmptyWordList
	}
	for _, w := range words {
		if strings.ContainsAny(w, "\r\n") {
			return "", fmt.Errorf("word %q contains a line break", w)
		}
	}

	if options.Sort {
		words = thai.Sorted(words)
	}

	backupPath := ""
	if options.Backup {
		p, err := backup(path)
		if err != nil {
			return "", err
		}
		backupPath = p
	}

	if err := writeAtomic(words, path); err != nil {
		return backupPath, err
	}
	return backupPath, nil
}

func writeAtomic(words []string, path string) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".dic-*")
	if err != nil {
		return fmt.Errorf("creating temporary dictionary: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	w := bufio.NewWriter(tmp)
	if _, err = fmt.Fprintf(w, "%s%d\n", bom, len(words)); err != nil {
		return fmt.Errorf("writing count header: %w", err)
	}
	for _, word := range words {
		if _, err = w.WriteString(word + "\n"); err != nil {
			return fmt.Errorf("writing word: %w", err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("flushing dictionary: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing dictionary: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing dictionary: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// backup copies an existing file at path to a timestamp-suffixed sibling
// and returns the backup path. A missing source is not an error.
func backup(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("opening %s for backup: %w", path, err)
	}
	defer src.Close()

	ext := filepath.Ext(path)
	stamp := time.Now().Format("20060102_150405")
	backupPath := strings.TrimSuffix(path, ext) + "." + stamp + ".backup" + ext

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("creating backup %s: %w", backupPath, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(backupPath)
		return "", fmt.Errorf("copying to backup %s: %w", backupPath, err)
	}
	// The backup must be durable before the original may be replaced.
	if err := dst.Sync(); err != nil {
		dst.Close()
		return "", fmt.Errorf("syncing backup %s: %w", backupPath, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("closing backup %s: %w", backupPath, err)
	}
	return backupPath, nil
}

// Read reads all headwords from the .dic file at path, excluding the
// count header and comments.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	var words []string
	s := NewScanner(f)
	for s.Scan() {
		words = append(words, s.Word())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// ValidateFormat re-reads the file at path and verifies that the header
// count matches the actual number of words and that every word is a
// valid normalized headword. It is used by the writer as a self-check
// and by operator tooling.
func ValidateFormat(path string, n *thai.Normalizer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	if n == nil {
		n = thai.NewNormalizer(nil)
	}

	var count int64
	s := NewScanner(f)
	for s.Scan() {
		count++
		word := s.Word()
		normalized, err := n.Normalize(word)
		if err != nil {
			return fmt.Errorf("line %d: %w", count, err)
		}
		if normalized != word {
			return fmt.Errorf("line %d: %q is not in normalized form", count, word)
		}
	}
	if err := s.Err(); err != nil {
		return err
	}

	declared := s.Count()
	if declared < 0 {
		return ErrMissingHeader
	}
	if declared != count {
		return fmt.Errorf("%w: header says %d, file has %d words", ErrCountMismatch, declared, count)
	}
	return nil
}
