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

// Package export writes dictionary word lists to interchange formats:
// JSON, CSV, and SQLite. Exports are sorted in Royal Institute order and
// carry a small metadata record identifying the source and export time.
package export

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" driver

	"github.com/syafiqhadzir/orstsync/thai"
)

// Metadata describes an export.
type Metadata struct {
	TotalWords int       `json:"total_words"`
	ExportDate time.Time `json:"export_date"`
	Source     string    `json:"source"`
}

// newMetadata stamps an export with the current time.
func newMetadata(wordCount int) Metadata {
	return Metadata{
		TotalWords: wordCount,
		ExportDate: time.Now().UTC(),
		Source:     "ORST Dictionary (dictionary.orst.go.th)",
	}
}

// document is the JSON export shape.
type document struct {
	Metadata Metadata `json:"metadata"`
	Words    []string `json:"words"`
}

// JSON writes words to path as a JSON document with metadata.
func JSON(words []string, path string) error {
	doc := document{
		Metadata: newMetadata(len(words)),
		Words:    thai.Sorted(words),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// CSV writes words to path as index,word rows with a header line.
func CSV(words []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"index", "word"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, word := range thai.Sorted(words) {
		if err := w.Write([]string{strconv.Itoa(i + 1), word}); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return f.Close()
}

// SQLite writes words to a SQLite database at path. The database gets a
// `words` table keyed by collation position and a single-row `metadata`
// table; everything is inserted in one transaction.
func SQLite(words []string, path string) (err error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS words (
			position INTEGER PRIMARY KEY,
			word     TEXT NOT NULL UNIQUE
		);
		CREATE TABLE IF NOT EXISTS metadata (
			total_words INTEGER NOT NULL,
			export_date TEXT NOT NULL,
			source      TEXT NOT NULL
		);
		DELETE FROM words;
		DELETE FROM metadata;
	`)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO words (position, word) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, word := range thai.Sorted(words) {
		if _, err = stmt.Exec(i+1, word); err != nil {
			return fmt.Errorf("inserting %q: %w", word, err)
		}
	}

	meta := newMetadata(len(words))
	_, err = tx.Exec(
		"INSERT INTO metadata (total_words, export_date, source) VALUES (?, ?, ?)",
		meta.TotalWords, meta.ExportDate.Format(time.RFC3339), meta.Source,
	)
	if err != nil {
		return fmt.Errorf("inserting metadata: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	return db.Close()
}
