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

// Package orstsync synchronizes a Hunspell dictionary with the Royal
// Institute (ORST) online dictionary.
//
// A synchronization run sweeps the lookup endpoint one alphabet segment
// at a time, normalizes and deduplicates the headwords, compares the
// result against the current artifact, writes audit reports, and
// finally replaces the artifact after backing up the previous one.
package orstsync

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/syafiqhadzir/orstsync/crawl"
	"github.com/syafiqhadzir/orstsync/dic"
	"github.com/syafiqhadzir/orstsync/diff"
	"github.com/syafiqhadzir/orstsync/internal/cache"
	"github.com/syafiqhadzir/orstsync/internal/checkpoint"
	"github.com/syafiqhadzir/orstsync/internal/config"
	"github.com/syafiqhadzir/orstsync/orst"
	"github.com/syafiqhadzir/orstsync/thai"
)

// ErrNoWords indicates a sweep that produced an empty word set. The
// artifact is never replaced with an empty dictionary.
var ErrNoWords = errors.New("sweep produced no words")

// Report filenames written under the reports directory.
const (
	reportName    = "audit_report.md"
	addedListName = "added_words.txt"
	ghostListName = "ghost_words.txt"
)

// Options control a single synchronization run.
type Options struct {
	// DryRun performs the sweep and writes reports but leaves the
	// artifact untouched.
	DryRun bool

	// NoBackup skips the timestamped backup of the previous artifact.
	NoBackup bool

	// Fetcher overrides the ORST client (for testing).
	Fetcher crawl.Fetcher
}

// Summary is the outcome of a synchronization run.
type Summary struct {
	// Crawl is the sweep outcome.
	Crawl *crawl.Result

	// Diff compares the previous artifact against the sweep result.
	Diff *diff.Result

	// ReportPath is the written audit report.
	ReportPath string

	// BackupPath is the backup of the previous artifact, empty when no
	// previous artifact existed or the run was a dry run.
	BackupPath string

	// ArtifactPath is the artifact location. On a dry run the file was
	// not modified.
	ArtifactPath string
}

// Sync runs the full synchronization workflow. Failed segments do not
// abort the run; they are carried into the audit report and the Summary
// so callers can decide how loudly to complain. Checkpoint corruption
// and artifact write failures do abort.
func Sync(ctx context.Context, cfg *config.Config, logger *slog.Logger, options *Options) (*Summary, error) {
	if options == nil {
		options = &Options{}
	}

	normalizer := thai.NewNormalizer(&thai.NormalizerOptions{
		AllowCompound: cfg.Crawler.IncludeCompounds,
	})

	fetcher := options.Fetcher
	if fetcher == nil {
		var store *cache.Store
		if cfg.Crawler.CacheEnabled {
			s, err := cache.NewStore(cfg.Paths.CacheDir)
			if err != nil {
				return nil, fmt.Errorf("opening response cache: %w", err)
			}
			store = s
		}
		fetcher = orst.NewClient(store, logger, &orst.ClientOptions{
			BaseURL:     cfg.API.BaseURL,
			Delay:       cfg.API.Delay,
			Timeout:     cfg.API.Timeout,
			MaxRetries:  cfg.API.MaxRetries,
			BackoffBase: cfg.API.BackoffBase,
		})
	}

	checkpoints := checkpoint.NewStore(cfg.Paths.Checkpoint)
	crawler := crawl.New(fetcher, checkpoints, logger, &crawl.Options{
		Normalizer: normalizer,
	})

	result, err := crawler.Run(ctx, cfg.Crawler.Resume)
	if err != nil {
		return nil, err
	}
	if len(result.Words) == 0 {
		return nil, ErrNoWords
	}

	previous, err := readPrevious(cfg.Paths.Artifact, logger)
	if err != nil {
		return nil, err
	}

	d := diff.Compare(previous, result.Words)
	logger.Info("comparison complete",
		slog.Int("added", len(d.Added)),
		slog.Int("removed", len(d.Removed)),
		slog.Int("unchanged", d.Unchanged),
	)

	summary := &Summary{
		Crawl:        result,
		Diff:         d,
		ArtifactPath: cfg.Paths.Artifact,
	}

	reportPath, err := writeReports(cfg.Paths.ReportsDir, cfg.Paths.Artifact, d, result.Failed)
	if err != nil {
		return nil, err
	}
	summary.ReportPath = reportPath

	if options.DryRun {
		logger.Info("dry run, artifact not replaced",
			slog.String("artifact", cfg.Paths.Artifact),
		)
		return summary, nil
	}

	backupPath, err := dic.Write(result.Words, cfg.Paths.Artifact, &dic.WriteOptions{
		Backup: !options.NoBackup,
		Sort:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("writing artifact: %w", err)
	}
	summary.BackupPath = backupPath

	// Read the artifact back before declaring success.
	if err := dic.ValidateFormat(cfg.Paths.Artifact, normalizer); err != nil {
		return nil, fmt.Errorf("artifact failed validation after write: %w", err)
	}

	logger.Info("artifact replaced",
		slog.String("artifact", cfg.Paths.Artifact),
		slog.String("backup", backupPath),
		slog.Int("words", len(result.Words)),
	)
	return summary, nil
}

// readPrevious loads the current artifact word list. A missing artifact
// is a first run, not an error.
func readPrevious(path string, logger *slog.Logger) ([]string, error) {
	words, err := dic.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("no existing artifact, treating all words as new",
				slog.String("artifact", path),
			)
			return nil, nil
		}
		return nil, fmt.Errorf("reading existing artifact: %w", err)
	}
	return words, nil
}

// writeReports renders the audit report and the plain added/ghost word
// lists under dir, creating it if needed.
func writeReports(dir, artifact string, d *diff.Result, failed []string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}

	reportPath := filepath.Join(dir, reportName)
	f, err := os.Create(reportPath)
	if err != nil {
		return "", fmt.Errorf("creating audit report: %w", err)
	}
	defer f.Close()

	err = diff.WriteReport(f, d, &diff.ReportOptions{
		OldName:        filepath.Base(artifact),
		NewName:        "ORST online dictionary",
		FailedSegments: failed,
	})
	if err != nil {
		return "", fmt.Errorf("writing audit report: %w", err)
	}

	if err := writeWordList(filepath.Join(dir, addedListName), d.Added); err != nil {
		return "", err
	}
	if err := writeWordList(filepath.Join(dir, ghostListName), d.Removed); err != nil {
		return "", err
	}
	return reportPath, nil
}

func writeWordList(path string, words []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := diff.WriteWordList(f, words); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
