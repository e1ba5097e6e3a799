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

// Package crawl drives the segment-by-segment sweep over the Royal
// Institute alphabet.
//
// A single worker visits segments in fixed alphabet order, one at a
// time. Each completed segment is recorded in an atomically replaced
// checkpoint, so an interrupted run resumes where it left off: completed
// segments are replayed through the retrieval client, whose response
// cache serves them without network traffic or politeness delay. A
// segment that exhausts its retries is recorded as failed and the sweep
// continues to the next segment.
package crawl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/syafiqhadzir/orstsync/internal/checkpoint"
	"github.com/syafiqhadzir/orstsync/thai"
)

// Fetcher retrieves raw headword records for one alphabet segment.
// *orst.Client implements it; tests substitute fakes.
type Fetcher interface {
	FetchSegment(ctx context.Context, segment string) ([]string, error)
}

// Segments returns the sweep order: one string per base alphabet symbol.
func Segments() []string {
	segments := make([]string, 0, len(thai.Alphabet))
	for _, r := range thai.Alphabet {
		segments = append(segments, string(r))
	}
	return segments
}

// Result is the outcome of a sweep.
type Result struct {
	// Words is the accumulated deduplicated word set in accumulation
	// order.
	Words []string

	// Failed lists segments whose retrieval failed; the sweep continued
	// past them.
	Failed []string

	// Rejected counts records dropped by normalization.
	Rejected int
}

// Crawler orchestrates the sweep. Stores are injected so tests can
// substitute in-memory fakes.
type Crawler struct {
	fetcher     Fetcher
	checkpoints *checkpoint.Store
	normalizer  *thai.Normalizer
	segments    []string
	log         *slog.Logger
}

// Options configure a Crawler.
type Options struct {
	// Segments overrides the sweep order (for testing). Defaults to the
	// full Royal Institute alphabet.
	Segments []string

	// Normalizer overrides the headword normalizer.
	Normalizer *thai.Normalizer
}

// New returns a Crawler using fetcher for retrieval and store for
// progress tracking.
func New(fetcher Fetcher, store *checkpoint.Store, logger *slog.Logger, options *Options) *Crawler {
	if options == nil {
		options = &Options{}
	}
	segments := options.Segments
	if segments == nil {
		segments = Segments()
	}
	normalizer := options.Normalizer
	if normalizer == nil {
		normalizer = thai.NewNormalizer(nil)
	}
	return &Crawler{
		fetcher:     fetcher,
		checkpoints: store,
		normalizer:  normalizer,
		segments:    segments,
		log:         logger.With("component", "crawl"),
	}
}

// Run executes the sweep. With resume set, progress recorded by a prior
// run is loaded first and completed segments are replayed through the
// fetcher's cache path; otherwise any existing checkpoint is cleared. On
// cancellation the partial result accumulated so far is returned
// together with the context error; the checkpoint remains valid.
func (c *Crawler) Run(ctx context.Context, resume bool) (*Result, error) {
	cp := &checkpoint.Checkpoint{}
	if resume {
		loaded, err := c.checkpoints.Load()
		if err != nil {
			// Corruption is fatal: guessing at prior progress risks a
			// duplicate destructive artifact write downstream.
			return nil, err
		}
		cp = loaded
		if len(cp.Completed) > 0 {
			c.log.Info("resuming sweep",
				slog.Int("completed", len(cp.Completed)),
				slog.String("last_segment", cp.LastSegment),
			)
		}
	} else {
		if err := c.checkpoints.Clear(); err != nil {
			return nil, err
		}
	}

	result := &Result{}
	seen := make(map[string]struct{})

	for _, segment := range c.segments {
		if ctx.Err() != nil {
			return result, fmt.Errorf("sweep aborted at segment %s: %w", segment, ctx.Err())
		}

		completed := cp.IsCompleted(segment)

		raw, err := c.fetcher.FetchSegment(ctx, segment)
		if err != nil {
			if ctx.Err() != nil {
				return result, fmt.Errorf("sweep aborted at segment %s: %w", segment, ctx.Err())
			}
			c.log.Error("segment failed",
				slog.String("segment", segment),
				slog.String("error", err.Error()),
			)
			result.Failed = append(result.Failed, segment)
			continue
		}

		accepted := 0
		for _, record := range raw {
			word, err := c.normalizer.Normalize(record)
			if err != nil {
				result.Rejected++
				c.log.Debug("record rejected",
					slog.String("segment", segment),
					slog.String("record", record),
					slog.String("reason", err.Error()),
				)
				continue
			}
			accepted++
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			result.Words = append(result.Words, word)
		}

		if !completed {
			cp.MarkCompleted(segment, accepted)
			if err := c.checkpoints.Save(cp); err != nil {
				return result, fmt.Errorf("persisting checkpoint after %s: %w", segment, err)
			}
		}

		c.log.Info("segment complete",
			slog.String("segment", segment),
			slog.Int("records", len(raw)),
			slog.Int("accepted", accepted),
			slog.Int("total", len(result.Words)),
			slog.Bool("replayed", completed),
		)
	}

	return result, nil
}

// ClearProgress removes any saved checkpoint.
func (c *Crawler) ClearProgress() error {
	return c.checkpoints.Clear()
}

// IsStateCorruption reports whether err is a fatal checkpoint
// corruption.
func IsStateCorruption(err error) bool {
	return errors.Is(err, checkpoint.ErrCorrupt)
}
