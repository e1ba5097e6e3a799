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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/syafiqhadzir/orstsync"
	"github.com/syafiqhadzir/orstsync/crawl"
	"github.com/syafiqhadzir/orstsync/internal/config"
)

var syncCommand = &cli.Command{
	Name:  "sync",
	Usage: "sweep the ORST dictionary and update the .dic artifact",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "sweep and report but do not touch the artifact",
		},
		&cli.BoolFlag{
			Name:  "no-backup",
			Usage: "skip the timestamped backup of the previous artifact",
		},
		&cli.BoolFlag{
			Name:  "no-resume",
			Usage: "discard checkpoint progress and start a fresh sweep",
		},
		&cli.BoolFlag{
			Name:  "no-cache",
			Usage: "bypass the response cache",
		},
		&cli.BoolFlag{
			Name:  "no-compounds",
			Usage: "reject multi-word headwords",
		},
		&cli.DurationFlag{
			Name:  "delay",
			Usage: "politeness delay between requests",
		},
		&cli.StringFlag{
			Name:    "output",
			Usage:   "write the artifact to `FILE`",
			Aliases: []string{"o"},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Usage:   "enable debug logging",
			Aliases: []string{"v"},
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOrstsync, err)
		}
		applyFlags(cfg, c)

		logger := newLogger(cfg.Log)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		start := time.Now()
		summary, err := orstsync.Sync(ctx, cfg, logger, &orstsync.Options{
			DryRun:   c.Bool("dry-run"),
			NoBackup: c.Bool("no-backup"),
		})
		if err != nil {
			if crawl.IsStateCorruption(err) {
				return fmt.Errorf("%w: %w", ErrState, err)
			}
			return fmt.Errorf("%w: %w", ErrOrstsync, err)
		}

		printSummary(c, summary, time.Since(start))

		// A sweep with failed segments still produced a usable artifact;
		// the report carries the caveats.
		if len(summary.Crawl.Failed) > 0 {
			fmt.Fprintf(c.App.Writer, "\nWARNING: %d segment(s) failed: %s\n",
				len(summary.Crawl.Failed), strings.Join(summary.Crawl.Failed, " "))
		}
		return nil
	},
}

// applyFlags layers command line overrides over the loaded
// configuration.
func applyFlags(cfg *config.Config, c *cli.Context) {
	if c.Bool("no-resume") {
		cfg.Crawler.Resume = false
	}
	if c.Bool("no-cache") {
		cfg.Crawler.CacheEnabled = false
	}
	if c.Bool("no-compounds") {
		cfg.Crawler.IncludeCompounds = false
	}
	if c.IsSet("delay") {
		cfg.API.Delay = c.Duration("delay")
	}
	if c.IsSet("output") {
		cfg.Paths.Artifact = c.String("output")
	}
	if c.Bool("verbose") {
		cfg.Log.Level = "debug"
	}
}

func printSummary(c *cli.Context, s *orstsync.Summary, elapsed time.Duration) {
	tbl := table.New("Metric", "Value").WithWriter(c.App.Writer)
	tbl.AddRow("Words retrieved", len(s.Crawl.Words))
	tbl.AddRow("Records rejected", s.Crawl.Rejected)
	tbl.AddRow("Segments failed", len(s.Crawl.Failed))
	tbl.AddRow("Words added", len(s.Diff.Added))
	tbl.AddRow("Ghost words", len(s.Diff.Removed))
	tbl.AddRow("Unchanged", s.Diff.Unchanged)
	tbl.AddRow("Net change", s.Diff.NetChange())
	tbl.AddRow("Elapsed", elapsed.Round(time.Second))
	if s.BackupPath != "" {
		tbl.AddRow("Backup", s.BackupPath)
	}
	tbl.AddRow("Report", s.ReportPath)
	tbl.Print()
}
