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
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/syafiqhadzir/orstsync/dic"
	"github.com/syafiqhadzir/orstsync/export"
)

var exportCommand = &cli.Command{
	Name:      "export",
	Usage:     "convert a .dic file to another format",
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Usage:   "output format: json, csv or sqlite",
			Aliases: []string{"f"},
			Value:   "json",
		},
		&cli.StringFlag{
			Name:     "output",
			Usage:    "write to `FILE`",
			Aliases:  []string{"o"},
			Required: true,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected exactly one FILE argument", ErrFlagParse)
		}
		path := c.Args().First()
		out := c.String("output")

		words, err := dic.Read(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrState, path, err)
		}

		format := strings.ToLower(c.String("format"))
		switch format {
		case "json":
			err = export.JSON(words, out)
		case "csv":
			err = export.CSV(words, out)
		case "sqlite":
			err = export.SQLite(words, out)
		default:
			return fmt.Errorf("%w: unknown format %q", ErrFlagParse, format)
		}
		if err != nil {
			return fmt.Errorf("%w: exporting %s: %w", ErrOrstsync, format, err)
		}

		fmt.Fprintf(c.App.Writer, "%s: wrote %d words to %s\n", format, len(words), out)
		return nil
	},
}
