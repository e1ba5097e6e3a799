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

	"github.com/urfave/cli/v2"

	"github.com/syafiqhadzir/orstsync/dic"
	"github.com/syafiqhadzir/orstsync/thai"
)

var validateCommand = &cli.Command{
	Name:      "validate",
	Usage:     "check a .dic file for format and normalization problems",
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "no-compounds",
			Usage: "reject multi-word headwords",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected exactly one FILE argument", ErrFlagParse)
		}
		path := c.Args().First()

		normalizer := thai.NewNormalizer(&thai.NormalizerOptions{
			AllowCompound: !c.Bool("no-compounds"),
		})
		if err := dic.ValidateFormat(path, normalizer); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrState, path, err)
		}

		words, err := dic.Read(path)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrState, path, err)
		}

		fmt.Fprintf(c.App.Writer, "%s: OK (%d words)\n", path, len(words))
		return nil
	},
}
