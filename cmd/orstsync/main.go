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

// The orstsync command synchronizes a Thai Hunspell .dic artifact with
// the Royal Institute online dictionary.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	app := newOrstsyncApp()
	if err := app.Run(args); err != nil {
		fmt.Fprintln(os.Stderr, err)

		switch {
		case errors.Is(err, ErrFlagParse):
			return ExitCodeFlagParseError
		case errors.Is(err, ErrState):
			return ExitCodeStateError
		default:
			return ExitCodeUnknownError
		}
	}
	return ExitCodeSuccess
}
