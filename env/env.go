// Copyright 2026 The Knight-Bytecode Authors
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

// Package env abstracts the host-facing effects PROMPT, OUTPUT, DUMP, and
// RANDOM perform, so the vm package never touches os.Stdin/os.Stdout
// directly. Grounded on db47h-ngaro/vm/io.go's RuneReader/runeWriter
// injection via functional Option, generalized to a single interface since
// Knight has exactly one input stream and one output stream.
package env

import "fmt"

// Environment supplies the side effects a running program can trigger.
type Environment interface {
	// Prompt reads one line of input, without its trailing newline. At
	// end of input it returns ("", nil): Knight's PROMPT yields the empty
	// string rather than erroring when there is nothing left to read.
	Prompt() (string, error)

	// Output writes s verbatim; the caller decides whether s ends in a
	// newline.
	Output(s string) error

	// Random returns a new pseudo-random non-negative integer on every
	// call.
	Random() int64
}

// ExitError is returned by vm.Instance.Run when the program executes
// QUIT. The CLI entry point maps it to os.Exit(Code).
type ExitError struct{ Code int }

func (e *ExitError) Error() string { return fmt.Sprintf("quit: exit code %d", e.Code) }
