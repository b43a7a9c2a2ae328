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

package env

import (
	"bufio"
	"io"
	"math/rand"
	"strings"

	"github.com/knight-bytecode/knight/internal/werr"
)

// Stdio is the default Environment: a line-buffered reader, an output
// stream wrapped in werr.Writer (adapted from db47h-ngaro's
// internal/ngi.ErrWriter) so repeated writes after a broken pipe don't
// retry, and a seeded math/rand source.
type Stdio struct {
	in  *bufio.Reader
	out *werr.Writer
	rng *rand.Rand
}

// NewStdio builds a Stdio environment reading from r, writing to w, and
// seeding its RNG from seed.
func NewStdio(r io.Reader, w io.Writer, seed int64) *Stdio {
	return &Stdio{
		in:  bufio.NewReader(r),
		out: werr.New(w),
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Prompt reads one line, trimming its trailing "\r\n" or "\n". At EOF with
// no partial line pending, it returns ("", nil).
func (s *Stdio) Prompt() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Output writes str verbatim, reporting the writer's sticky error on any
// failed or post-failure call.
func (s *Stdio) Output(str string) error {
	_, err := io.WriteString(s.out, str)
	return err
}

// Random returns the next pseudo-random non-negative int64 from the
// environment's RNG.
func (s *Stdio) Random() int64 {
	return s.rng.Int63()
}
