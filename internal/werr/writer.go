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

// Package werr provides a sticky-error io.Writer, used to wrap the
// program's output stream so that a chain of OUTPUT/DUMP calls after a
// broken pipe doesn't retry doomed writes one at a time.
package werr

import (
	"io"

	"github.com/pkg/errors"
)

// Writer wraps an io.Writer and remembers the first error it produced.
// Once Err is set, Write keeps returning it without touching the
// underlying writer again.
type Writer struct {
	w   io.Writer
	Err error
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err := w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// New returns a Writer wrapping w.
func New(w io.Writer) *Writer { return &Writer{w: w} }
