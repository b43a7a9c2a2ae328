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

package value

import "sync/atomic"

// flags encode a Cell's type and GC state. The flags byte lives in an
// atomic.Uint32 per spec.md §4.2: the mutator and collector never run
// concurrently, but the atomic type lets other goroutines construct Values
// referencing static cells without a data race, as the spec allows.
type flags uint32

const (
	flagString flags = 1 << iota
	flagList
	flagMarked
	flagStatic
	flagAllocated // string cells only: payload lives in buf, not inline
)

// embeddedCap is the inline byte capacity of a string cell before it
// switches to an allocated out-of-line buffer. Chosen so that Cell stays in
// the same ballpark as the 32-byte cells spec.md §3 describes.
const embeddedCap = 23

// Cell is the uniform heap record backing string and list values. Every
// cell begins life free (flags == 0); Collector.allocate reserves one and
// sets its type flag.
type Cell struct {
	flags atomic.Uint32

	// String payload.
	inline [embeddedCap]byte
	inlineLen int
	buf       []byte // used when flagAllocated is set

	// List payload. Lists use a single contiguous-slice representation
	// (see DESIGN.md): the Boxed/Cons/Repeat variants spec.md §3 admits
	// are optimizations, not semantic commitments.
	list []Value
}

func (c *Cell) getFlags() flags { return flags(c.flags.Load()) }
func (c *Cell) setFlags(f flags) { c.flags.Store(uint32(f)) }
func (c *Cell) addFlag(f flags) { c.flags.Store(c.flags.Load() | uint32(f)) }
func (c *Cell) clearFlag(f flags) { c.flags.Store(c.flags.Load() &^ uint32(f)) }

// IsFree reports whether the cell is not currently handed out.
func (c *Cell) IsFree() bool { return c.getFlags() == 0 }

// IsString reports whether the cell holds a string.
func (c *Cell) IsString() bool { return c.getFlags()&flagString != 0 }

// IsList reports whether the cell holds a list.
func (c *Cell) IsList() bool { return c.getFlags()&flagList != 0 }

// IsMarked reports whether the cell survived the last mark phase.
func (c *Cell) IsMarked() bool { return c.getFlags()&flagMarked != 0 }

// IsStatic reports whether the cell must never be freed by the collector.
func (c *Cell) IsStatic() bool { return c.getFlags()&flagStatic != 0 }

func (c *Cell) mark()   { c.addFlag(flagMarked) }
func (c *Cell) unmark() { c.clearFlag(flagMarked) }

// reset clears the cell back to the free state, releasing any side buffer.
func (c *Cell) reset() {
	c.inlineLen = 0
	c.buf = nil
	c.list = nil
	c.setFlags(0)
}

// initString stores s in the cell, choosing the embedded or allocated
// representation by length, per spec.md §3.
func (c *Cell) initString(s string) {
	c.addFlag(flagString)
	if len(s) <= embeddedCap {
		n := copy(c.inline[:], s)
		c.inlineLen = n
		return
	}
	c.addFlag(flagAllocated)
	c.buf = []byte(s)
}

// initList stores elems in the cell. elems is taken by reference, not
// copied; callers must pass a slice they no longer mutate.
func (c *Cell) initList(elems []Value) {
	c.addFlag(flagList)
	c.list = elems
}

// Bytes returns the string cell's bytes. Strings are immutable, so this may
// alias internal storage.
func (c *Cell) Bytes() []byte {
	if c.getFlags()&flagAllocated != 0 {
		return c.buf
	}
	return c.inline[:c.inlineLen]
}

// Len returns the string cell's byte length.
func (c *Cell) Len() int {
	if c.getFlags()&flagAllocated != 0 {
		return len(c.buf)
	}
	return c.inlineLen
}

// Elements returns the list cell's elements.
func (c *Cell) Elements() []Value { return c.list }

// ListLen returns the list cell's length; nil (the empty-list singleton)
// has length 0 without needing a Cell at all.
func (c *Cell) ListLen() int {
	if c == nil {
		return 0
	}
	return len(c.list)
}
