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

import "github.com/pkg/errors"

// arenaSize is the number of cells per arena chunk. Growth appends a new
// arena rather than reallocating an existing one, so every *Cell handed out
// by allocate stays valid for the life of the Collector — the Go-idiomatic
// way to get the "non-moving" guarantee spec.md §1 asks for without unsafe
// pointer arithmetic into a slice that might get reallocated out from under
// live pointers.
const arenaSize = 4096

// RootProvider returns the Values currently live on the mutator side (the
// VM's operand stack and variable array). The collector calls it during
// collect() rather than importing the vm package directly, which keeps
// value free of any dependency on vm — the same layering direction as the
// teacher, where asm imports vm and never the reverse.
type RootProvider func() []Value

// Collector owns the cell arena, hands out free cells, and performs
// mark-and-sweep collection over them.
type Collector struct {
	arenas [][]Cell
	cursor int // absolute index of the next candidate free cell

	roots   []Value // pinned extra roots (add_root)
	rootGen int

	pauseDepth int

	provider RootProvider
}

// NewCollector creates a Collector with one arena preallocated.
func NewCollector() *Collector {
	c := &Collector{}
	c.growArena()
	return c
}

// SetRootProvider registers the callback used during collect() to obtain
// the mutator's live Values (VM stack + variables). Must be called before
// the first allocation that might trigger a collection.
func (c *Collector) SetRootProvider(p RootProvider) { c.provider = p }

func (c *Collector) growArena() {
	c.arenas = append(c.arenas, make([]Cell, arenaSize))
}

func (c *Collector) cellAt(idx int) *Cell {
	arena, offset := idx/arenaSize, idx%arenaSize
	return &c.arenas[arena][offset]
}

func (c *Collector) totalCells() int { return len(c.arenas) * arenaSize }

// allocate reserves a free cell and leaves its flags at zero: the caller's
// init helper (initString/initList) sets flagString or flagList, so
// allocate itself only manages free-slot bookkeeping. If no free cell is
// found, it triggers collect() (unless paused) and, failing that, grows the
// arena. allocate only fails if growth itself fails, which in practice
// never happens for in-memory slices.
func (c *Collector) allocate() (*Cell, error) {
	if cell := c.scanFree(); cell != nil {
		return cell, nil
	}
	if c.pauseDepth == 0 {
		c.collect()
		if cell := c.scanFree(); cell != nil {
			return cell, nil
		}
	}
	before := c.totalCells()
	c.growArena()
	if c.totalCells() <= before {
		return nil, errors.New("gc: arena exhausted")
	}
	cell := c.cellAt(before)
	return cell, nil
}

func (c *Collector) scanFree() *Cell {
	total := c.totalCells()
	for i := 0; i < total; i++ {
		idx := (c.cursor + i) % total
		cell := c.cellAt(idx)
		if cell.IsFree() {
			c.cursor = (idx + 1) % total
			return cell
		}
	}
	return nil
}

// AllocateString returns a new string Value holding s.
func (c *Collector) AllocateString(s string) (Value, error) {
	cell, err := c.allocate()
	if err != nil {
		return Value{}, errors.Wrap(err, "allocate string")
	}
	cell.initString(s)
	return FromString(cell), nil
}

// StaticString returns a string Value whose cell is flagged GC_STATIC and
// therefore never swept, for compile-time constants (e.g. "true", "false").
func (c *Collector) StaticString(s string) (Value, error) {
	cell, err := c.allocate()
	if err != nil {
		return Value{}, errors.Wrap(err, "allocate static string")
	}
	cell.initString(s)
	cell.addFlag(flagStatic)
	return FromString(cell), nil
}

// AllocateList returns a new list Value holding elems, or the empty-list
// Value if elems is empty (spec.md §3: "Empty lists are represented by a
// distinguished singleton, not by a cell").
func (c *Collector) AllocateList(elems []Value) (Value, error) {
	if len(elems) == 0 {
		return FromList(nil), nil
	}
	cell, err := c.allocate()
	if err != nil {
		return Value{}, errors.Wrap(err, "allocate list")
	}
	cell.initList(elems)
	return FromList(cell), nil
}

// rootHandle is a pinned value; destroying it (Release) unregisters the
// pin. This is the "rooted handle" abstraction spec.md §4.2 recommends for
// call sites that allocate more than once before storing the result
// somewhere GC-visible.
type rootHandle struct {
	c   *Collector
	idx int
}

// AddRoot pins v as a GC root until the returned handle is released.
func (c *Collector) AddRoot(v Value) *rootHandle {
	c.roots = append(c.roots, v)
	return &rootHandle{c: c, idx: len(c.roots) - 1}
}

// Release unpins the handle's value. Handles must be released in LIFO
// order: releasing one out of order moves the most recently added root
// into the released slot without updating that root's own handle.
func (h *rootHandle) Release() {
	if h.idx != len(h.c.roots)-1 {
		// Not strictly LIFO: swap-remove rather than leaving a hole, since
		// order among pinned roots has no observable meaning.
		h.c.roots[h.idx] = h.c.roots[len(h.c.roots)-1]
	}
	h.c.roots = h.c.roots[:len(h.c.roots)-1]
}

// Pause inhibits collect() from running during allocate; allocation instead
// takes a free cell if one exists and otherwise grows the arena. Used to bound the cost of short allocation bursts
// (e.g. building a list element-by-element) where rooting each intermediate
// value would be more ceremony than it's worth.
func (c *Collector) Pause() { c.pauseDepth++ }

// Unpause reverses one Pause call.
func (c *Collector) Unpause() {
	if c.pauseDepth > 0 {
		c.pauseDepth--
	}
}

// Collect performs one mark-and-sweep cycle immediately, regardless of the
// pause depth. Exported so hosts and tests can force a deterministic GC.
func (c *Collector) Collect() { c.collect() }

func (c *Collector) collect() {
	c.markAll()
	c.sweep()
}

func (c *Collector) markAll() {
	if c.provider != nil {
		for _, v := range c.provider() {
			c.markValue(v)
		}
	}
	for _, v := range c.roots {
		c.markValue(v)
	}
}

func (c *Collector) markValue(v Value) {
	cell := v.Cell()
	if cell == nil {
		return
	}
	c.markCell(cell)
}

func (c *Collector) markCell(cell *Cell) {
	if cell.IsStatic() || cell.IsMarked() {
		return
	}
	cell.mark()
	if cell.IsList() {
		for _, el := range cell.list {
			c.markValue(el)
		}
	}
}

func (c *Collector) sweep() {
	total := c.totalCells()
	for i := 0; i < total; i++ {
		cell := c.cellAt(i)
		if cell.IsFree() || cell.IsStatic() {
			continue
		}
		if cell.IsMarked() {
			cell.unmark()
			continue
		}
		cell.reset()
	}
}

// Shutdown frees every cell unconditionally, including static ones, at VM
// teardown.
func (c *Collector) Shutdown() {
	total := c.totalCells()
	for i := 0; i < total; i++ {
		c.cellAt(i).reset()
	}
	c.roots = nil
}
