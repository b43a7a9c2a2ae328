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

import "fmt"

// Kind discriminates the variants a Value may hold.
type Kind uint8

const (
	Null Kind = iota
	Boolean
	Integer
	Block
	String
	List
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "Null"
	case Boolean:
		return "Boolean"
	case Integer:
		return "Integer"
	case Block:
		return "Block"
	case String:
		return "String"
	case List:
		return "List"
	default:
		return "Unknown"
	}
}

// Value is the Go-idiomatic realization of the tagged word described in
// spec.md §4.1: a small discriminated union (a kind tag, an integer payload
// and a cell pointer) rather than a single machine word, per §9's note that an
// explicit discriminated union carries the semantics over unchanged when the
// host language cannot guarantee pointer-tagging alignment.
type Value struct {
	kind Kind
	num  int64 // Integer payload, Boolean (0/1), Block PC index
	cell *Cell // String/List payload
}

// FromNull returns the null Value.
func FromNull() Value { return Value{kind: Null} }

// FromBool returns a boolean Value.
func FromBool(b bool) Value {
	var n int64
	if b {
		n = 1
	}
	return Value{kind: Boolean, num: n}
}

// FromInteger returns an integer Value.
func FromInteger(n int64) Value { return Value{kind: Integer, num: n} }

// FromBlock returns a Value carrying a bytecode offset, produced by BLOCK.
func FromBlock(pc int) Value { return Value{kind: Block, num: int64(pc)} }

// FromString returns a Value wrapping a string cell. c must have its
// IS_STRING flag set.
func FromString(c *Cell) Value { return Value{kind: String, cell: c} }

// FromList returns a Value wrapping a list cell, or the empty-list Value if
// c is nil (the empty list has no backing cell, per spec.md §3).
func FromList(c *Cell) Value {
	if c == nil {
		return Value{kind: List}
	}
	return Value{kind: List, cell: c}
}

// Kind reports the Value's variant.
func (v Value) Kind() Kind { return v.kind }

// AsInteger returns the integer payload and true, or (0, false) if v is not
// an Integer.
func (v Value) AsInteger() (int64, bool) {
	if v.kind != Integer {
		return 0, false
	}
	return v.num, true
}

// AsBoolean returns the boolean payload and true, or (false, false) if v is
// not a Boolean.
func (v Value) AsBoolean() (bool, bool) {
	if v.kind != Boolean {
		return false, false
	}
	return v.num != 0, true
}

// AsNull reports whether v is the null Value.
func (v Value) AsNull() bool { return v.kind == Null }

// AsBlock returns the block's bytecode offset and true, or (0, false) if v
// is not a Block.
func (v Value) AsBlock() (int, bool) {
	if v.kind != Block {
		return 0, false
	}
	return int(v.num), true
}

// AsString returns the backing cell and true, or (nil, false) if v is not a
// String.
func (v Value) AsString() (*Cell, bool) {
	if v.kind != String {
		return nil, false
	}
	return v.cell, true
}

// AsList returns the backing cell (nil for the empty list) and true, or
// (nil, false) if v is not a List.
func (v Value) AsList() (*Cell, bool) {
	if v.kind != List {
		return nil, false
	}
	return v.cell, true
}

// Cell returns the interior heap pointer carried by v, or nil for scalars
// and the empty list. Used only by the collector and by value itself.
func (v Value) Cell() *Cell {
	if v.kind != String && v.kind != List {
		return nil
	}
	return v.cell
}

// GoString renders a debug form, used by compiler.Disassemble and
// compiler.FormatConstants.
func (v Value) GoString() string {
	switch v.kind {
	case Null:
		return "Null"
	case Boolean:
		return fmt.Sprintf("Boolean(%v)", v.num != 0)
	case Integer:
		return fmt.Sprintf("Integer(%d)", v.num)
	case Block:
		return fmt.Sprintf("Block(%d)", v.num)
	case String:
		return fmt.Sprintf("String(%q)", v.cell.Bytes())
	case List:
		return fmt.Sprintf("List(len=%d)", v.cell.ListLen())
	default:
		return "<invalid Value>"
	}
}
