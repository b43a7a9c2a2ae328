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

// Not implements `!`: logical negation of to_boolean(v).
func Not(opts Options, v Value) (Value, error) {
	b, err := ToBoolean(opts, v)
	if err != nil {
		return Value{}, err
	}
	return FromBool(!b), nil
}

// Negate implements `~`: integer negation.
func Negate(opts Options, v Value) (Value, error) {
	n, ok := v.AsInteger()
	if !ok {
		return Value{}, &TypeError{Op: "~", Kind: v.kind}
	}
	r, err := checkRange(opts, "~", -n)
	if err != nil {
		return Value{}, err
	}
	return FromInteger(r), nil
}

// Length implements `L`: string length in characters (code points), list
// element count, or the
// to_integer-via-length fallback for other types.
func Length(opts Options, v Value) (int64, error) {
	switch v.kind {
	case String:
		c, _ := v.AsString()
		return int64(len([]rune(string(c.Bytes())))), nil
	case List:
		c, _ := v.AsList()
		return int64(c.ListLen()), nil
	default:
		return ToInteger(opts, v)
	}
}

// Ascii implements `A`: integer -> single-character string (by code point),
// or string -> code point of its first character. Overloaded by operand
// type, matching the reference implementation.
func Ascii(gc *Collector, v Value) (Value, error) {
	switch v.kind {
	case Integer:
		n, _ := v.AsInteger()
		if n < 0 || n > 0x10FFFF {
			return Value{}, &DomainError{Op: "A", Msg: "invalid character code"}
		}
		return gc.AllocateString(string(rune(n)))
	case String:
		c, _ := v.AsString()
		runes := []rune(string(c.Bytes()))
		if len(runes) == 0 {
			return Value{}, &DomainError{Op: "A", Msg: "empty string"}
		}
		return FromInteger(int64(runes[0])), nil
	default:
		return Value{}, &TypeError{Op: "A", Kind: v.kind}
	}
}

// Box implements `,`: wraps v in a single-element list.
func Box(gc *Collector, v Value) (Value, error) {
	return gc.AllocateList([]Value{v})
}

// Head implements `[`: the first element of a list, or the first character
// of a string. Errors on an empty sequence.
func Head(gc *Collector, v Value) (Value, error) {
	switch v.kind {
	case List:
		c, _ := v.AsList()
		if c.ListLen() == 0 {
			return Value{}, &DomainError{Op: "[", Msg: "empty list"}
		}
		return c.Elements()[0], nil
	case String:
		c, _ := v.AsString()
		runes := []rune(string(c.Bytes()))
		if len(runes) == 0 {
			return Value{}, &DomainError{Op: "[", Msg: "empty string"}
		}
		return gc.AllocateString(string(runes[0]))
	default:
		return Value{}, &TypeError{Op: "[", Kind: v.kind}
	}
}

// Tail implements `]`: all but the first element of a list, or all but the
// first character of a string. Errors on an empty sequence.
func Tail(gc *Collector, v Value) (Value, error) {
	switch v.kind {
	case List:
		c, _ := v.AsList()
		if c.ListLen() == 0 {
			return Value{}, &DomainError{Op: "]", Msg: "empty list"}
		}
		elems := c.Elements()
		out := make([]Value, len(elems)-1)
		copy(out, elems[1:])
		return gc.AllocateList(out)
	case String:
		c, _ := v.AsString()
		runes := []rune(string(c.Bytes()))
		if len(runes) == 0 {
			return Value{}, &DomainError{Op: "]", Msg: "empty string"}
		}
		return gc.AllocateString(string(runes[1:]))
	default:
		return Value{}, &TypeError{Op: "]", Kind: v.kind}
	}
}
