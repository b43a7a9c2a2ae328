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

// Get implements the 3-arity GET: a substring or sublist of source,
// starting at start for length elements/characters. Per spec.md §8's boundary
// law, `GET s 0 (LENGTH s)` equals s.
func Get(gc *Collector, opts Options, source, start, length Value) (Value, error) {
	i, ok := start.AsInteger()
	if !ok {
		return Value{}, &TypeError{Op: "GET", Kind: start.kind}
	}
	n, ok := length.AsInteger()
	if !ok {
		return Value{}, &TypeError{Op: "GET", Kind: length.kind}
	}
	switch source.kind {
	case String:
		c, _ := source.AsString()
		runes := []rune(string(c.Bytes()))
		lo, hi, err := sliceBounds(opts, "GET", len(runes), i, n)
		if err != nil {
			return Value{}, err
		}
		return gc.AllocateString(string(runes[lo:hi]))
	case List:
		c, _ := source.AsList()
		elems := c.Elements()
		lo, hi, err := sliceBounds(opts, "GET", len(elems), i, n)
		if err != nil {
			return Value{}, err
		}
		out := make([]Value, hi-lo)
		copy(out, elems[lo:hi])
		return gc.AllocateList(out)
	default:
		return Value{}, &TypeError{Op: "GET", Kind: source.kind}
	}
}

// Set implements the 4-arity SET: splices replacement into source at
// [start, start+length), returning a new value. Per spec.md §8, `SET s i 0
// t` inserts t at position i without removing anything.
func Set(gc *Collector, opts Options, source, start, length, replacement Value) (Value, error) {
	i, ok := start.AsInteger()
	if !ok {
		return Value{}, &TypeError{Op: "SET", Kind: start.kind}
	}
	n, ok := length.AsInteger()
	if !ok {
		return Value{}, &TypeError{Op: "SET", Kind: length.kind}
	}
	switch source.kind {
	case String:
		c, _ := source.AsString()
		runes := []rune(string(c.Bytes()))
		lo, hi, err := sliceBounds(opts, "SET", len(runes), i, n)
		if err != nil {
			return Value{}, err
		}
		rc, ok := replacement.AsString()
		if !ok {
			return Value{}, &TypeError{Op: "SET", Kind: replacement.kind}
		}
		repl := []rune(string(rc.Bytes()))
		out := make([]rune, 0, len(runes)-(hi-lo)+len(repl))
		out = append(out, runes[:lo]...)
		out = append(out, repl...)
		out = append(out, runes[hi:]...)
		return gc.AllocateString(string(out))
	case List:
		c, _ := source.AsList()
		elems := c.Elements()
		lo, hi, err := sliceBounds(opts, "SET", len(elems), i, n)
		if err != nil {
			return Value{}, err
		}
		rc, ok := replacement.AsList()
		if !ok {
			return Value{}, &TypeError{Op: "SET", Kind: replacement.kind}
		}
		repl := rc.Elements()
		out := make([]Value, 0, len(elems)-(hi-lo)+len(repl))
		out = append(out, elems[:lo]...)
		out = append(out, repl...)
		out = append(out, elems[hi:]...)
		return gc.AllocateList(out)
	default:
		return Value{}, &TypeError{Op: "SET", Kind: source.kind}
	}
}

// sliceBounds validates and clamps a [start, start+length) range against a
// sequence of the given total length, honoring opts.PermissiveIndexing for
// spec.md §9's Open Question on out-of-range GET/SET.
func sliceBounds(opts Options, op string, total int, start, length int64) (lo, hi int, err error) {
	if start < 0 || length < 0 || start > int64(total) || start+length > int64(total) {
		if opts.PermissiveIndexing {
			lo = clampInt(start, 0, total)
			hi = clampInt(start+length, lo, total)
			return lo, hi, nil
		}
		return 0, 0, &DomainError{Op: op, Msg: "index out of range"}
	}
	return int(start), int(start + length), nil
}

func clampInt(v int64, lo, hi int) int {
	if v < int64(lo) {
		return lo
	}
	if v > int64(hi) {
		return hi
	}
	return int(v)
}
