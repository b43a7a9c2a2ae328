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

import (
	"strconv"
	"strings"
)

// ToBoolean implements spec.md §4.1's to_boolean: NULL, FALSE, integer 0,
// the empty string, and the empty list are false; everything else is true.
// Blocks raise a TypeError unless opts.AllowBlockToBoolean is set.
func ToBoolean(opts Options, v Value) (bool, error) {
	switch v.kind {
	case Null:
		return false, nil
	case Boolean:
		b, _ := v.AsBoolean()
		return b, nil
	case Integer:
		n, _ := v.AsInteger()
		return n != 0, nil
	case String:
		c, _ := v.AsString()
		return c.Len() != 0, nil
	case List:
		c, _ := v.AsList()
		return c.ListLen() != 0, nil
	case Block:
		if opts.AllowBlockToBoolean {
			return true, nil
		}
		return false, &TypeError{Op: "to_boolean", Kind: Block}
	default:
		return false, &TypeError{Op: "to_boolean", Kind: v.kind}
	}
}

// ToInteger implements spec.md §4.1's to_integer: NULL -> 0; booleans ->
// 0/1; strings are parsed with leading-whitespace trim, an optional sign,
// and decimal digits until the first non-digit (trailing garbage is
// ignored, per spec.md §9's "Whether string/integer conversion respects
// leading + signs" resolution); lists convert to their length.
func ToInteger(opts Options, v Value) (int64, error) {
	switch v.kind {
	case Null:
		return 0, nil
	case Boolean:
		b, _ := v.AsBoolean()
		if b {
			return 1, nil
		}
		return 0, nil
	case Integer:
		n, _ := v.AsInteger()
		return n, nil
	case String:
		c, _ := v.AsString()
		return parseInteger(opts, string(c.Bytes()))
	case List:
		c, _ := v.AsList()
		return int64(c.ListLen()), nil
	default:
		return 0, &TypeError{Op: "to_integer", Kind: v.kind}
	}
}

func parseInteger(opts Options, s string) (int64, error) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	digits := s[:end]
	if digits == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		if opts.OverflowIsError {
			return 0, &OverflowError{Op: "to_integer"}
		}
		return 0, nil
	}
	if neg {
		n = -n
	}
	if !opts.InRange(n) {
		if opts.OverflowIsError {
			return 0, &OverflowError{Op: "to_integer"}
		}
		return 0, nil
	}
	return n, nil
}

// ToString implements spec.md §4.1's to_string: NULL -> "null"; booleans ->
// "true"/"false"; integers -> decimal; strings -> themselves; lists ->
// elements joined by '\n', recursively converted.
func ToString(gc *Collector, opts Options, v Value) (Value, error) {
	switch v.kind {
	case Null:
		return gc.AllocateString("null")
	case Boolean:
		b, _ := v.AsBoolean()
		if b {
			return gc.AllocateString("true")
		}
		return gc.AllocateString("false")
	case Integer:
		n, _ := v.AsInteger()
		return gc.AllocateString(strconv.FormatInt(n, 10))
	case String:
		return v, nil
	case List:
		c, _ := v.AsList()
		// Pause across the whole join: each recursive ToString may
		// allocate a cell that only a local Go variable references until
		// we've copied its bytes out, which the collector's root scan
		// cannot see (spec.md §4.2's rooting contract).
		gc.Pause()
		defer gc.Unpause()
		parts := make([]string, c.ListLen())
		for i, el := range c.Elements() {
			s, err := ToString(gc, opts, el)
			if err != nil {
				return Value{}, err
			}
			sc, _ := s.AsString()
			parts[i] = string(sc.Bytes())
		}
		return gc.AllocateString(strings.Join(parts, "\n"))
	default:
		return Value{}, &TypeError{Op: "to_string", Kind: v.kind}
	}
}

// ToList implements spec.md §4.1's to_list: NULL -> empty; FALSE -> empty;
// TRUE -> single-element list containing TRUE; integers -> digits
// preserving sign; strings -> one-character strings; lists -> themselves.
func ToList(gc *Collector, opts Options, v Value) (Value, error) {
	switch v.kind {
	case Null:
		return gc.AllocateList(nil)
	case Boolean:
		b, _ := v.AsBoolean()
		if !b {
			return gc.AllocateList(nil)
		}
		return gc.AllocateList([]Value{v})
	case Integer:
		n, _ := v.AsInteger()
		return integerToList(gc, n)
	case String:
		c, _ := v.AsString()
		return stringToList(gc, c)
	case List:
		return v, nil
	default:
		return Value{}, &TypeError{Op: "to_list", Kind: v.kind}
	}
}

func integerToList(gc *Collector, n int64) (Value, error) {
	if n == 0 {
		return gc.AllocateList([]Value{FromInteger(0)})
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []int64
	for n > 0 {
		digits = append(digits, n%10)
		n /= 10
	}
	elems := make([]Value, len(digits))
	for i, d := range digits {
		if neg {
			d = -d
		}
		elems[len(digits)-1-i] = FromInteger(d)
	}
	return gc.AllocateList(elems)
}

func stringToList(gc *Collector, c *Cell) (Value, error) {
	runes := []rune(string(c.Bytes()))
	gc.Pause()
	defer gc.Unpause()
	elems := make([]Value, len(runes))
	for i, r := range runes {
		s, err := gc.AllocateString(string(r))
		if err != nil {
			return Value{}, err
		}
		elems[i] = s
	}
	return gc.AllocateList(elems)
}
