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

import "strings"

// checkRange applies opts' overflow policy to the result of an integer
// operation: clamp to 0 or raise an OverflowError.
func checkRange(opts Options, op string, n int64) (int64, error) {
	if opts.InRange(n) {
		return n, nil
	}
	if opts.OverflowIsError {
		return 0, &OverflowError{Op: op}
	}
	return 0, nil
}

// Add implements `+`: integer addition, string concatenation, or list
// concatenation, per spec.md §4.1.
func Add(gc *Collector, opts Options, a, b Value) (Value, error) {
	switch a.kind {
	case Integer:
		n, ok := b.AsInteger()
		if !ok {
			return Value{}, &TypeError{Op: "+", Kind: b.kind}
		}
		x, _ := a.AsInteger()
		r, err := checkRange(opts, "+", x+n)
		if err != nil {
			return Value{}, err
		}
		return FromInteger(r), nil
	case String:
		if b.kind != String {
			return Value{}, &TypeError{Op: "+", Kind: b.kind}
		}
		ac, _ := a.AsString()
		bc, _ := b.AsString()
		return gc.AllocateString(string(ac.Bytes()) + string(bc.Bytes()))
	case List:
		if b.kind != List {
			return Value{}, &TypeError{Op: "+", Kind: b.kind}
		}
		ac, _ := a.AsList()
		bc, _ := b.AsList()
		combined := make([]Value, 0, ac.ListLen()+bc.ListLen())
		combined = append(combined, ac.Elements()...)
		combined = append(combined, bc.Elements()...)
		return gc.AllocateList(combined)
	default:
		return Value{}, &TypeError{Op: "+", Kind: a.kind}
	}
}

// Sub implements `-`: integer subtraction only.
func Sub(opts Options, a, b Value) (Value, error) {
	x, ok := a.AsInteger()
	if !ok {
		return Value{}, &TypeError{Op: "-", Kind: a.kind}
	}
	y, ok := b.AsInteger()
	if !ok {
		return Value{}, &TypeError{Op: "-", Kind: b.kind}
	}
	r, err := checkRange(opts, "-", x-y)
	if err != nil {
		return Value{}, err
	}
	return FromInteger(r), nil
}

// Mul implements `*`: integer multiplication, string repetition, or list
// repetition. The repeat count must be nonnegative.
func Mul(gc *Collector, opts Options, a, b Value) (Value, error) {
	switch a.kind {
	case Integer:
		n, ok := b.AsInteger()
		if !ok {
			return Value{}, &TypeError{Op: "*", Kind: b.kind}
		}
		x, _ := a.AsInteger()
		r, err := checkRange(opts, "*", x*n)
		if err != nil {
			return Value{}, err
		}
		return FromInteger(r), nil
	case String:
		n, ok := b.AsInteger()
		if !ok {
			return Value{}, &TypeError{Op: "*", Kind: b.kind}
		}
		if n < 0 {
			return Value{}, &DomainError{Op: "*", Msg: "negative repeat count"}
		}
		ac, _ := a.AsString()
		return gc.AllocateString(strings.Repeat(string(ac.Bytes()), int(n)))
	case List:
		n, ok := b.AsInteger()
		if !ok {
			return Value{}, &TypeError{Op: "*", Kind: b.kind}
		}
		if n < 0 {
			return Value{}, &DomainError{Op: "*", Msg: "negative repeat count"}
		}
		ac, _ := a.AsList()
		elems := ac.Elements()
		combined := make([]Value, 0, len(elems)*int(n))
		for i := int64(0); i < n; i++ {
			combined = append(combined, elems...)
		}
		return gc.AllocateList(combined)
	default:
		return Value{}, &TypeError{Op: "*", Kind: a.kind}
	}
}

// Div implements `/`: integer division, truncated toward zero (spec.md §9
// Open Question: "The source uses truncated (toward-zero) division").
func Div(opts Options, a, b Value) (Value, error) {
	x, ok := a.AsInteger()
	if !ok {
		return Value{}, &TypeError{Op: "/", Kind: a.kind}
	}
	y, ok := b.AsInteger()
	if !ok {
		return Value{}, &TypeError{Op: "/", Kind: b.kind}
	}
	if y == 0 {
		return Value{}, &DomainError{Op: "/", Msg: "division by zero"}
	}
	r, err := checkRange(opts, "/", x/y) // Go's / already truncates toward zero
	if err != nil {
		return Value{}, err
	}
	return FromInteger(r), nil
}

// Mod implements `%`. Refuses negative operands when opts.StrictModulo is
// set.
func Mod(opts Options, a, b Value) (Value, error) {
	x, ok := a.AsInteger()
	if !ok {
		return Value{}, &TypeError{Op: "%", Kind: a.kind}
	}
	y, ok := b.AsInteger()
	if !ok {
		return Value{}, &TypeError{Op: "%", Kind: b.kind}
	}
	if y == 0 {
		return Value{}, &DomainError{Op: "%", Msg: "modulo by zero"}
	}
	if opts.StrictModulo && (x < 0 || y < 0) {
		return Value{}, &DomainError{Op: "%", Msg: "negative operand"}
	}
	return FromInteger(x % y), nil
}

// Pow implements `^`. Power of 0 to a negative exponent fails; negative
// bases with fractional results are not a concern since both operands are
// integers.
func Pow(opts Options, a, b Value) (Value, error) {
	x, ok := a.AsInteger()
	if !ok {
		return Value{}, &TypeError{Op: "^", Kind: a.kind}
	}
	n, ok := b.AsInteger()
	if !ok {
		return Value{}, &TypeError{Op: "^", Kind: b.kind}
	}
	if n < 0 {
		if x == 0 {
			return Value{}, &DomainError{Op: "^", Msg: "zero to a negative power"}
		}
		switch x {
		case 1:
			return FromInteger(1), nil
		case -1:
			if n%2 == 0 {
				return FromInteger(1), nil
			}
			return FromInteger(-1), nil
		default:
			return FromInteger(0), nil
		}
	}
	result := int64(1)
	for i := int64(0); i < n; i++ {
		next := result * x
		var err error
		result, err = checkRange(opts, "^", next)
		if err != nil {
			return Value{}, err
		}
	}
	return FromInteger(result), nil
}
