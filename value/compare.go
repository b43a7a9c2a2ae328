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

import "bytes"

// Equal implements spec.md §4.1's equality: structural on scalars,
// string-wise on strings, element-wise on lists, identity on blocks. Values
// of different kinds are never equal (spec.md §8 scenario 5: `? "12" 12`
// is FALSE, since string and integer are distinct types).
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null:
		return true
	case Boolean:
		x, _ := a.AsBoolean()
		y, _ := b.AsBoolean()
		return x == y
	case Integer:
		x, _ := a.AsInteger()
		y, _ := b.AsInteger()
		return x == y
	case Block:
		x, _ := a.AsBlock()
		y, _ := b.AsBlock()
		return x == y
	case String:
		ac, _ := a.AsString()
		bc, _ := b.AsString()
		return bytes.Equal(ac.Bytes(), bc.Bytes())
	case List:
		ac, _ := a.AsList()
		bc, _ := b.AsList()
		ae, be := ac.Elements(), bc.Elements()
		if len(ae) != len(be) {
			return false
		}
		for i := range ae {
			if !Equal(ae[i], be[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Compare implements spec.md §4.1's ordering: numeric for integers, false <
// true for booleans, lexicographic for strings, element-wise with a
// length tiebreak for lists. NULL and blocks are not comparable.
func Compare(a, b Value) (int, error) {
	if a.kind != b.kind {
		return 0, &TypeError{Op: "<=>", Kind: b.kind}
	}
	switch a.kind {
	case Integer:
		x, _ := a.AsInteger()
		y, _ := b.AsInteger()
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		default:
			return 0, nil
		}
	case Boolean:
		x, _ := a.AsBoolean()
		y, _ := b.AsBoolean()
		switch {
		case x == y:
			return 0, nil
		case !x && y:
			return -1, nil
		default:
			return 1, nil
		}
	case String:
		ac, _ := a.AsString()
		bc, _ := b.AsString()
		return bytes.Compare(ac.Bytes(), bc.Bytes()), nil
	case List:
		ac, _ := a.AsList()
		bc, _ := b.AsList()
		ae, be := ac.Elements(), bc.Elements()
		n := len(ae)
		if len(be) < n {
			n = len(be)
		}
		for i := 0; i < n; i++ {
			c, err := Compare(ae[i], be[i])
			if err != nil {
				return 0, err
			}
			if c != 0 {
				return c, nil
			}
		}
		switch {
		case len(ae) < len(be):
			return -1, nil
		case len(ae) > len(be):
			return 1, nil
		default:
			return 0, nil
		}
	default:
		return 0, &TypeError{Op: "<=>", Kind: a.kind}
	}
}
