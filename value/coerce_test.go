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

import "testing"

func TestToBoolean(t *testing.T) {
	gc := NewCollector()
	empty, _ := gc.AllocateString("")
	full, _ := gc.AllocateString("x")
	emptyList, _ := gc.AllocateList(nil)
	fullList, _ := gc.AllocateList([]Value{FromInteger(1)})

	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"null", FromNull(), false},
		{"false", FromBool(false), false},
		{"true", FromBool(true), true},
		{"zero", FromInteger(0), false},
		{"nonzero", FromInteger(-1), true},
		{"empty string", empty, false},
		{"nonempty string", full, true},
		{"empty list", emptyList, false},
		{"nonempty list", fullList, true},
	}
	for _, c := range cases {
		got, err := ToBoolean(Options{}, c.v)
		if err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestToBooleanBlockIsTypeError(t *testing.T) {
	if _, err := ToBoolean(Options{}, FromBlock(0)); err == nil {
		t.Error("expected TypeError for block -> boolean")
	}
	if _, err := ToBoolean(Options{AllowBlockToBoolean: true}, FromBlock(0)); err != nil {
		t.Errorf("AllowBlockToBoolean should permit conversion, got %v", err)
	}
}

func TestToIntegerStringParsing(t *testing.T) {
	gc := NewCollector()
	cases := map[string]int64{
		"123":      123,
		"  42":     42,
		"+7":       7,
		"-9":       -9,
		"12abc":    12,
		"":         0,
		"   ":      0,
		"abc":      0,
		"-":        0,
		"007":      7,
	}
	for s, want := range cases {
		sv, _ := gc.AllocateString(s)
		got, err := ToInteger(Options{}, sv)
		if err != nil {
			t.Errorf("%q: unexpected error %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %d, want %d", s, got, want)
		}
	}
}

func TestToIntegerRoundTrip(t *testing.T) {
	gc := NewCollector()
	for _, n := range []int64{0, 1, -1, 12345, -98765} {
		s, err := ToString(gc, Options{}, FromInteger(n))
		if err != nil {
			t.Fatal(err)
		}
		got, err := ToInteger(Options{}, s)
		if err != nil {
			t.Fatal(err)
		}
		if got != n {
			t.Errorf("round trip %d -> %q -> %d", n, mustBytes(s), got)
		}
	}
}

func mustBytes(v Value) []byte {
	c, _ := v.AsString()
	return c.Bytes()
}

func TestToStringList(t *testing.T) {
	gc := NewCollector()
	a, _ := gc.AllocateString("a")
	b, _ := gc.AllocateString("b")
	list, _ := gc.AllocateList([]Value{a, b, FromInteger(3)})
	s, err := ToString(gc, Options{}, list)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(mustBytes(s)); got != "a\nb\n3" {
		t.Errorf("got %q, want %q", got, "a\nb\n3")
	}
}

func TestToListIdempotent(t *testing.T) {
	gc := NewCollector()
	list, _ := gc.AllocateList([]Value{FromInteger(1)})
	once, err := ToList(gc, Options{}, list)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := ToList(gc, Options{}, once)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(once, twice) {
		t.Error("ToList(ToList(v)) != ToList(v)")
	}
}

func TestIntegerToListPreservesSign(t *testing.T) {
	gc := NewCollector()
	v, err := ToList(gc, Options{}, FromInteger(-123))
	if err != nil {
		t.Fatal(err)
	}
	c, _ := v.AsList()
	want := []int64{-1, -2, -3}
	elems := c.Elements()
	if len(elems) != len(want) {
		t.Fatalf("got %d digits, want %d", len(elems), len(want))
	}
	for i, w := range want {
		n, _ := elems[i].AsInteger()
		if n != w {
			t.Errorf("digit %d: got %d, want %d", i, n, w)
		}
	}
}
