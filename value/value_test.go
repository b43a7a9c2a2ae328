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

func TestScalarConstructors(t *testing.T) {
	if !FromNull().AsNull() {
		t.Error("FromNull: AsNull false")
	}
	if b, ok := FromBool(true).AsBoolean(); !ok || !b {
		t.Errorf("FromBool(true): got %v, %v", b, ok)
	}
	if n, ok := FromInteger(42).AsInteger(); !ok || n != 42 {
		t.Errorf("FromInteger(42): got %v, %v", n, ok)
	}
	if pc, ok := FromBlock(7).AsBlock(); !ok || pc != 7 {
		t.Errorf("FromBlock(7): got %v, %v", pc, ok)
	}
}

func TestEmptyListIsNilCell(t *testing.T) {
	v := FromList(nil)
	c, ok := v.AsList()
	if !ok {
		t.Fatal("AsList: not a list")
	}
	if c != nil {
		t.Errorf("expected nil cell for empty list, got %v", c)
	}
	if c.ListLen() != 0 {
		t.Errorf("ListLen on nil cell = %d, want 0", c.ListLen())
	}
}

func TestKindMismatchReturnsFalse(t *testing.T) {
	v := FromInteger(1)
	if _, ok := v.AsBoolean(); ok {
		t.Error("AsBoolean on Integer should fail")
	}
	if _, ok := v.AsString(); ok {
		t.Error("AsString on Integer should fail")
	}
}

func TestCellStringEmbeddedVsAllocated(t *testing.T) {
	gc := NewCollector()
	short, err := gc.AllocateString("hi")
	if err != nil {
		t.Fatal(err)
	}
	sc, _ := short.AsString()
	if sc.IsFree() {
		t.Fatal("allocated cell reports free")
	}
	if string(sc.Bytes()) != "hi" {
		t.Errorf("short string = %q, want hi", sc.Bytes())
	}

	long := "this string is deliberately longer than twenty three bytes"
	lv, err := gc.AllocateString(long)
	if err != nil {
		t.Fatal(err)
	}
	lc, _ := lv.AsString()
	if string(lc.Bytes()) != long {
		t.Errorf("long string round trip failed: got %q", lc.Bytes())
	}
}
