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

func TestEqualStringVsInteger(t *testing.T) {
	gc := NewCollector()
	s, _ := gc.AllocateString("12")
	if Equal(s, FromInteger(12)) {
		t.Error(`"12" should not equal 12 (distinct types)`)
	}
}

func TestEqualLists(t *testing.T) {
	gc := NewCollector()
	a, _ := gc.AllocateList([]Value{FromInteger(1), FromInteger(2)})
	b, _ := gc.AllocateList([]Value{FromInteger(1), FromInteger(2)})
	if !Equal(a, b) {
		t.Error("structurally equal lists compared unequal")
	}
}

func TestCompareBooleans(t *testing.T) {
	c, err := Compare(FromBool(false), FromBool(true))
	if err != nil || c >= 0 {
		t.Errorf("false <=> true: got %d, err %v", c, err)
	}
}

func TestCompareNullErrors(t *testing.T) {
	if _, err := Compare(FromNull(), FromNull()); err == nil {
		t.Error("NULL should not be comparable")
	}
}
