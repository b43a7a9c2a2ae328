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

func TestGetWholeString(t *testing.T) {
	gc := NewCollector()
	s, _ := gc.AllocateString("knight")
	got, err := Get(gc, Options{}, s, FromInteger(0), FromInteger(6))
	if err != nil {
		t.Fatal(err)
	}
	if string(mustBytes(got)) != "knight" {
		t.Errorf("GET s 0 (LENGTH s) = %q, want %q", mustBytes(got), "knight")
	}
}

func TestSetInsertWithoutRemoval(t *testing.T) {
	gc := NewCollector()
	s, _ := gc.AllocateString("ac")
	ins, _ := gc.AllocateString("b")
	got, err := Set(gc, Options{}, s, FromInteger(1), FromInteger(0), ins)
	if err != nil {
		t.Fatal(err)
	}
	if string(mustBytes(got)) != "abc" {
		t.Errorf("SET s 1 0 \"b\" = %q, want %q", mustBytes(got), "abc")
	}
}

func TestGetOutOfRangeIsDomainErrorByDefault(t *testing.T) {
	gc := NewCollector()
	s, _ := gc.AllocateString("ab")
	if _, err := Get(gc, Options{}, s, FromInteger(5), FromInteger(1)); err == nil {
		t.Error("expected DomainError for out-of-range GET")
	}
}

func TestGetPermissiveIndexingClamps(t *testing.T) {
	gc := NewCollector()
	s, _ := gc.AllocateString("ab")
	opts := Options{PermissiveIndexing: true}
	got, err := Get(gc, opts, s, FromInteger(5), FromInteger(3))
	if err != nil {
		t.Fatal(err)
	}
	if len(mustBytes(got)) != 0 {
		t.Errorf("permissive out-of-range GET = %q, want empty", mustBytes(got))
	}
}
