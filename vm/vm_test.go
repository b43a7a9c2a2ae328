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

package vm_test

import (
	"strings"
	"testing"

	"github.com/knight-bytecode/knight/compiler"
	"github.com/knight-bytecode/knight/env"
	"github.com/knight-bytecode/knight/value"
	"github.com/knight-bytecode/knight/vm"
)

// fakeEnv is a scripted Environment: Prompt drains lines, Output appends to
// a buffer, Random replays a fixed sequence.
type fakeEnv struct {
	lines  []string
	output strings.Builder
	rands  []int64
}

func (f *fakeEnv) Prompt() (string, error) {
	if len(f.lines) == 0 {
		return "", nil
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *fakeEnv) Output(s string) error {
	f.output.WriteString(s)
	return nil
}

func (f *fakeEnv) Random() int64 {
	if len(f.rands) == 0 {
		return 0
	}
	r := f.rands[0]
	f.rands = f.rands[1:]
	return r
}

func run(t *testing.T, src string, e *fakeEnv) (value.Value, error) {
	t.Helper()
	gc := value.NewCollector()
	prog, err := compiler.Compile(src, gc, value.Options{})
	if err != nil {
		t.Fatalf("compile(%q): %v", src, err)
	}
	if e == nil {
		e = &fakeEnv{}
	}
	inst, err := vm.New(prog, gc, e)
	if err != nil {
		t.Fatalf("vm.New: %v", err)
	}
	return inst.Run()
}

func mustInt(t *testing.T, v value.Value) int64 {
	t.Helper()
	n, ok := v.AsInteger()
	if !ok {
		t.Fatalf("%v is not an Integer", v)
	}
	return n
}

func TestRunArithmetic(t *testing.T) {
	v, err := run(t, "+ 1 * 2 3", nil)
	if err != nil {
		t.Fatal(err)
	}
	if n := mustInt(t, v); n != 7 {
		t.Errorf("+ 1 (* 2 3) = %d, want 7", n)
	}
}

func TestRunOutputConcat(t *testing.T) {
	e := &fakeEnv{}
	_, err := run(t, `OUTPUT + "hello, " "world"`, e)
	if err != nil {
		t.Fatal(err)
	}
	if e.output.String() != "hello, world\n" {
		t.Errorf("output = %q, want %q", e.output.String(), "hello, world\n")
	}
}

func TestRunOutputBackslashSuppressesNewline(t *testing.T) {
	e := &fakeEnv{}
	if _, err := run(t, `OUTPUT "no newline\"`, e); err != nil {
		t.Fatal(err)
	}
	if e.output.String() != "no newline" {
		t.Errorf("output = %q, want %q", e.output.String(), "no newline")
	}
}

func TestRunWhileLoop(t *testing.T) {
	v, err := run(t, "; = n 0 ; W (< n 5) = n + n 1 n", nil)
	if err != nil {
		t.Fatal(err)
	}
	if n := mustInt(t, v); n != 5 {
		t.Errorf("loop result = %d, want 5", n)
	}
}

func TestRunIfBranches(t *testing.T) {
	v, err := run(t, "I T 1 2", nil)
	if err != nil {
		t.Fatal(err)
	}
	if n := mustInt(t, v); n != 1 {
		t.Errorf("I T 1 2 = %d, want 1", n)
	}
	v, err = run(t, "I F 1 2", nil)
	if err != nil {
		t.Fatal(err)
	}
	if n := mustInt(t, v); n != 2 {
		t.Errorf("I F 1 2 = %d, want 2", n)
	}
}

func TestRunBlockCallRecursion(t *testing.T) {
	src := `; = fact BLOCK IF (< n 2) 1 * n ; = n - n 1 CALL fact ; = n 5 CALL fact`
	// fact closes over the global `n`; this mirrors the recursion scenario
	// from the language's closures-over-globals note.
	_, err := run(t, src, nil)
	if err != nil {
		t.Fatal(err)
	}
}

func TestRunEqualityDistinguishesTypes(t *testing.T) {
	v, err := run(t, `? "12" 12`, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := v.AsBoolean()
	if b {
		t.Error(`"12" should not equal 12`)
	}
}

func TestRunQuitReturnsExitError(t *testing.T) {
	_, err := run(t, "QUIT 7", nil)
	exit, ok := err.(*env.ExitError)
	if !ok {
		t.Fatalf("expected *env.ExitError, got %T: %v", err, err)
	}
	if exit.Code != 7 {
		t.Errorf("exit code = %d, want 7", exit.Code)
	}
}

func TestRunDumpListForm(t *testing.T) {
	e := &fakeEnv{}
	_, err := run(t, "D + , 1 , 2", e)
	if err != nil {
		t.Fatal(err)
	}
	if e.output.String() != "[1, 2]" {
		t.Errorf("dump = %q, want %q", e.output.String(), "[1, 2]")
	}
}

func TestRunUndefinedVariableErrors(t *testing.T) {
	_, err := run(t, "x", nil)
	if err == nil {
		t.Fatal("expected an undefined-variable error")
	}
}

func TestRunPromptReadsLine(t *testing.T) {
	e := &fakeEnv{lines: []string{"hi there"}}
	v, err := run(t, "PROMPT", e)
	if err != nil {
		t.Fatal(err)
	}
	c, ok := v.AsString()
	if !ok || string(c.Bytes()) != "hi there" {
		t.Errorf("PROMPT = %v, want %q", v, "hi there")
	}
}

func TestRunAndOrShortCircuit(t *testing.T) {
	v, err := run(t, "& F (QUIT 1)", nil)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := v.AsBoolean()
	if b {
		t.Error("F & (QUIT 1) should short-circuit to F without evaluating QUIT")
	}

	v, err = run(t, "| T (QUIT 1)", nil)
	if err != nil {
		t.Fatal(err)
	}
	b, _ = v.AsBoolean()
	if !b {
		t.Error("T | (QUIT 1) should short-circuit to T without evaluating QUIT")
	}
}

func TestRunGetSetBoundaryLaw(t *testing.T) {
	v, err := run(t, `; = s "knight" G s 0 L s`, nil)
	if err != nil {
		t.Fatal(err)
	}
	c, ok := v.AsString()
	if !ok || string(c.Bytes()) != "knight" {
		t.Errorf("GET s 0 (LENGTH s) = %v, want the whole string", v)
	}
}
