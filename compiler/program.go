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

package compiler

import (
	"fmt"
	"io"
	"strconv"

	"github.com/knight-bytecode/knight/value"
)

// SourcePos is a 1-based source location, recorded alongside each emitted
// instruction for error reporting and optional stack traces (spec.md §4.3,
// §7).
type SourcePos struct {
	Line, Col int
}

func (p SourcePos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }

// Program is the compiler's immutable output: a flat bytecode stream, a
// deduplicated constant pool, and the number of global variable slots the
// VM must allocate. Grounded on db47h-ngaro/asm.Assemble's []vm.Cell
// result and KTStephano-GVM's Program{instructions, debugSymMap} shape.
type Program struct {
	Code          []Instruction
	Constants     []value.Value
	NumVariables  int
	VariableNames []string // index -> name, for diagnostics

	// Positions[i] is the source location of Code[i]'s originating
	// function or literal, used to tag a runtime error with the location
	// of the failing instruction. No stack trace of the live call frames
	// is built from it.
	Positions []SourcePos
}

// PosAt returns the recorded source position for the instruction at pc, or
// the zero SourcePos if none was recorded (e.g. pc is out of range).
func (p *Program) PosAt(pc int) SourcePos {
	if pc < 0 || pc >= len(p.Positions) {
		return SourcePos{}
	}
	return p.Positions[pc]
}

// Disassemble writes a human-readable listing of p to w, modeled on
// db47h-ngaro's asm.Disassemble / vm.Image.Disassemble.
func Disassemble(p *Program, w io.Writer) {
	for pc, ins := range p.Code {
		op := ins.Op()
		fmt.Fprintf(w, "%6d  %-14s", pc, op)
		switch op {
		case OpPushConstant:
			idx := ins.Operand()
			if int(idx) < len(p.Constants) {
				fmt.Fprintf(w, " %d (%s)", idx, p.Constants[idx].GoString())
			} else {
				fmt.Fprintf(w, " %d", idx)
			}
		case OpGetVar, OpSetVar, OpSetVarPop:
			idx := ins.Operand()
			name := "?"
			if int(idx) < len(p.VariableNames) {
				name = p.VariableNames[idx]
			}
			fmt.Fprintf(w, " %d (%s)", idx, name)
		case OpJump, OpJumpIfTrue, OpJumpIfFalse:
			fmt.Fprintf(w, " -> %d", ins.Operand())
		}
		io.WriteString(w, "\n")
	}
}

// FormatConstants is a small debugging helper that renders the constant
// pool, one "index: value" line per constant.
func FormatConstants(p *Program) string {
	s := ""
	for i, c := range p.Constants {
		s += strconv.Itoa(i) + ": " + c.GoString() + "\n"
	}
	return s
}
