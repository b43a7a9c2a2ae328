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

// Package vm executes a compiled Program: a fetch-decode-dispatch loop
// over its bytecode, an operand stack, and a flat variable array. All
// type coercion and per-operator semantics are delegated to the value
// package; vm only sequences instructions and shuttles operands.
package vm

import (
	"github.com/pkg/errors"

	"github.com/knight-bytecode/knight/compiler"
	"github.com/knight-bytecode/knight/env"
	"github.com/knight-bytecode/knight/value"
)

// Option configures an Instance at construction time, in the style of
// db47h-ngaro/vm.Option (DataSize, AddressSize, Input, Output).
type Option func(*Instance) error

// StackCapacity preallocates the operand stack's backing array.
func StackCapacity(n int) Option {
	return func(i *Instance) error { i.stack = make([]value.Value, 0, n); return nil }
}

// WithOptions sets the value.Options used for every coercion and
// arithmetic operation the program performs.
func WithOptions(opts value.Options) Option {
	return func(i *Instance) error { i.opts = opts; return nil }
}

// Instance is one running Knight program: a Program paired with its own
// stack, variables, call frames, and I/O environment. Grounded on
// db47h-ngaro/vm.Instance (PC + Option-configured stacks).
type Instance struct {
	PC int

	stack   []value.Value
	vars    []value.Value
	defined []bool
	frames  frames

	program *compiler.Program
	gc      *value.Collector
	opts    value.Options
	env     env.Environment

	insCount int64
}

// New creates an Instance ready to run program. gc must be the same
// Collector program's string/list constants were interned into, since the
// VM hands out *value.Cell pointers from that collector for the life of
// the run.
func New(program *compiler.Program, gc *value.Collector, environment env.Environment, opts ...Option) (*Instance, error) {
	i := &Instance{
		program: program,
		gc:      gc,
		env:     environment,
		vars:    make([]value.Value, program.NumVariables),
		defined: make([]bool, program.NumVariables),
	}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	if i.stack == nil {
		i.stack = make([]value.Value, 0, 256)
	}
	gc.SetRootProvider(i.roots)
	return i, nil
}

// roots is the value.RootProvider registered with gc: every Value the
// mutator can currently reach without going through the collector's own
// pinned-root list.
func (i *Instance) roots() []value.Value {
	out := make([]value.Value, 0, len(i.stack)+len(i.vars)+len(i.program.Constants))
	out = append(out, i.stack...)
	out = append(out, i.vars...)
	out = append(out, i.program.Constants...)
	return out
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 { return i.insCount }

func (i *Instance) push(v value.Value) { i.stack = append(i.stack, v) }

func (i *Instance) pop() value.Value {
	v := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	return v
}

// popN returns the top n stack values in their original push order (index
// 0 is the earliest-pushed of the group) and removes them from the stack.
func (i *Instance) popN(n int) []value.Value {
	args := make([]value.Value, n)
	copy(args, i.stack[len(i.stack)-n:])
	i.stack = i.stack[:len(i.stack)-n]
	return args
}

func (i *Instance) posHere() compiler.SourcePos { return i.program.PosAt(i.PC) }

func (i *Instance) fail(err error) error {
	return &RuntimeError{Pos: i.posHere(), Err: err}
}

// Run drives the fetch-decode-dispatch loop until the program falls off
// the end of its code (normal termination, returning the final stack top)
// or QUIT/an error ends it early.
//
// If the program executes QUIT, Run returns an *env.ExitError; callers
// that want the VM's natural (non-QUIT) result value should inspect the
// returned Value even when err is nil.
func (i *Instance) Run() (result value.Value, err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "recovered error @pc=%d/%d, stack depth=%d", i.PC, len(i.program.Code), len(i.stack))
			default:
				panic(e)
			}
		}
	}()

	code := i.program.Code
	i.insCount = 0
	for i.PC < len(code) {
		ins := code[i.PC]
		if err := i.step(ins); err != nil {
			if _, isExit := err.(*env.ExitError); isExit {
				return value.Value{}, err
			}
			return value.Value{}, i.fail(err)
		}
		i.insCount++
	}
	if len(i.stack) == 0 {
		return value.FromNull(), nil
	}
	return i.stack[len(i.stack)-1], nil
}

// step executes one instruction and advances PC, except for control-flow
// opcodes which set PC themselves.
func (i *Instance) step(ins compiler.Instruction) error {
	op := ins.Op()
	operand := ins.Operand()

	switch op {
	case compiler.OpPushConstant:
		i.push(i.program.Constants[operand])
		i.PC++

	case compiler.OpGetVar:
		if !i.defined[operand] {
			return &UndefinedVariableError{Name: i.program.VariableNames[operand]}
		}
		i.push(i.vars[operand])
		i.PC++

	case compiler.OpSetVar:
		v := i.stack[len(i.stack)-1] // peek: `=` evaluates to the assigned value
		i.vars[operand] = v
		i.defined[operand] = true
		i.PC++

	case compiler.OpSetVarPop:
		v := i.pop()
		i.vars[operand] = v
		i.defined[operand] = true
		i.PC++

	case compiler.OpJump:
		i.PC = int(operand)

	case compiler.OpJumpIfTrue:
		b, err := value.ToBoolean(i.opts, i.pop())
		if err != nil {
			return err
		}
		if b {
			i.PC = int(operand)
		} else {
			i.PC++
		}

	case compiler.OpJumpIfFalse:
		b, err := value.ToBoolean(i.opts, i.pop())
		if err != nil {
			return err
		}
		if !b {
			i.PC = int(operand)
		} else {
			i.PC++
		}

	case compiler.OpDup:
		i.push(i.stack[len(i.stack)-1])
		i.PC++

	case compiler.OpPop:
		i.pop()
		i.PC++

	case compiler.OpReturn:
		v := i.pop()
		retPC, ok := i.frames.pop()
		if !ok {
			return errors.New("return with no active call frame")
		}
		i.push(v)
		i.PC = retPC

	case compiler.OpCall:
		v := i.pop()
		pc, ok := v.AsBlock()
		if !ok {
			return &value.TypeError{Op: "CALL", Kind: v.Kind()}
		}
		i.frames.push(i.PC + 1)
		i.PC = pc

	case compiler.OpPrompt:
		line, err := i.env.Prompt()
		if err != nil {
			return errors.Wrap(err, "PROMPT")
		}
		v, err := i.gc.AllocateString(line)
		if err != nil {
			return err
		}
		i.push(v)
		i.PC++

	case compiler.OpRandom:
		i.push(value.FromInteger(i.env.Random()))
		i.PC++

	case compiler.OpQuit:
		v := i.pop()
		n, ok := v.AsInteger()
		if !ok {
			return &value.TypeError{Op: "QUIT", Kind: v.Kind()}
		}
		return &env.ExitError{Code: int(n)}

	case compiler.OpOutput:
		return i.execOutput()

	case compiler.OpDump:
		v := i.pop()
		if err := i.env.Output(value.Dump(v)); err != nil {
			return errors.Wrap(err, "DUMP")
		}
		i.push(v)
		i.PC++

	case compiler.OpLength:
		n, err := value.Length(i.opts, i.pop())
		if err != nil {
			return err
		}
		i.push(value.FromInteger(n))
		i.PC++

	case compiler.OpNot:
		v, err := value.Not(i.opts, i.pop())
		if err != nil {
			return err
		}
		i.push(v)
		i.PC++

	case compiler.OpNegate:
		v, err := value.Negate(i.opts, i.pop())
		if err != nil {
			return err
		}
		i.push(v)
		i.PC++

	case compiler.OpAscii:
		v, err := value.Ascii(i.gc, i.pop())
		if err != nil {
			return err
		}
		i.push(v)
		i.PC++

	case compiler.OpBox:
		v, err := value.Box(i.gc, i.pop())
		if err != nil {
			return err
		}
		i.push(v)
		i.PC++

	case compiler.OpHead:
		v, err := value.Head(i.gc, i.pop())
		if err != nil {
			return err
		}
		i.push(v)
		i.PC++

	case compiler.OpTail:
		v, err := value.Tail(i.gc, i.pop())
		if err != nil {
			return err
		}
		i.push(v)
		i.PC++

	case compiler.OpAdd, compiler.OpSub, compiler.OpMul, compiler.OpDiv,
		compiler.OpMod, compiler.OpPow, compiler.OpLth, compiler.OpGth, compiler.OpEql:
		return i.execBinary(op)

	case compiler.OpGet:
		args := i.popN(3)
		v, err := value.Get(i.gc, i.opts, args[0], args[1], args[2])
		if err != nil {
			return err
		}
		i.push(v)
		i.PC++

	case compiler.OpSet:
		args := i.popN(4)
		v, err := value.Set(i.gc, i.opts, args[0], args[1], args[2], args[3])
		if err != nil {
			return err
		}
		i.push(v)
		i.PC++

	default:
		return errors.Errorf("unknown opcode %d", op)
	}
	return nil
}

func (i *Instance) execOutput() error {
	v := i.pop()
	s, err := value.ToString(i.gc, i.opts, v)
	if err != nil {
		return err
	}
	cell, _ := s.AsString()
	text := string(cell.Bytes())
	// A trailing backslash suppresses the newline OUTPUT would otherwise
	// append, and is itself removed.
	if len(text) > 0 && text[len(text)-1] == '\\' {
		if err := i.env.Output(text[:len(text)-1]); err != nil {
			return errors.Wrap(err, "OUTPUT")
		}
	} else if err := i.env.Output(text + "\n"); err != nil {
		return errors.Wrap(err, "OUTPUT")
	}
	i.push(value.FromNull())
	i.PC++
	return nil
}

func (i *Instance) execBinary(op compiler.Op) error {
	args := i.popN(2)
	a, b := args[0], args[1]
	var result value.Value
	var err error
	switch op {
	case compiler.OpAdd:
		result, err = value.Add(i.gc, i.opts, a, b)
	case compiler.OpSub:
		result, err = value.Sub(i.opts, a, b)
	case compiler.OpMul:
		result, err = value.Mul(i.gc, i.opts, a, b)
	case compiler.OpDiv:
		result, err = value.Div(i.opts, a, b)
	case compiler.OpMod:
		result, err = value.Mod(i.opts, a, b)
	case compiler.OpPow:
		result, err = value.Pow(i.opts, a, b)
	case compiler.OpLth:
		var c int
		c, err = value.Compare(a, b)
		result = value.FromBool(c < 0)
	case compiler.OpGth:
		var c int
		c, err = value.Compare(a, b)
		result = value.FromBool(c > 0)
	case compiler.OpEql:
		result = value.FromBool(value.Equal(a, b))
	}
	if err != nil {
		return err
	}
	i.push(result)
	i.PC++
	return nil
}
