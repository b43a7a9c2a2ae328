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

// Command knight compiles and runs a Knight program from a file (-f) or a
// literal expression (-e).
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/knight-bytecode/knight/compiler"
	"github.com/knight-bytecode/knight/env"
	"github.com/knight-bytecode/knight/value"
	"github.com/knight-bytecode/knight/vm"
)

var (
	debug       bool
	disassemble bool
	execStats   bool
)

// atExit reports a terminal error and sets the process exit code, mirroring
// db47h-ngaro/cmd/retro's debug-flag-gated stack trace: plain message by
// default, a full `%+v` pkg/errors trace under -debug.
func atExit(err error) {
	if err == nil {
		return
	}
	if exit, ok := err.(*env.ExitError); ok {
		os.Exit(exit.Code)
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "knight: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "knight: %+v\n", err)
	os.Exit(1)
}

func main() {
	var err error
	defer func() { atExit(err) }()

	file := flag.String("f", "", "run the program in `filename`")
	expr := flag.String("e", "", "run the literal expression `source`")
	flag.BoolVar(&debug, "debug", false, "print a full error stack trace on failure")
	flag.BoolVar(&disassemble, "disasm", false, "print the compiled bytecode to stderr before running")
	flag.BoolVar(&execStats, "stats", false, "print instruction-count statistics on exit")
	strictIntegers := flag.Bool("strict-integers", false, "narrow the integer range to 32-bit signed")
	overflowIsError := flag.Bool("overflow-error", false, "raise an error on integer overflow instead of wrapping")
	strictModulo := flag.Bool("strict-modulo", false, "reject negative operands to %")
	allowBlockBool := flag.Bool("allow-block-bool", false, "allow converting a BLOCK to a boolean")
	permissiveIndex := flag.Bool("permissive-index", false, "clamp out-of-range GET/SET indices to the sequence instead of erroring")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for the RANDOM source")
	flag.Parse()

	var source string
	switch {
	case *file != "" && *expr != "":
		err = errors.New("only one of -f or -e may be given")
		return
	case *file != "":
		var b []byte
		b, err = os.ReadFile(*file)
		if err != nil {
			err = errors.Wrap(err, "read program")
			return
		}
		source = string(b)
	case *expr != "":
		source = *expr
	default:
		err = errors.New("usage: knight -f filename | -e expression")
		return
	}

	opts := value.Options{
		StrictIntegers:      *strictIntegers,
		OverflowIsError:     *overflowIsError,
		StrictModulo:        *strictModulo,
		AllowBlockToBoolean: *allowBlockBool,
		PermissiveIndexing:  *permissiveIndex,
	}

	gc := value.NewCollector()
	var program *compiler.Program
	program, err = compiler.Compile(source, gc, opts)
	if err != nil {
		err = errors.Wrap(err, "compile")
		return
	}
	if disassemble {
		compiler.Disassemble(program, os.Stderr)
	}

	environment := env.NewStdio(os.Stdin, os.Stdout, *seed)
	var instance *vm.Instance
	instance, err = vm.New(program, gc, environment, vm.WithOptions(opts))
	if err != nil {
		err = errors.Wrap(err, "initialize VM")
		return
	}

	start := time.Now()
	_, err = instance.Run()
	if execStats {
		elapsed := time.Since(start)
		fmt.Fprintf(os.Stderr, "executed %d instructions in %v\n", instance.InstructionCount(), elapsed)
	}
	gc.Shutdown()
}
