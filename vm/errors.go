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

package vm

import (
	"fmt"

	"github.com/knight-bytecode/knight/compiler"
)

// UndefinedVariableError reports a GetVar of a variable that has never
// been the target of a SetVar/SetVarPop.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable: %s", e.Name)
}

// RuntimeError wraps an error raised while executing the instruction at
// Pos with the source location the compiler recorded for it.
type RuntimeError struct {
	Pos compiler.SourcePos
	Err error
}

func (e *RuntimeError) Error() string { return fmt.Sprintf("%s: %v", e.Pos, e.Err) }
func (e *RuntimeError) Unwrap() error { return e.Err }
func (e *RuntimeError) Cause() error  { return e.Err } // github.com/pkg/errors convention
