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

// Frames track the nested CALL/RETURN return addresses. A frame is just a
// PC: the operand stack and variable array are shared globally across
// every frame, per the language's scoping (a Block closes over the global
// variable table, not a private environment), so there is nothing else to
// save or restore. Grounded on db47h-ngaro/vm/core.go's address stack
// (i.address / Rpush / Rpop), adapted from raw Cells to plain ints since
// Knight frames carry no other state.
type frames struct {
	ret []int
}

func (f *frames) push(returnPC int) { f.ret = append(f.ret, returnPC) }

func (f *frames) pop() (int, bool) {
	if len(f.ret) == 0 {
		return 0, false
	}
	pc := f.ret[len(f.ret)-1]
	f.ret = f.ret[:len(f.ret)-1]
	return pc, true
}

func (f *frames) depth() int { return len(f.ret) }
