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

import "strconv"

// Dump renders v the way the `D` operator presents it to the program's
// output stream: a debug form distinct from to_string, with strings
// quoted/escaped and lists bracketed and comma-separated.
func Dump(v Value) string {
	switch v.kind {
	case Null:
		return "null"
	case Boolean:
		b, _ := v.AsBoolean()
		if b {
			return "true"
		}
		return "false"
	case Integer:
		n, _ := v.AsInteger()
		return strconv.FormatInt(n, 10)
	case Block:
		pc, _ := v.AsBlock()
		return "Block(" + strconv.Itoa(pc) + ")"
	case String:
		c, _ := v.AsString()
		return strconv.Quote(string(c.Bytes()))
	case List:
		c, _ := v.AsList()
		elems := c.Elements()
		s := "["
		for i, el := range elems {
			if i > 0 {
				s += ", "
			}
			s += Dump(el)
		}
		return s + "]"
	default:
		return "<invalid>"
	}
}
