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

import "math"

// Options governs the handful of behaviors spec.md §6/§9 leaves to a
// "strict mode" feature flag. The CLI (out of scope for this core) is the
// only thing that ever constructs a non-zero-value Options; the core
// receives it as a finalized struct, per spec.md §6.
type Options struct {
	// StrictIntegers narrows the active integer range to 32-bit signed,
	// per spec.md §3's invariant. When false, the active range is the
	// full int64 machine width.
	StrictIntegers bool

	// OverflowIsError makes arithmetic and string->integer overflow raise
	// an OverflowError instead of silently wrapping/clamping to 0.
	OverflowIsError bool

	// StrictModulo rejects negative operands to `%`, per spec.md §4.1.
	StrictModulo bool

	// AllowBlockToBoolean permits to_boolean on a Block value instead of
	// raising a TypeError (spec.md §4.1: "Blocks fail with TypeError
	// unless an option explicitly permits conversion").
	AllowBlockToBoolean bool

	// PermissiveIndexing makes Get/Set clamp an out-of-range index range to
	// the sequence's bounds instead of raising a DomainError (spec.md §9
	// Open Question 4): a GET wholly past the end returns an empty result,
	// and a SET there appends its replacement.
	PermissiveIndexing bool
}

// IntRange returns the minimum and maximum representable integer under o.
func (o Options) IntRange() (min, max int64) {
	if o.StrictIntegers {
		return math.MinInt32, math.MaxInt32
	}
	return math.MinInt64, math.MaxInt64
}

// InRange reports whether n is within the active integer range.
func (o Options) InRange(n int64) bool {
	min, max := o.IntRange()
	return n >= min && n <= max
}
