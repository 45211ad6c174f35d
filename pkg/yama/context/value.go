// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package context implements per-execution state: a value stack and
// bounded call-frame stack driven by a small host-facing command API,
// sharing ownership of the domain that resolved its types.
package context

import (
	"math"

	"github.com/TirousCoded/Yama-sub005/pkg/yama/core"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/domain"
)

// Value is a tagged register/stack slot: either the *none* state (Ty == nil)
// or a concrete value of Ty's primitive kind packed into Bits
// (two's-complement int64, uint64, IEEE-754 binary64, a widened byte for
// bool, a Unicode scalar for char).
type Value struct {
	Ty   *domain.Type
	Bits uint64
}

// None is the zero Value: the *none* state.
var None = Value{}

// IsNone reports whether v is in the *none* state.
func (v Value) IsNone() bool {
	return v.Ty == nil
}

// NewInt constructs an Int value. t must resolve to the Int primitive type.
func NewInt(t *domain.Type, i int64) Value {
	return Value{Ty: t, Bits: uint64(i)}
}

// NewUInt constructs a UInt value.
func NewUInt(t *domain.Type, u uint64) Value {
	return Value{Ty: t, Bits: u}
}

// NewFloat constructs a Float value.
func NewFloat(t *domain.Type, f float64) Value {
	return Value{Ty: t, Bits: math.Float64bits(f)}
}

// NewBool constructs a Bool value.
func NewBool(t *domain.Type, b bool) Value {
	bits := uint64(0)
	if b {
		bits = 1
	}

	return Value{Ty: t, Bits: bits}
}

// NewChar constructs a Char value.
func NewChar(t *domain.Type, c rune) Value {
	return Value{Ty: t, Bits: uint64(uint32(c))}
}

// Int unpacks v as a signed 64-bit integer.
func (v Value) Int() int64 {
	return int64(v.Bits)
}

// UInt unpacks v as an unsigned 64-bit integer.
func (v Value) UInt() uint64 {
	return v.Bits
}

// Float unpacks v as an IEEE-754 binary64 float.
func (v Value) Float() float64 {
	return math.Float64frombits(v.Bits)
}

// Bool unpacks v as a boolean.
func (v Value) Bool() bool {
	return v.Bits != 0
}

// Char unpacks v as a Unicode scalar.
func (v Value) Char() rune {
	return rune(uint32(v.Bits))
}

// SameType reports whether v and other hold values of the identical type,
// the compatibility test "copy A B" requires.
func (v Value) SameType(other Value) bool {
	if v.IsNone() || other.IsNone() {
		return v.IsNone() == other.IsNone()
	}

	return v.Ty == other.Ty
}

// PType reports the primitive tag of v's type, if v holds a primitive.
func (v Value) PType() (core.PType, bool) {
	if v.IsNone() || v.Ty.Kind() != core.PrimitiveKind {
		return 0, false
	}

	return v.Ty.Info().Primitive.PType, true
}
