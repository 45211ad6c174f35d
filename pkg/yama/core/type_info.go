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
package core

import (
	"fmt"

	"github.com/TirousCoded/Yama-sub005/pkg/yama/str"
)

// TypeKind tags the three kinds of TypeInfo. The set is closed; see the
// array-length assertion below.
type TypeKind uint8

// The closed set of type kinds.
const (
	PrimitiveKind TypeKind = iota
	FunctionKind
	StructKind

	numKinds
)

// NumKinds is the frozen cardinality of TypeKind.
const NumKinds = int(numKinds)

var (
	_ [NumKinds - 3]int
	_ [3 - NumKinds]int
)

func (k TypeKind) String() string {
	switch k {
	case PrimitiveKind:
		return "primitive"
	case FunctionKind:
		return "function"
	case StructKind:
		return "struct"
	default:
		return fmt.Sprintf("<unknown-kind(%d)>", uint8(k))
	}
}

// PType enumerates the six built-in primitive types.
type PType uint8

// The closed set of primitive types.
const (
	IntPType PType = iota
	UIntPType
	FloatPType
	BoolPType
	CharPType
	NonePType

	numPTypes
)

// NumPTypes is the frozen cardinality of PType.
const NumPTypes = int(numPTypes)

var (
	_ [NumPTypes - 6]int
	_ [6 - NumPTypes]int
)

func (p PType) String() string {
	switch p {
	case IntPType:
		return "Int"
	case UIntPType:
		return "UInt"
	case FloatPType:
		return "Float"
	case BoolPType:
		return "Bool"
	case CharPType:
		return "Char"
	case NonePType:
		return "None"
	default:
		return fmt.Sprintf("<unknown-ptype(%d)>", uint8(p))
	}
}

// CallFn is a native call body: a host function invoked directly by the
// interpreter instead of executing bytecode. It receives the executing
// Context (as an opaque `any` here, to avoid a package-cycle with
// pkg/yama/context; the interp package passes it on as is, and the body
// asserts it to *context.Context itself).
type CallFn func(ctx any)

// PrimitiveInfo is the body of a primitive TypeInfo.
type PrimitiveInfo struct {
	PType PType
}

// FunctionInfo is the body of a function TypeInfo.
type FunctionInfo struct {
	// Callsig describes this function's parameter and return types by
	// index into the owning TypeInfo's constant table.
	Callsig CallSigInfo
	// CallFn is non-nil for a native function; nil for a bytecode function.
	CallFn CallFn
	// MaxLocals is the size of the register file allocated for a call to
	// this function.
	MaxLocals uint32
	// Code is the bytecode body; empty for a native function.
	Code *Code
	// Syms carries debug origins for Code; empty for a native function.
	Syms *Syms
}

// IsNative reports whether this function is implemented as a native call
// body rather than bytecode.
func (f FunctionInfo) IsNative() bool {
	return f.CallFn != nil
}

// StructInfo is the body of a struct TypeInfo. The covered core defines no
// fields beyond the kind tag itself.
type StructInfo struct{}

// TypeInfo is a named, self-contained unit of compiled code: an unqualified
// name, a constant table, and a body describing what kind of type this is.
type TypeInfo struct {
	UnqualifiedName str.Str
	Consts          *ConstTableInfo
	Kind            TypeKind
	Primitive       PrimitiveInfo
	Function        FunctionInfo
	Struct          StructInfo

	// verified caches the outcome of the static verifier so that
	// re-verifying an already-verified TypeInfo is a cheap no-op.
	verified *bool
}

// NewPrimitiveTypeInfo constructs a primitive TypeInfo.
func NewPrimitiveTypeInfo(name str.Str, consts *ConstTableInfo, ptype PType) *TypeInfo {
	return &TypeInfo{
		UnqualifiedName: name,
		Consts:          consts,
		Kind:            PrimitiveKind,
		Primitive:       PrimitiveInfo{PType: ptype},
	}
}

// NewFunctionTypeInfo constructs a function TypeInfo.
func NewFunctionTypeInfo(name str.Str, consts *ConstTableInfo, fn FunctionInfo) *TypeInfo {
	return &TypeInfo{
		UnqualifiedName: name,
		Consts:          consts,
		Kind:            FunctionKind,
		Function:        fn,
	}
}

// NewStructTypeInfo constructs a struct TypeInfo.
func NewStructTypeInfo(name str.Str, consts *ConstTableInfo) *TypeInfo {
	return &TypeInfo{
		UnqualifiedName: name,
		Consts:          consts,
		Kind:            StructKind,
		Struct:          StructInfo{},
	}
}

// MarkVerified caches a verification verdict on this TypeInfo.
func (t *TypeInfo) MarkVerified(ok bool) {
	t.verified = &ok
}

// Verified returns the cached verification verdict, if any.
func (t *TypeInfo) Verified() (bool, bool) {
	if t.verified == nil {
		return false, false
	}

	return *t.verified, true
}
