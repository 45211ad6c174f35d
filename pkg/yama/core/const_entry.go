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

// ConstKind tags the seven kinds of ConstEntry. The set is closed; see the
// array-length assertion below.
type ConstKind uint8

// The closed set of constant kinds.
const (
	IntConst ConstKind = iota
	UIntConst
	FloatConst
	BoolConst
	CharConst
	PrimitiveTypeConst
	FunctionTypeConst

	numConstKinds
)

// NumConstKinds is the frozen cardinality of ConstKind.
const NumConstKinds = int(numConstKinds)

// Compile-time assertion that NumConstKinds == 7 in both directions: this
// fails to compile if a kind is ever added or removed without updating the
// constant below.
var (
	_ [NumConstKinds - 7]int
	_ [7 - NumConstKinds]int
)

func (k ConstKind) String() string {
	switch k {
	case IntConst:
		return "int"
	case UIntConst:
		return "uint"
	case FloatConst:
		return "float"
	case BoolConst:
		return "bool"
	case CharConst:
		return "char"
	case PrimitiveTypeConst:
		return "primitive_type"
	case FunctionTypeConst:
		return "function_type"
	default:
		return fmt.Sprintf("<unknown-const-kind(%d)>", uint8(k))
	}
}

// IntConstInfo is the payload of an IntConst entry.
type IntConstInfo struct{ Value int64 }

// UIntConstInfo is the payload of a UIntConst entry.
type UIntConstInfo struct{ Value uint64 }

// FloatConstInfo is the payload of a FloatConst entry.
type FloatConstInfo struct{ Value float64 }

// BoolConstInfo is the payload of a BoolConst entry.
type BoolConstInfo struct{ Value bool }

// CharConstInfo is the payload of a CharConst entry. Value is a Unicode
// scalar value; surrogates are rejected by whoever constructs this (see
// ConstTableInfo.AddChar).
type CharConstInfo struct{ Value rune }

// PrimitiveTypeConstInfo is the payload of a PrimitiveTypeConst entry: a
// reference to a primitive type by its fully-qualified name.
type PrimitiveTypeConstInfo struct{ Fullname str.Str }

// FunctionTypeConstInfo is the payload of a FunctionTypeConst entry: a
// reference to a function type by its fully-qualified name, plus the call
// signature describing how it may be invoked.
type FunctionTypeConstInfo struct {
	Fullname str.Str
	Callsig  CallSigInfo
}

// ConstEntry is a single tagged-union slot in a ConstTableInfo.
type ConstEntry struct {
	kind    ConstKind
	payload any
}

// Kind returns the tag of this entry.
func (e ConstEntry) Kind() ConstKind {
	return e.kind
}

// IsTypeConst reports whether this entry names a type (primitive or
// function), as opposed to carrying an immediate value.
func (e ConstEntry) IsTypeConst() bool {
	return e.kind == PrimitiveTypeConst || e.kind == FunctionTypeConst
}

// Fullname returns the fully-qualified name referenced by a type constant,
// and false for any other kind.
func (e ConstEntry) Fullname() (str.Str, bool) {
	switch p := e.payload.(type) {
	case PrimitiveTypeConstInfo:
		return p.Fullname, true
	case FunctionTypeConstInfo:
		return p.Fullname, true
	default:
		return str.Str{}, false
	}
}

// Callsig returns the call signature of a function-type constant, and false
// for any other kind.
func (e ConstEntry) Callsig() (CallSigInfo, bool) {
	if p, ok := e.payload.(FunctionTypeConstInfo); ok {
		return p.Callsig, true
	}

	return CallSigInfo{}, false
}

func (e ConstEntry) String() string {
	switch p := e.payload.(type) {
	case IntConstInfo:
		return fmt.Sprintf("%d", p.Value)
	case UIntConstInfo:
		return fmt.Sprintf("%du", p.Value)
	case FloatConstInfo:
		return fmt.Sprintf("%g", p.Value)
	case BoolConstInfo:
		return fmt.Sprintf("%t", p.Value)
	case CharConstInfo:
		return fmt.Sprintf("%q", p.Value)
	case PrimitiveTypeConstInfo:
		return p.Fullname.String()
	case FunctionTypeConstInfo:
		return p.Fullname.String()
	default:
		return "<invalid-const>"
	}
}

// getConst type-asserts entry i's payload to K, returning false if i is out
// of range or the entry is not of kind K's corresponding tag.
func getConst[K any](t *ConstTableInfo, i int) (K, bool) {
	var zero K

	if i < 0 || i >= len(t.entries) {
		return zero, false
	}

	v, ok := t.entries[i].payload.(K)
	if !ok {
		return zero, false
	}

	return v, true
}
