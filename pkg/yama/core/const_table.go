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
	"strings"

	"github.com/TirousCoded/Yama-sub005/pkg/yama/str"
)

// ConstTableInfo is an ordered, append-only pool of ConstEntry values owned
// by a single TypeInfo. Once a type has been built, its table is never
// mutated again; every accessor below is total, returning an absent value
// for an out-of-range index or a kind mismatch rather than panicking.
type ConstTableInfo struct {
	entries []ConstEntry
}

// NewConstTableInfo constructs an empty table ready for chained Add* calls.
func NewConstTableInfo() *ConstTableInfo {
	return &ConstTableInfo{}
}

// AddInt appends a signed-integer constant.
func (t *ConstTableInfo) AddInt(v int64) *ConstTableInfo {
	t.entries = append(t.entries, ConstEntry{kind: IntConst, payload: IntConstInfo{v}})
	return t
}

// AddUInt appends an unsigned-integer constant.
func (t *ConstTableInfo) AddUInt(v uint64) *ConstTableInfo {
	t.entries = append(t.entries, ConstEntry{kind: UIntConst, payload: UIntConstInfo{v}})
	return t
}

// AddFloat appends a floating-point constant.
func (t *ConstTableInfo) AddFloat(v float64) *ConstTableInfo {
	t.entries = append(t.entries, ConstEntry{kind: FloatConst, payload: FloatConstInfo{v}})
	return t
}

// AddBool appends a boolean constant.
func (t *ConstTableInfo) AddBool(v bool) *ConstTableInfo {
	t.entries = append(t.entries, ConstEntry{kind: BoolConst, payload: BoolConstInfo{v}})
	return t
}

// AddChar appends a character constant. It panics if v is a UTF-16 surrogate,
// which is never a valid Unicode scalar value.
func (t *ConstTableInfo) AddChar(v rune) *ConstTableInfo {
	if v >= 0xD800 && v <= 0xDFFF {
		panic("char constant cannot be a surrogate")
	}

	t.entries = append(t.entries, ConstEntry{kind: CharConst, payload: CharConstInfo{v}})

	return t
}

// AddPrimitiveType appends a reference to a primitive type by fully-qualified
// name.
func (t *ConstTableInfo) AddPrimitiveType(fullname str.Str) *ConstTableInfo {
	t.entries = append(t.entries, ConstEntry{kind: PrimitiveTypeConst, payload: PrimitiveTypeConstInfo{fullname}})
	return t
}

// AddFunctionType appends a reference to a function type by fully-qualified
// name, together with its call signature.
func (t *ConstTableInfo) AddFunctionType(fullname str.Str, callsig CallSigInfo) *ConstTableInfo {
	t.entries = append(t.entries, ConstEntry{
		kind:    FunctionTypeConst,
		payload: FunctionTypeConstInfo{fullname, callsig},
	})

	return t
}

// Size returns the number of entries in the table.
func (t *ConstTableInfo) Size() int {
	return len(t.entries)
}

// Entries returns the underlying entries. Callers must not mutate the
// returned slice.
func (t *ConstTableInfo) Entries() []ConstEntry {
	return t.entries
}

// ConstKindAt returns the declared tag of entry i, or false if i is
// out-of-range.
func (t *ConstTableInfo) ConstKindAt(i int) (ConstKind, bool) {
	if i < 0 || i >= len(t.entries) {
		return 0, false
	}

	return t.entries[i].kind, true
}

// Kind returns the type kind (primitive or function) referenced by entry i,
// and false for anything other than a type constant or an out-of-range
// index.
func (t *ConstTableInfo) Kind(i int) (TypeKind, bool) {
	if i < 0 || i >= len(t.entries) {
		return 0, false
	}

	switch t.entries[i].kind {
	case PrimitiveTypeConst:
		return PrimitiveKind, true
	case FunctionTypeConst:
		return FunctionKind, true
	default:
		return 0, false
	}
}

// Fullname returns the fully-qualified name referenced by entry i, and false
// for anything other than a type constant or an out-of-range index.
func (t *ConstTableInfo) Fullname(i int) (str.Str, bool) {
	if i < 0 || i >= len(t.entries) {
		return str.Str{}, false
	}

	return t.entries[i].Fullname()
}

// Callsig returns the call signature of entry i, and false for anything
// other than a function-type constant or an out-of-range index.
func (t *ConstTableInfo) Callsig(i int) (CallSigInfo, bool) {
	if i < 0 || i >= len(t.entries) {
		return CallSigInfo{}, false
	}

	return t.entries[i].Callsig()
}

// Get returns entry i's payload as K, and false if i is out-of-range or the
// entry does not carry a K payload. K should be one of the *ConstInfo
// payload structs (e.g. IntConstInfo).
func Get[K any](t *ConstTableInfo, i int) (K, bool) {
	return getConst[K](t, i)
}

func (t *ConstTableInfo) String() string {
	var b strings.Builder

	b.WriteByte('[')

	for i, e := range t.entries {
		if i != 0 {
			b.WriteString(", ")
		}

		b.WriteString(e.String())
	}

	b.WriteByte(']')

	return b.String()
}
