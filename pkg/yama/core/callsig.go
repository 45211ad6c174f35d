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
	"slices"
	"strings"
)

// CallSigInfo identifies a function's parameter and return types by index
// into the owning ConstTableInfo, rather than by direct reference. This
// keeps TypeInfo acyclic: a function's signature never needs to hold a live
// Type handle, only an index resolved later by the domain.
type CallSigInfo struct {
	paramIndices []uint32
	returnIndex  uint32
}

// NewCallSigInfo constructs a CallSigInfo from parameter indices (in
// declared order) and a return index.
func NewCallSigInfo(paramIndices []uint32, returnIndex uint32) CallSigInfo {
	return CallSigInfo{paramIndices: slices.Clone(paramIndices), returnIndex: returnIndex}
}

// Params returns the parameter indices in declared order.
func (c CallSigInfo) Params() []uint32 {
	return c.paramIndices
}

// ParamCount returns the number of parameters.
func (c CallSigInfo) ParamCount() int {
	return len(c.paramIndices)
}

// ReturnIndex returns the constant-table index of the return type.
func (c CallSigInfo) ReturnIndex() uint32 {
	return c.returnIndex
}

// Eq reports structural equality: the same parameter indices in the same
// order and the same return index.
func (c CallSigInfo) Eq(other CallSigInfo) bool {
	return c.returnIndex == other.returnIndex && slices.Equal(c.paramIndices, other.paramIndices)
}

// VerifyIndices reports whether every parameter index and the return index
// is strictly less than the size of the given constant table.
func (c CallSigInfo) VerifyIndices(consts *ConstTableInfo) bool {
	n := uint32(consts.Size())

	for _, idx := range c.paramIndices {
		if idx >= n {
			return false
		}
	}

	return c.returnIndex < n
}

// Fmt renders the signature as "fn(a, b, c) -> r", quoting each index by the
// fully-qualified name of the constant it references. An out-of-bounds index
// renders as "<out-of-bounds(N)>" rather than panicking - a legal formatting
// outcome, though never a legal verified state.
func (c CallSigInfo) Fmt(consts *ConstTableInfo) string {
	var b strings.Builder

	b.WriteString("fn(")

	for i, idx := range c.paramIndices {
		if i != 0 {
			b.WriteString(", ")
		}

		b.WriteString(renderIndex(consts, idx))
	}

	b.WriteString(") -> ")
	b.WriteString(renderIndex(consts, c.returnIndex))

	return b.String()
}

func renderIndex(consts *ConstTableInfo, idx uint32) string {
	if name, ok := consts.Fullname(int(idx)); ok {
		return name.String()
	}

	return fmt.Sprintf("<out-of-bounds(%d)>", idx)
}
