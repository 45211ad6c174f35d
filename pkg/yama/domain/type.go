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
package domain

import (
	"github.com/TirousCoded/Yama-sub005/pkg/yama/core"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/str"
)

// Type is a resolved, verified handle on a TypeInfo, keyed by its
// fully-qualified name. User code never touches a *core.TypeInfo directly;
// Type is the non-owning view the domain hands out, and the same fullname
// always yields the same Type instance (per the idempotence guarantee of
// resolution).
type Type struct {
	domain   *Domain
	fullname string
	head     string
	info     *core.TypeInfo
}

// Head returns the parcel head that owns this type, used to resolve "self"-
// relative references appearing in its own constant table.
func (t *Type) Head() string {
	return t.head
}

// Fullname returns the canonical fully-qualified name this Type was
// resolved under.
func (t *Type) Fullname() string {
	return t.fullname
}

// Kind returns the type kind (primitive, function, or struct).
func (t *Type) Kind() core.TypeKind {
	return t.info.Kind
}

// UnqualifiedName returns the bare name, without parcel/module qualification.
func (t *Type) UnqualifiedName() str.Str {
	return t.info.UnqualifiedName
}

// Info exposes the underlying TypeInfo for the interpreter and disassembler.
// It is a read-only view: callers must not mutate the returned value.
func (t *Type) Info() *core.TypeInfo {
	return t.info
}

// Callable reports whether this type may be called (i.e. is a function).
func (t *Type) Callable() bool {
	return t.info.Kind == core.FunctionKind
}
