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

// ModuleInfo is a mapping from unqualified type name to the TypeInfo it
// owns, within a single parcel.
type ModuleInfo struct {
	types map[string]*TypeInfo
	order []string
}

// ModuleFactory builds a ModuleInfo while enforcing uniqueness of
// unqualified names: attempting to add two types under the same name
// returns an error instead of silently overwriting the first.
type ModuleFactory struct {
	module *ModuleInfo
}

// NewModuleFactory constructs an empty builder.
func NewModuleFactory() *ModuleFactory {
	return &ModuleFactory{module: &ModuleInfo{types: make(map[string]*TypeInfo)}}
}

// Add registers a type under its own UnqualifiedName. It returns an error if
// a type of that name has already been added.
func (f *ModuleFactory) Add(t *TypeInfo) error {
	name := t.UnqualifiedName.String()

	if _, exists := f.module.types[name]; exists {
		return fmt.Errorf("duplicate unqualified name %q in module", name)
	}

	f.module.types[name] = t
	f.module.order = append(f.module.order, name)

	return nil
}

// Done finalizes the module under construction.
func (f *ModuleFactory) Done() *ModuleInfo {
	return f.module
}

// Get looks up a type by its unqualified name.
func (m *ModuleInfo) Get(name str.Str) (*TypeInfo, bool) {
	t, ok := m.types[name.String()]
	return t, ok
}

// Names returns the unqualified names declared in this module, in
// declaration order.
func (m *ModuleInfo) Names() []string {
	return m.order
}

// Len returns the number of types declared in this module.
func (m *ModuleInfo) Len() int {
	return len(m.order)
}
