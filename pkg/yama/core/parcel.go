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

import "github.com/TirousCoded/Yama-sub005/pkg/yama/str"

// ParcelMetadata names a parcel and the other parcel heads it depends upon.
type ParcelMetadata struct {
	SelfName str.Str
	DepNames map[string]struct{}
}

// NewParcelMetadata constructs metadata for a parcel named selfName,
// depending on the given dependency names.
func NewParcelMetadata(selfName str.Str, depNames ...string) ParcelMetadata {
	deps := make(map[string]struct{}, len(depNames))
	for _, d := range depNames {
		deps[d] = struct{}{}
	}

	return ParcelMetadata{SelfName: selfName, DepNames: deps}
}

// HasDep reports whether depName is declared as a dependency.
func (m ParcelMetadata) HasDep(depName string) bool {
	_, ok := m.DepNames[depName]
	return ok
}

// Parcel is a named unit that exposes one or more modules and declares its
// dependencies. Import must be pure: it may be called multiple times for
// the same relative path and must return structurally equal modules each
// time (the domain is free to cache the first result and never call it
// again).
type Parcel interface {
	Metadata() ParcelMetadata
	Import(relativePath string) (*ModuleInfo, bool)
}
