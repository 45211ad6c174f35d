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
	"fmt"

	"github.com/TirousCoded/Yama-sub005/pkg/yama/debug"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/source"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/str"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/verifier"
)

// Resolve looks up a fully-qualified name, importing the module and
// verifying the type it names if this is the first time it has been seen.
// fromHead is the parcel head performing the lookup, used to translate the
// spec's own "self" relative head and any non-builtin head through the
// importer's dependency map. Resolution is idempotent: resolving the same
// canonical name twice returns the identical *Type.
func (d *Domain) Resolve(fromHead string, spec string) (*Type, error) {
	name, err := ParseQualifiedName(spec)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", spec, err)
	}

	if name.HasArgs {
		return nil, fmt.Errorf("resolve %q: parameterized (generic) types are not supported", spec)
	}

	if !name.HasMember {
		return nil, fmt.Errorf("resolve %q: a type name is required", spec)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	head := name.Head.String()
	if head == "self" {
		head = fromHead
	} else if head != builtinHead {
		producer, ok := d.deps[depKey{consumer: fromHead, depName: head}]
		if !ok {
			return nil, fmt.Errorf("resolve %q: %q has no dependency mapping for %q", spec, fromHead, head)
		}

		head = producer
	}

	// The registry is keyed by the canonical fully-qualified name, with the
	// head already translated: "self:X" resolved from two different parcels
	// must never share an entry, and a dependency alias must land on the
	// same entry as the producer's own name for it.
	name.Head = str.New(head)
	full := name.Fullname()

	if cached, ok := d.registry[full]; ok {
		return cached, nil
	}

	parcel, ok := d.parcels[head]
	if !ok {
		return nil, fmt.Errorf("resolve %q: unknown parcel %q", spec, head)
	}

	mkey := moduleKey{head: head, path: name.Tail.String()}

	module, ok := d.modules[mkey]
	if !ok {
		module, ok = parcel.Import(name.Tail.String())
		if !ok {
			return nil, fmt.Errorf("resolve %q: parcel %q has no module %q", spec, head, name.Tail.String())
		}

		d.modules[mkey] = module
	}

	info, ok := module.Get(name.Member)
	if !ok {
		return nil, fmt.Errorf("resolve %q: module has no type %q", spec, name.Member.String())
	}

	collector := source.NewCollectingSink(d.sink)
	if !verifier.Verify(collector, info) {
		return nil, fmt.Errorf("resolve %q: type %q failed static verification: %v",
			spec, name.Member.String(), collector.Maps.Errors())
	}

	resolved := &Type{domain: d, fullname: full, head: head, info: info}
	d.registry[full] = resolved

	debug.Emit(d.sink, debug.General, "resolved %q", full)

	return resolved, nil
}
