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

// Package domain implements the parcel/module registry: an
// atomically-installed set of named parcels, the dependency edges between
// them, and the fully-qualified-name resolver that lazily imports modules
// and verifies the types it finds, caching the result under its canonical
// name so later lookups are idempotent.
package domain

import (
	"fmt"
	"sync"

	"github.com/TirousCoded/Yama-sub005/pkg/yama/core"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/debug"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/source"
)

// depKey identifies a single dependency edge: the consuming parcel's head,
// and the name it knows the dependency by.
type depKey struct {
	consumer string
	depName  string
}

// moduleKey identifies a single imported module: a parcel head and the
// relative path passed to Parcel.Import.
type moduleKey struct {
	head string
	path string
}

// Domain holds every installed parcel (P), the dependency map between them
// (D), and the registry of resolved types (R). A Domain is safe for
// concurrent use; resolution and installation both take an internal lock,
// matching the single-writer discipline the interpreter expects of
// anything backing live Context execution.
type Domain struct {
	mu sync.Mutex

	sink debug.Sink

	parcels  map[string]core.Parcel
	deps     map[depKey]string
	modules  map[moduleKey]*core.ModuleInfo
	registry map[string]*Type
}

// New constructs an empty Domain, pre-seeded with the six built-in
// primitive types under the reserved "yama" head, reporting diagnostics to
// sink (nil discards them).
func New(sink debug.Sink) *Domain {
	d := &Domain{
		sink:     sink,
		parcels:  make(map[string]core.Parcel),
		deps:     make(map[depKey]string),
		modules:  make(map[moduleKey]*core.ModuleInfo),
		registry: make(map[string]*Type),
	}

	d.seedBuiltins()

	return d
}

// DepEntry maps, from the perspective of consumer, the dependency name
// depName onto the parcel actually named producer.
type DepEntry struct {
	Consumer string
	DepName  string
	Producer string
}

// InstallBatch is a set of parcels to add, together with the dependency
// edges required to satisfy them. Install applies a batch atomically: if
// any parcel in the batch has an unsatisfied dependency once the batch is
// merged with what is already installed, nothing in the batch is applied.
type InstallBatch struct {
	Parcels map[string]core.Parcel
	Deps    []DepEntry
}

// Install validates and, if valid, commits batch as described above. On
// failure every problem found is collected (duplicate heads, conflicting
// dependency mappings, unsatisfied dependencies) rather than stopping at the
// first, and returned together as a single error built from the collected
// source.Maps.
func (d *Domain) Install(batch InstallBatch) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var diag source.Maps

	for head := range batch.Parcels {
		if _, exists := d.parcels[head]; exists {
			diag.Addf(source.Span{}, "parcel %q is already installed", head)
		}
	}

	mergedDeps := make(map[depKey]string, len(d.deps)+len(batch.Deps))
	for k, v := range d.deps {
		mergedDeps[k] = v
	}

	for _, e := range batch.Deps {
		key := depKey{consumer: e.Consumer, depName: e.DepName}
		if existing, has := mergedDeps[key]; has && existing != e.Producer {
			diag.Addf(source.Span{}, "conflicting dependency mapping for %s's %q: %s vs %s",
				e.Consumer, e.DepName, existing, e.Producer)

			continue
		}

		mergedDeps[key] = e.Producer
	}

	for head, parcel := range batch.Parcels {
		meta := parcel.Metadata()

		for depName := range meta.DepNames {
			if _, has := mergedDeps[depKey{consumer: head, depName: depName}]; !has {
				diag.Addf(source.Span{}, "parcel %q is missing a mapping for dependency %q", head, depName)
			}
		}
	}

	if diag.HasErrors() {
		return fmt.Errorf("install rejected: %v", diag.Errors())
	}

	mergedParcels := make(map[string]core.Parcel, len(d.parcels)+len(batch.Parcels))
	for k, v := range d.parcels {
		mergedParcels[k] = v
	}
	for k, v := range batch.Parcels {
		mergedParcels[k] = v
	}

	d.parcels = mergedParcels
	d.deps = mergedDeps

	debug.Emit(d.sink, debug.General, "installed %d parcel(s)", len(batch.Parcels))

	return nil
}

// Installed reports whether a parcel named head is installed.
func (d *Domain) Installed(head string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.parcels[head]
	return ok
}
