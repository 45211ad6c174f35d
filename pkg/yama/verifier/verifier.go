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

// Package verifier implements the static verifier: a whole-descriptor
// well-formedness check that every TypeInfo must pass before the
// interpreter is allowed to execute it. It never panics on malformed
// input - every failure is reported as a diagnostic to the configured sink
// and reflected in a false return value.
package verifier

import (
	"github.com/TirousCoded/Yama-sub005/pkg/yama/core"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/debug"
)

// Verify checks whether t is well-formed, emitting diagnostics to sink (a
// nil sink discards them) for every problem found. Re-verifying an
// already-verified TypeInfo is a no-op that returns the cached verdict.
func Verify(sink debug.Sink, t *core.TypeInfo) bool {
	if v, ok := t.Verified(); ok {
		return v
	}

	ok := verify(sink, t)
	t.MarkVerified(ok)

	return ok
}

func verify(sink debug.Sink, t *core.TypeInfo) bool {
	ok := true

	// Every type constant's embedded call signature (if any) must index
	// within this type's own constant table.
	for i := 0; i < t.Consts.Size(); i++ {
		if cs, has := t.Consts.Callsig(i); has {
			if !cs.VerifyIndices(t.Consts) {
				debug.Emit(sink, debug.Compile,
					"type %s: constant %d has a callsig with an out-of-bounds index",
					t.UnqualifiedName, i)

				ok = false
			}
		}
	}

	switch t.Kind {
	case core.PrimitiveKind:
		// "A primitive constant never carries a callsig" holds
		// structurally: PrimitiveTypeConstInfo has no Callsig field.
	case core.FunctionKind:
		if !verifyFunction(sink, t) {
			ok = false
		}
	case core.StructKind:
		// The covered core defines no extra fields for struct bodies.
	}

	return ok
}

func verifyFunction(sink debug.Sink, t *core.TypeInfo) bool {
	var (
		fn = t.Function
		ok = true
	)

	// "A function constant always carries a callsig" holds structurally:
	// the Callsig field of FunctionInfo is not optional in this model.
	if !fn.Callsig.VerifyIndices(t.Consts) {
		debug.Emit(sink, debug.Compile,
			"type %s: own callsig has an out-of-bounds index", t.UnqualifiedName)

		ok = false
	}

	// max_locals must be at least params + 1 (the return slot).
	needed := uint32(fn.Callsig.ParamCount()) + 1
	if fn.MaxLocals < needed {
		debug.Emit(sink, debug.Compile,
			"type %s: max_locals (%d) is less than params+1 (%d)",
			t.UnqualifiedName, fn.MaxLocals, needed)

		ok = false
	}

	if fn.IsNative() {
		return ok
	}

	if !verifyBytecode(sink, t, fn) {
		ok = false
	}

	return ok
}
