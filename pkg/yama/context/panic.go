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
package context

import "fmt"

// PanicKind tags the reason a context's top-level execution aborted.
type PanicKind uint8

const (
	// NoPanic is the zero value: no panic is currently pending.
	NoPanic PanicKind = iota
	BoundsPanic
	TypeMismatchPanic
	StackOverflowPanic
	NonCallablePanic
	ReturnTypeMismatchPanic
	CancelledPanic
)

func (k PanicKind) String() string {
	switch k {
	case NoPanic:
		return "none"
	case BoundsPanic:
		return "bounds"
	case TypeMismatchPanic:
		return "type_mismatch"
	case StackOverflowPanic:
		return "stack_overflow"
	case NonCallablePanic:
		return "non_callable"
	case ReturnTypeMismatchPanic:
		return "return_type_mismatch"
	case CancelledPanic:
		return "cancelled"
	default:
		return fmt.Sprintf("<unknown-panic-kind(%d)>", uint8(k))
	}
}

// PanicState is the information left readable on a context after a panic,
// until the flag is cleared.
type PanicState struct {
	Kind    PanicKind
	Message string
}

// Panicked reports whether ctx currently has a pending panic.
func (ctx *Context) Panicked() bool {
	return ctx.panic.Kind != NoPanic
}

// Panic returns the current panic state (NoPanic/"" if none is pending).
func (ctx *Context) Panic() PanicState {
	return ctx.panic
}

// ClearPanic resets the panic flag, making the context usable again.
func (ctx *Context) ClearPanic() {
	ctx.panic = PanicState{}
}

// raise sets the panic state. It does not itself unwind frames; callers in
// the interp package are responsible for unwinding back to the entry frame.
func (ctx *Context) raise(kind PanicKind, format string, args ...any) {
	if ctx.panic.Kind != NoPanic {
		// A panic already in flight from this execution call takes
		// precedence; do not clobber it with a secondary failure raised
		// while unwinding.
		return
	}

	ctx.panic = PanicState{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Raise lets native call bodies (and the interp package) signal a panic
// directly by setting the context's panic state.
func (ctx *Context) Raise(kind PanicKind, format string, args ...any) {
	ctx.raise(kind, format, args...)
}
