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

import (
	"fmt"
	"sync/atomic"

	"github.com/TirousCoded/Yama-sub005/pkg/yama/core"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/debug"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/domain"
)

// DefaultMaxFrames is the default call-frame depth bound.
const DefaultMaxFrames = 1024

// hostHead is the "importing parcel head" Context passes to domain
// resolution when host code pushes a type by spec string directly (as
// opposed to a function resolving a name relative to its own module). No
// parcel of this name is installed, so "self" from here names no parcel;
// built-in "yama" specs resolve, and any other head resolves only through a
// dependency mapping whose consumer is "$host".
const hostHead = "$host"

// Dispatcher executes a call to fn with the given arguments. It is
// implemented by the interp package and registered with SetDispatcher at
// program init; Context cannot import interp directly without creating an
// import cycle (interp needs *Context to execute against).
type Dispatcher interface {
	Invoke(ctx *Context, fn *domain.Type, args []Value) (ret Value, ok bool)
}

var dispatcher Dispatcher

// SetDispatcher installs the interpreter as the executor behind the
// host-facing call command. It is meant to be called exactly once, from the
// interp package's init function.
func SetDispatcher(d Dispatcher) {
	dispatcher = d
}

// Context is per-execution state: a bounded call-frame stack, a host-facing
// value stack, and panic state, sharing ownership of the domain that
// resolved its types. Dropping the last Context does not drop the domain.
type Context struct {
	dm        *domain.Domain
	sink      debug.Sink
	frames    []*Frame
	maxFrames int
	stack     []Value
	panic     PanicState
	cancel    atomic.Bool

	builtins map[core.PType]*domain.Type
}

// New constructs a Context over dm with the default frame-depth bound.
func New(dm *domain.Domain, sink debug.Sink) *Context {
	return NewWithMaxFrames(dm, sink, DefaultMaxFrames)
}

// NewWithMaxFrames constructs a Context with a custom frame-depth bound.
func NewWithMaxFrames(dm *domain.Domain, sink debug.Sink, maxFrames int) *Context {
	ctx := &Context{
		dm:        dm,
		sink:      sink,
		maxFrames: maxFrames,
		builtins:  make(map[core.PType]*domain.Type, core.NumPTypes),
	}

	for _, pt := range []core.PType{
		core.IntPType, core.UIntPType, core.FloatPType,
		core.BoolPType, core.CharPType, core.NonePType,
	} {
		ty, err := dm.Resolve(hostHead, "yama:"+pt.String())
		if err != nil {
			// Built-ins are seeded unconditionally by domain.New; failure
			// here means the domain passed in was not constructed through
			// domain.New.
			panic(fmt.Sprintf("context: domain missing built-in %s: %v", pt, err))
		}

		ctx.builtins[pt] = ty
	}

	return ctx
}

// Builtin returns the resolved Type for a built-in primitive kind.
func (ctx *Context) Builtin(pt core.PType) *domain.Type {
	return ctx.builtins[pt]
}

// Domain returns the domain this context shares ownership of.
func (ctx *Context) Domain() *domain.Domain {
	return ctx.dm
}

// RequestCancel sets the cooperative cancellation bit. The interpreter
// observes it at branch-taken and call boundaries.
func (ctx *Context) RequestCancel() {
	ctx.cancel.Store(true)
}

// CancelRequested reports whether cancellation has been requested.
func (ctx *Context) CancelRequested() bool {
	return ctx.cancel.Load()
}

// ClearCancel resets the cooperative cancellation bit.
func (ctx *Context) ClearCancel() {
	ctx.cancel.Store(false)
}

// Depth returns the current call-frame depth.
func (ctx *Context) Depth() int {
	return len(ctx.frames)
}

// TopFrame returns the innermost active frame, or nil if none is active.
func (ctx *Context) TopFrame() *Frame {
	if len(ctx.frames) == 0 {
		return nil
	}

	return ctx.frames[len(ctx.frames)-1]
}

// PushFrame allocates and pushes a new frame for a call to fn with the
// given arguments, returning it. It fails (returning nil, false and raising
// a StackOverflowPanic) if doing so would exceed the configured maximum
// depth.
func (ctx *Context) PushFrame(fn *domain.Type, args []Value, dest uint32, isNR bool) (*Frame, bool) {
	if len(ctx.frames) >= ctx.maxFrames {
		ctx.raise(StackOverflowPanic, "call depth exceeds maximum of %d", ctx.maxFrames)
		return nil, false
	}

	f := newFrame(fn, args, dest, isNR)
	ctx.frames = append(ctx.frames, f)

	debug.Emit(ctx.sink, debug.CtxLLCmd, "pushed frame for %s (depth now %d)", fn.Fullname(), len(ctx.frames))

	return f, true
}

// PopFrame removes and returns the innermost active frame.
func (ctx *Context) PopFrame() *Frame {
	n := len(ctx.frames)
	if n == 0 {
		return nil
	}

	f := ctx.frames[n-1]
	ctx.frames = ctx.frames[:n-1]

	return f
}

// unwindToEntry releases every frame above the frame active when the
// current top-level execution call began. Frame release is scoped to the
// execution call that pushed them.
func (ctx *Context) unwindToEntry(entryDepth int) {
	for len(ctx.frames) > entryDepth {
		ctx.frames = ctx.frames[:len(ctx.frames)-1]
	}
}

// Invoke drives a call to fn with args through the registered dispatcher. It
// is the entry point of the host-facing Call command and of top-level host
// calls; the "call"/"call_nr" bytecode instructions call into the
// interpreter directly.
func (ctx *Context) Invoke(fn *domain.Type, args []Value) (Value, bool) {
	if dispatcher == nil {
		panic("context: no dispatcher registered (import pkg/yama/interp for side effects)")
	}

	if !fn.Callable() {
		ctx.raise(NonCallablePanic, "value of type %s is not callable", fn.Fullname())
		return None, false
	}

	entryDepth := len(ctx.frames)

	ret, ok := dispatcher.Invoke(ctx, fn, args)
	if !ok {
		ctx.unwindToEntry(entryDepth)
		return None, false
	}

	return ret, true
}
