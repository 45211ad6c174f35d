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

// Package interp implements the dispatch loop: per-instruction bytecode
// semantics executed over a *context.Context, plus the native-call and
// cross-call machinery shared between bytecode "call"/"call_nr" and the
// host-facing command API.
package interp

import (
	"github.com/TirousCoded/Yama-sub005/pkg/yama/context"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/core"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/domain"
)

// dispatcher is the sole implementation of context.Dispatcher, registered
// against every Context at package init. It carries no state of its own;
// all state lives on the Context and Frame it is given.
type dispatcher struct{}

func init() {
	context.SetDispatcher(dispatcher{})
}

// Invoke implements context.Dispatcher.
func (dispatcher) Invoke(ctx *context.Context, fn *domain.Type, args []context.Value) (context.Value, bool) {
	return invokeFunction(ctx, fn, args, 0, true)
}

// invokeFunction pushes a frame for a call to fn with args, runs it to
// completion (native call or bytecode loop), pops the frame, and returns its
// result. dest/isNR are recorded on the frame for the caller's bookkeeping
// but are never consulted here; register placement is the caller's job.
func invokeFunction(ctx *context.Context, fn *domain.Type, args []context.Value, dest uint32, isNR bool) (context.Value, bool) {
	if fn.Kind() != core.FunctionKind {
		ctx.Raise(context.NonCallablePanic, "value of type %s is not callable", fn.Fullname())
		return context.None, false
	}

	sig := fn.Info().Function.Callsig
	if len(args) != sig.ParamCount() {
		ctx.Raise(context.TypeMismatchPanic,
			"call to %s expects %d argument(s), got %d", fn.Fullname(), sig.ParamCount(), len(args))
		return context.None, false
	}

	frame, ok := ctx.PushFrame(fn, args, dest, isNR)
	if !ok {
		return context.None, false
	}

	defer ctx.PopFrame()

	body := fn.Info().Function
	if body.CallFn != nil {
		body.CallFn(ctx)

		if ctx.Panicked() {
			return context.None, false
		}

		return frame.Ret, true
	}

	if !runLoop(ctx, frame) {
		return context.None, false
	}

	return frame.Ret, true
}
