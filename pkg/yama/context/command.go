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

	"github.com/TirousCoded/Yama-sub005/pkg/yama/core"
)

// This file implements the host-facing command interface: the sole
// legitimate way for host code to drive the machine. Every command
// operates on the context's host-facing value stack, distinct from a
// frame's register file.

// PushNone pushes the *none* value.
func (ctx *Context) PushNone() {
	ctx.stack = append(ctx.stack, None)
}

// PushBool pushes a boolean.
func (ctx *Context) PushBool(b bool) {
	ctx.stack = append(ctx.stack, NewBool(ctx.builtins[core.BoolPType], b))
}

// PushInt pushes a signed 64-bit integer.
func (ctx *Context) PushInt(i int64) {
	ctx.stack = append(ctx.stack, NewInt(ctx.builtins[core.IntPType], i))
}

// PushUInt pushes an unsigned 64-bit integer.
func (ctx *Context) PushUInt(u uint64) {
	ctx.stack = append(ctx.stack, NewUInt(ctx.builtins[core.UIntPType], u))
}

// PushFloat pushes an IEEE-754 binary64 float.
func (ctx *Context) PushFloat(f float64) {
	ctx.stack = append(ctx.stack, NewFloat(ctx.builtins[core.FloatPType], f))
}

// PushChar pushes a Unicode scalar.
func (ctx *Context) PushChar(c rune) {
	ctx.stack = append(ctx.stack, NewChar(ctx.builtins[core.CharPType], c))
}

// PushType resolves spec against this context's domain and pushes a value
// referencing that type (its use as a callee is what "call" expects to find
// for its callee operand).
func (ctx *Context) PushType(spec string) error {
	ty, err := ctx.dm.Resolve(hostHead, spec)
	if err != nil {
		return fmt.Errorf("push_type: %w", err)
	}

	ctx.stack = append(ctx.stack, Value{Ty: ty})

	return nil
}

// Pop discards the top k values from the value stack. It is a no-op beyond
// clamping if k exceeds the current stack depth.
func (ctx *Context) Pop(k int) {
	n := len(ctx.stack)
	if k > n {
		k = n
	}

	ctx.stack = ctx.stack[:n-k]
}

// Dup pushes a copy of the value idx slots from the top of the stack
// (0 = top). It reports false (raising a BoundsPanic) if no value is there.
func (ctx *Context) Dup(idx int) bool {
	v, ok := ctx.At(idx)
	if !ok {
		ctx.raise(BoundsPanic, "dup: index %d out of range", idx)
		return false
	}

	ctx.stack = append(ctx.stack, v)

	return true
}

// StackLen returns the current depth of the host-facing value stack.
func (ctx *Context) StackLen() int {
	return len(ctx.stack)
}

// At returns the value idx slots from the top of the stack (0 = top)
// without removing it.
func (ctx *Context) At(idx int) (Value, bool) {
	i := len(ctx.stack) - 1 - idx
	if i < 0 || i >= len(ctx.stack) {
		return None, false
	}

	return ctx.stack[i], true
}

// GetKind reports the type kind of the value idx slots from the top of the
// stack, if any value is there and it is not *none*.
func (ctx *Context) GetKind(idx int) (core.TypeKind, bool) {
	v, ok := ctx.At(idx)
	if !ok || v.IsNone() {
		return 0, false
	}

	return v.Ty.Kind(), true
}

// Call pops a callee and nArgs arguments off the value stack (callee
// beneath its arguments, in push order) and invokes it, pushing the result
// back onto the stack. It reports false (leaving the panic state set) if
// the callee was not callable or the call itself panicked.
func (ctx *Context) Call(nArgs int) bool {
	if nArgs+1 > len(ctx.stack) {
		ctx.raise(BoundsPanic, "call: value stack has fewer than %d entries", nArgs+1)
		return false
	}

	base := len(ctx.stack) - nArgs - 1
	callee := ctx.stack[base]
	args := append([]Value(nil), ctx.stack[base+1:]...)

	ctx.stack = ctx.stack[:base]

	if callee.IsNone() {
		ctx.raise(NonCallablePanic, "call: callee is none")
		return false
	}

	ret, ok := ctx.Invoke(callee.Ty, args)
	if !ok {
		return false
	}

	ctx.stack = append(ctx.stack, ret)

	return true
}

// PutArg pushes the i-th argument of the current call onto the value stack,
// the host-command equivalent of the "load_arg" bytecode instruction, used
// by native call bodies to read their parameters.
func (ctx *Context) PutArg(i uint32) bool {
	f := ctx.TopFrame()
	if f == nil || int(i) >= len(f.Args) {
		ctx.raise(BoundsPanic, "put_arg: argument %d out of range", i)
		return false
	}

	ctx.stack = append(ctx.stack, f.Args[i])

	return true
}

// PutRet pops the top of the value stack and records it as the current
// frame's return value. A native call body calls this exactly once before
// returning to signal its result.
func (ctx *Context) PutRet() bool {
	f := ctx.TopFrame()
	if f == nil || len(ctx.stack) == 0 {
		ctx.raise(BoundsPanic, "put_ret: nothing to return")
		return false
	}

	f.Ret = ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]

	return true
}
