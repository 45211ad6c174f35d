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
package interp

import (
	"github.com/TirousCoded/Yama-sub005/pkg/yama/context"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/core"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/domain"
)

// runLoop dispatches frame's bytecode body to completion, returning false if
// a panic was raised along the way (the panic state is left set on ctx) and
// true once a "ret" publishes frame.Ret.
func runLoop(ctx *context.Context, frame *context.Frame) bool {
	fn := frame.Fn
	body := fn.Info().Function
	code := body.Code

	for {
		insn := code.At(frame.PC)

		switch insn.Op {
		case core.Noop:
			frame.PC++

		case core.LoadNone:
			frame.Set(insn.A, context.None)
			frame.PC++

		case core.LoadConst:
			v, ok := loadConst(ctx, fn, insn.B)
			if !ok {
				return false
			}

			frame.Set(insn.A, v)
			frame.PC++

		case core.LoadArg:
			frame.Set(insn.A, frame.Args[insn.B])
			frame.PC++

		case core.Copy:
			src := frame.Get(insn.B)

			if dst := frame.Get(insn.A); !dst.IsNone() && !dst.SameType(src) {
				ctx.Raise(context.TypeMismatchPanic,
					"copy: register %d holds a value of a different type than register %d", insn.A, insn.B)
				return false
			}

			frame.Set(insn.A, src)
			frame.PC++

		case core.Call:
			if !checkCancel(ctx) {
				return false
			}

			if !doCall(ctx, frame, insn.A, insn.B, insn.C, false) {
				return false
			}

			frame.PC++

		case core.CallNR:
			if !checkCancel(ctx) {
				return false
			}

			if !doCall(ctx, frame, insn.A, insn.B, 0, true) {
				return false
			}

			frame.PC++

		case core.Ret:
			ret := frame.Get(insn.A)

			expected, ok := resolveCallsigType(ctx, fn, body.Callsig.ReturnIndex())
			if ok && !returnCompatible(ret, expected) {
				ctx.Raise(context.ReturnTypeMismatchPanic,
					"function %s returned a value of the wrong type", fn.Fullname())
				return false
			}

			frame.Ret = ret

			return true

		case core.Jump:
			if !checkCancel(ctx) {
				return false
			}

			frame.PC = frame.PC + 1 + int(insn.SBx)

		case core.JumpTrue:
			if frame.Get(insn.A).Bool() {
				if !checkCancel(ctx) {
					return false
				}

				frame.PC = frame.PC + 1 + int(insn.SBx)
			} else {
				frame.PC++
			}

		case core.JumpFalse:
			if !frame.Get(insn.A).Bool() {
				if !checkCancel(ctx) {
					return false
				}

				frame.PC = frame.PC + 1 + int(insn.SBx)
			} else {
				frame.PC++
			}
		}
	}
}

// returnCompatible reports whether ret may be published through a callsig
// whose declared return type is expected. A register in the *none* state is
// compatible only with the None primitive itself.
func returnCompatible(ret context.Value, expected *domain.Type) bool {
	if ret.IsNone() {
		info := expected.Info()
		return info.Kind == core.PrimitiveKind && info.Primitive.PType == core.NonePType
	}

	return ret.Ty == expected
}

// checkCancel implements the cooperative cancellation check, raising a
// synthetic CancelledPanic when the host has requested it.
func checkCancel(ctx *context.Context) bool {
	if !ctx.CancelRequested() {
		return true
	}

	ctx.Raise(context.CancelledPanic, "execution cancelled")

	return false
}

// doCall resolves and invokes the callee in register a, with args drawn from
// the following b-1 registers, writing the result to register c unless nr.
func doCall(ctx *context.Context, frame *context.Frame, a, b, c uint32, nr bool) bool {
	callee := frame.Get(a)
	if callee.IsNone() {
		ctx.Raise(context.NonCallablePanic, "call: register %d is none", a)
		return false
	}

	nArgs := int(b) - 1

	var args []context.Value
	if nArgs > 0 {
		args = make([]context.Value, nArgs)
		for i := 0; i < nArgs; i++ {
			args[i] = frame.Get(a + 1 + uint32(i))
		}
	}

	ret, ok := invokeFunction(ctx, callee.Ty, args, c, nr)
	if !ok {
		return false
	}

	if !nr {
		frame.Set(c, ret)
	}

	return true
}

// loadConst materialises constant idx of fn's table as a register Value,
// resolving type-reference constants through the domain relative to fn's
// own declaring parcel head.
func loadConst(ctx *context.Context, fn *domain.Type, idx uint32) (context.Value, bool) {
	consts := fn.Info().Consts

	kind, ok := consts.ConstKindAt(int(idx))
	if !ok {
		ctx.Raise(context.BoundsPanic, "load_const: constant %d out of range", idx)
		return context.None, false
	}

	switch kind {
	case core.IntConst:
		v, _ := core.Get[core.IntConstInfo](consts, int(idx))
		return context.NewInt(ctx.Builtin(core.IntPType), v.Value), true

	case core.UIntConst:
		v, _ := core.Get[core.UIntConstInfo](consts, int(idx))
		return context.NewUInt(ctx.Builtin(core.UIntPType), v.Value), true

	case core.FloatConst:
		v, _ := core.Get[core.FloatConstInfo](consts, int(idx))
		return context.NewFloat(ctx.Builtin(core.FloatPType), v.Value), true

	case core.BoolConst:
		v, _ := core.Get[core.BoolConstInfo](consts, int(idx))
		return context.NewBool(ctx.Builtin(core.BoolPType), v.Value), true

	case core.CharConst:
		v, _ := core.Get[core.CharConstInfo](consts, int(idx))
		return context.NewChar(ctx.Builtin(core.CharPType), v.Value), true

	case core.PrimitiveTypeConst, core.FunctionTypeConst:
		ty, ok := resolveCallsigType(ctx, fn, idx)
		if !ok {
			ctx.Raise(context.TypeMismatchPanic, "load_const: constant %d names an unresolvable type", idx)
			return context.None, false
		}

		return context.Value{Ty: ty}, true

	default:
		// Unreachable: ConstKind's seven values are all handled above.
		return context.None, false
	}
}

// resolveCallsigType resolves the type-reference constant at idx in fn's own
// table, relative to fn's declaring parcel head.
func resolveCallsigType(ctx *context.Context, fn *domain.Type, idx uint32) (*domain.Type, bool) {
	fullname, ok := fn.Info().Consts.Fullname(int(idx))
	if !ok {
		return nil, false
	}

	ty, err := ctx.Domain().Resolve(fn.Head(), fullname.String())
	if err != nil {
		return nil, false
	}

	return ty, true
}
