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
package verifier

import (
	"github.com/TirousCoded/Yama-sub005/pkg/yama/core"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/debug"
)

// verifyBytecode checks register/constant/argument/jump bounds and the
// fall-through terminator rule, followed by the reinit discipline, which
// requires its own dataflow pass.
func verifyBytecode(sink debug.Sink, t *core.TypeInfo, fn core.FunctionInfo) bool {
	var (
		code = fn.Code
		n    = code.Len()
		ok   = true
	)

	if n == 0 {
		debug.Emit(sink, debug.Compile, "type %s: function body has no instructions", t.UnqualifiedName)
		return false
	}

	for pc := 0; pc < n; pc++ {
		if !verifyInstructionBounds(sink, t, fn, pc) {
			ok = false
		}
	}

	last := code.At(n - 1).Op
	if last != core.Ret && last != core.Jump {
		debug.Emit(sink, debug.Compile,
			"type %s: fall-through from the last instruction (%s) is neither ret nor an unconditional jump",
			t.UnqualifiedName, last)

		ok = false
	}

	if !ok {
		// Bounds violations make the dataflow pass below unsafe to run
		// (it indexes registers/targets that are now known to be bad).
		return false
	}

	if !verifyReinitDiscipline(sink, t, fn) {
		ok = false
	}

	return ok
}

func verifyInstructionBounds(sink debug.Sink, t *core.TypeInfo, fn core.FunctionInfo, pc int) bool {
	var (
		code      = fn.Code
		insn      = code.At(pc)
		maxLocals = fn.MaxLocals
		ok        = true
	)

	reg := func(r uint32, what string) {
		if r >= maxLocals {
			debug.Emit(sink, debug.Compile,
				"type %s: instruction %d (%s) references register %d, out of bounds for max_locals=%d",
				t.UnqualifiedName, pc, insn.Op, r, maxLocals)

			ok = false
		}
	}

	jumpTarget := func(sBx int32) {
		target := pc + 1 + int(sBx)
		if target < 0 || target >= code.Len() {
			debug.Emit(sink, debug.Compile,
				"type %s: instruction %d (%s) jumps to out-of-bounds target %d",
				t.UnqualifiedName, pc, insn.Op, target)

			ok = false
		}
	}

	switch insn.Op {
	case core.Noop:
		// no operands
	case core.LoadNone:
		reg(insn.A, "A")
	case core.LoadConst:
		reg(insn.A, "A")

		if _, has := t.Consts.ConstKindAt(int(insn.B)); !has {
			debug.Emit(sink, debug.Compile,
				"type %s: instruction %d (load_const) references out-of-bounds constant %d",
				t.UnqualifiedName, pc, insn.B)

			ok = false
		}
	case core.LoadArg:
		reg(insn.A, "A")

		if insn.B >= uint32(fn.Callsig.ParamCount()) {
			debug.Emit(sink, debug.Compile,
				"type %s: instruction %d (load_arg) references out-of-bounds argument %d",
				t.UnqualifiedName, pc, insn.B)

			ok = false
		}
	case core.Copy:
		reg(insn.A, "A")
		reg(insn.B, "B")
	case core.Call:
		reg(insn.A, "A")

		if insn.B > 0 {
			reg(insn.A+insn.B-1, "args")
		}

		reg(insn.C, "C")
	case core.CallNR:
		reg(insn.A, "A")

		if insn.B > 0 {
			reg(insn.A+insn.B-1, "args")
		}
	case core.Ret:
		reg(insn.A, "A")
	case core.Jump:
		jumpTarget(insn.SBx)
	case core.JumpTrue, core.JumpFalse:
		reg(insn.A, "A")
		jumpTarget(insn.SBx)
	}

	return ok
}
