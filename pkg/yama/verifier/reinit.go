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
	"github.com/bits-and-blooms/bitset"

	"github.com/TirousCoded/Yama-sub005/pkg/yama/core"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/debug"
)

// verifyReinitDiscipline enforces the reinit rule: a destructive
// instruction without the reinit flag must never write to a register that
// might already hold a value (i.e. is not definitely in the *none* state)
// along some path reaching it. This is a forward "may be populated"
// dataflow analysis over the control-flow graph, propagated with a
// worklist. The join is a union: the check must reject if the register
// *could* be populated on any path, not only if it always is.
func verifyReinitDiscipline(sink debug.Sink, t *core.TypeInfo, fn core.FunctionInfo) bool {
	var (
		code      = fn.Code
		n         = uint(code.Len())
		maxLocals = uint(fn.MaxLocals)
		ok        = true
	)

	entry := bitset.New(maxLocals)
	for i := 0; i < fn.Callsig.ParamCount(); i++ {
		entry.Set(uint(i))
	}

	states := make(map[int]*bitset.BitSet, n)
	states[0] = entry

	worklist := []int{0}

	for len(worklist) > 0 {
		pc := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		state := states[pc]
		insn := code.At(pc)

		dest, destOk := destinationRegister(insn)
		if destOk {
			if state.Test(uint(dest)) && !code.ReinitAt(pc) {
				debug.Emit(sink, debug.Compile,
					"type %s: instruction %d (%s) writes register %d without reinit while it may already hold a value",
					t.UnqualifiedName, pc, insn.Op, dest)

				ok = false
			}
		}

		next := state.Clone()
		if destOk {
			if insn.Op == core.LoadNone {
				next.Clear(uint(dest))
			} else {
				next.Set(uint(dest))
			}
		}

		for _, succ := range successors(pc, insn) {
			if succ < 0 || succ >= int(n) {
				// Already reported by verifyInstructionBounds.
				continue
			}

			if existing, has := states[succ]; has {
				merged := existing.Clone().Union(next)
				if !merged.Equal(existing) {
					states[succ] = merged
					worklist = append(worklist, succ)
				}
			} else {
				states[succ] = next.Clone()
				worklist = append(worklist, succ)
			}
		}
	}

	return ok
}

// destinationRegister returns the register a reinit-governed instruction
// writes, if any.
func destinationRegister(insn core.Instruction) (uint32, bool) {
	switch insn.Op {
	case core.LoadNone, core.LoadConst, core.LoadArg, core.Copy:
		return insn.A, true
	case core.Call:
		return insn.C, true
	default:
		return 0, false
	}
}

// successors returns the set of program counters control may flow to
// immediately after insn at pc.
func successors(pc int, insn core.Instruction) []int {
	switch insn.Op {
	case core.Ret:
		return nil
	case core.Jump:
		return []int{pc + 1 + int(insn.SBx)}
	case core.JumpTrue, core.JumpFalse:
		return []int{pc + 1 + int(insn.SBx), pc + 1}
	default:
		return []int{pc + 1}
	}
}
