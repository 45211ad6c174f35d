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
package core

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/TirousCoded/Yama-sub005/pkg/yama/str"
)

// Opcode tags the eleven bytecode operations. The set is closed; see the
// array-length assertion below.
type Opcode uint8

// The closed set of opcodes.
const (
	Noop Opcode = iota
	LoadNone
	LoadConst
	LoadArg
	Copy
	Call
	CallNR
	Ret
	Jump
	JumpTrue
	JumpFalse

	numOpcodes
)

// NumOpcodes is the frozen cardinality of Opcode.
const NumOpcodes = int(numOpcodes)

var (
	_ [NumOpcodes - 11]int
	_ [11 - NumOpcodes]int
)

func (op Opcode) String() string {
	switch op {
	case Noop:
		return "noop"
	case LoadNone:
		return "load_none"
	case LoadConst:
		return "load_const"
	case LoadArg:
		return "load_arg"
	case Copy:
		return "copy"
	case Call:
		return "call"
	case CallNR:
		return "call_nr"
	case Ret:
		return "ret"
	case Jump:
		return "jump"
	case JumpTrue:
		return "jump_true"
	case JumpFalse:
		return "jump_false"
	default:
		return fmt.Sprintf("<unknown-opcode(%d)>", uint8(op))
	}
}

// Instruction is a fixed-width bytecode record: an opcode tag plus three
// small non-negative operand fields A, B, C, and a signed displacement SBx.
// SBx conceptually shares storage with B and C (only branch instructions use
// it, and they do not use B or C), but is kept as a distinct field here for
// clarity.
type Instruction struct {
	Op  Opcode
	A   uint32
	B   uint32
	C   uint32
	SBx int32
}

// NoopInsn constructs a "noop" instruction.
func NoopInsn() Instruction { return Instruction{Op: Noop} }

// LoadNoneInsn constructs a "load_none A" instruction.
func LoadNoneInsn(a uint32) Instruction { return Instruction{Op: LoadNone, A: a} }

// LoadConstInsn constructs a "load_const A B" instruction.
func LoadConstInsn(a, b uint32) Instruction { return Instruction{Op: LoadConst, A: a, B: b} }

// LoadArgInsn constructs a "load_arg A B" instruction.
func LoadArgInsn(a, b uint32) Instruction { return Instruction{Op: LoadArg, A: a, B: b} }

// CopyInsn constructs a "copy A B" instruction.
func CopyInsn(a, b uint32) Instruction { return Instruction{Op: Copy, A: a, B: b} }

// CallInsn constructs a "call A B C" instruction.
func CallInsn(a, b, c uint32) Instruction { return Instruction{Op: Call, A: a, B: b, C: c} }

// CallNRInsn constructs a "call_nr A B" instruction.
func CallNRInsn(a, b uint32) Instruction { return Instruction{Op: CallNR, A: a, B: b} }

// RetInsn constructs a "ret A" instruction.
func RetInsn(a uint32) Instruction { return Instruction{Op: Ret, A: a} }

// JumpInsn constructs a "jump sBx" instruction.
func JumpInsn(sBx int32) Instruction { return Instruction{Op: Jump, SBx: sBx} }

// JumpTrueInsn constructs a "jump_true A sBx" instruction.
func JumpTrueInsn(a uint32, sBx int32) Instruction { return Instruction{Op: JumpTrue, A: a, SBx: sBx} }

// JumpFalseInsn constructs a "jump_false A sBx" instruction.
func JumpFalseInsn(a uint32, sBx int32) Instruction {
	return Instruction{Op: JumpFalse, A: a, SBx: sBx}
}

// Sym is the debug origin of one instruction: the source file/module it came
// from and a line/column within it.
type Sym struct {
	Origin str.Str
	Line   uint32
	Column uint32
}

// Syms is a sparse mapping from instruction index to Sym, used only for
// diagnostics - never consulted by the interpreter's dispatch loop.
type Syms struct {
	entries map[int]Sym
}

// NewSyms constructs an empty Syms map.
func NewSyms() *Syms {
	return &Syms{entries: make(map[int]Sym)}
}

// Set records the debug origin of instruction i.
func (s *Syms) Set(i int, sym Sym) {
	s.entries[i] = sym
}

// Get returns the debug origin of instruction i, if any was recorded.
func (s *Syms) Get(i int) (Sym, bool) {
	sym, ok := s.entries[i]
	return sym, ok
}

// Code is an append-only instruction vector. The reinit flag for each
// instruction is stored alongside it (in a parallel bitset) rather than
// inside the Instruction record itself.
type Code struct {
	insns  []Instruction
	reinit *bitset.BitSet
}

// NewCode constructs an empty instruction buffer.
func NewCode() *Code {
	return &Code{reinit: bitset.New(0)}
}

// Append adds an instruction to the end of the buffer, recording whether its
// destination register (if any) may be overwritten while currently
// populated. It returns the index the instruction was stored at.
func (c *Code) Append(insn Instruction, reinit bool) int {
	i := len(c.insns)
	c.insns = append(c.insns, insn)

	if reinit {
		c.reinit.Set(uint(i))
	}

	return i
}

// Len returns the number of instructions in the buffer.
func (c *Code) Len() int {
	return len(c.insns)
}

// At returns the instruction at index i. It panics if i is out of range,
// matching Go slice-indexing semantics; callers driving untrusted bytecode
// must bounds-check via Len first. The verifier checks jump targets and the
// terminator against Len; the interpreter calls At unchecked and runs only
// verified code.
func (c *Code) At(i int) Instruction {
	return c.insns[i]
}

// ReinitAt reports whether the instruction at index i is permitted to
// overwrite a currently-populated destination register.
func (c *Code) ReinitAt(i int) bool {
	return c.reinit.Test(uint(i))
}

// All returns the full instruction sequence. Callers must not mutate the
// returned slice.
func (c *Code) All() []Instruction {
	return c.insns
}
