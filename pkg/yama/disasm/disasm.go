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

// Package disasm implements a human-readable disassembly printer for a
// resolved function Type: one line per instruction, a signature header
// rendered via CallSigInfo.Fmt, and a register-dump helper. The signature
// line is wrapped to a caller-given width (TerminalWidth detects it, falling
// back to a fixed width when the descriptor is not a terminal); instruction
// and register lines are not wrapped.
package disasm

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/TirousCoded/Yama-sub005/pkg/yama/core"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/domain"
)

// DefaultWidth is used when the output stream is not a terminal or its
// width cannot be determined.
const DefaultWidth = 80

// TerminalWidth returns the column width of fd, or DefaultWidth if fd is not
// a terminal.
func TerminalWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return DefaultWidth
	}

	return w
}

// Function writes a disassembly of t (which must be a function Type) to w,
// wrapping the signature line to width columns. It returns an error only if
// t is not a function.
func Function(w io.Writer, t *domain.Type, width int) error {
	if t.Kind() != core.FunctionKind {
		return fmt.Errorf("disasm: %s is not a function type", t.Fullname())
	}

	if width <= 0 {
		width = DefaultWidth
	}

	info := t.Info()
	fn := info.Function

	sig := fmt.Sprintf("fn %s %s", t.Fullname(), fn.Callsig.Fmt(info.Consts))
	for _, line := range wrap(sig, width) {
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "  max_locals=%d native=%t\n", fn.MaxLocals, fn.IsNative())

	if fn.IsNative() {
		fmt.Fprintln(w, "  <native>")
		return nil
	}

	code := fn.Code
	for pc := 0; pc < code.Len(); pc++ {
		insn := code.At(pc)
		fmt.Fprintf(w, "  [%4d] %s\n", pc, instructionText(insn, code.ReinitAt(pc)))

		if fn.Syms != nil {
			if sym, ok := fn.Syms.Get(pc); ok {
				fmt.Fprintf(w, "          ; %s:%d:%d\n", sym.Origin, sym.Line, sym.Column)
			}
		}
	}

	return nil
}

// instructionText renders a single instruction as its mnemonic followed by
// its operands, appending "reinit" when the flag is set.
func instructionText(insn core.Instruction, reinit bool) string {
	var body string

	switch insn.Op {
	case core.Noop:
		body = "noop"
	case core.LoadNone:
		body = fmt.Sprintf("load_none %d", insn.A)
	case core.LoadConst:
		body = fmt.Sprintf("load_const %d %d", insn.A, insn.B)
	case core.LoadArg:
		body = fmt.Sprintf("load_arg %d %d", insn.A, insn.B)
	case core.Copy:
		body = fmt.Sprintf("copy %d %d", insn.A, insn.B)
	case core.Call:
		body = fmt.Sprintf("call %d %d %d", insn.A, insn.B, insn.C)
	case core.CallNR:
		body = fmt.Sprintf("call_nr %d %d", insn.A, insn.B)
	case core.Ret:
		body = fmt.Sprintf("ret %d", insn.A)
	case core.Jump:
		body = fmt.Sprintf("jump %+d", insn.SBx)
	case core.JumpTrue:
		body = fmt.Sprintf("jump_true %d %+d", insn.A, insn.SBx)
	case core.JumpFalse:
		body = fmt.Sprintf("jump_false %d %+d", insn.A, insn.SBx)
	default:
		body = insn.Op.String()
	}

	if reinit {
		body += " reinit"
	}

	return body
}

// wrap breaks s into lines no wider than width, splitting only on spaces so
// that no instruction operand is ever torn in half.
func wrap(s string, width int) []string {
	if width <= 0 || len(s) <= width {
		return []string{s}
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{s}
	}

	var (
		lines []string
		cur   strings.Builder
	)

	for _, word := range words {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}

		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}

		cur.WriteString(word)
	}

	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}

	return lines
}
