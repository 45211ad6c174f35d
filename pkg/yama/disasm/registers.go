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
package disasm

import (
	"fmt"
	"io"

	"github.com/TirousCoded/Yama-sub005/pkg/yama/context"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/core"
)

// RegisterDump writes one line per register of frame to w: its index, type,
// and a best-effort rendering of its value.
func RegisterDump(w io.Writer, frame *context.Frame) {
	for i, v := range frame.Regs {
		fmt.Fprintf(w, "  r%-3d %s\n", i, formatValue(v))
	}
}

func formatValue(v context.Value) string {
	if v.IsNone() {
		return "none"
	}

	pt, isPrimitive := v.PType()
	if !isPrimitive {
		return fmt.Sprintf("<%s>", v.Ty.Fullname())
	}

	switch pt {
	case core.IntPType:
		return fmt.Sprintf("Int(%d)", v.Int())
	case core.UIntPType:
		return fmt.Sprintf("UInt(%d)", v.UInt())
	case core.FloatPType:
		return fmt.Sprintf("Float(%g)", v.Float())
	case core.BoolPType:
		return fmt.Sprintf("Bool(%t)", v.Bool())
	case core.CharPType:
		return fmt.Sprintf("Char(%q)", v.Char())
	case core.NonePType:
		return "None"
	default:
		return fmt.Sprintf("<%s>", v.Ty.Fullname())
	}
}
