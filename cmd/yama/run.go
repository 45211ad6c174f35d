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
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/TirousCoded/Yama-sub005/pkg/yama/context"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/core"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/debug"

	// Side-effect import: registers the bytecode interpreter as the
	// dispatcher behind Context.Invoke, exactly as any real host program
	// embedding this core must.
	_ "github.com/TirousCoded/Yama-sub005/pkg/yama/interp"
)

var runCmd = &cobra.Command{
	Use:   "run spec [int-args...]",
	Short: "Invoke a function in the sample program with integer arguments.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sink := debug.NewLogrusSink(nil)

		d, err := newDemoDomain(sink)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		fn, err := d.Resolve(demoHead, args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		ctx := context.NewWithMaxFrames(d, sink, int(GetUint(cmd, "max-frames")))

		callArgs := make([]context.Value, len(args)-1)
		for i, raw := range args[1:] {
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				fmt.Printf("argument %d: %v\n", i, err)
				os.Exit(1)
			}

			callArgs[i] = context.NewInt(ctx.Builtin(core.IntPType), v)
		}

		ret, ok := ctx.Invoke(fn, callArgs)
		if !ok {
			panicState := ctx.Panic()
			fmt.Printf("panic: %s: %s\n", panicState.Kind, panicState.Message)
			os.Exit(1)
		}

		fmt.Println(formatResult(ret))
	},
}

// formatResult renders a returned Value the way disasm.RegisterDump renders
// a register slot, for the CLI's own top-level result line.
func formatResult(v context.Value) string {
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
		return "none"
	}
}
