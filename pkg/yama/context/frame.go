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

import "github.com/TirousCoded/Yama-sub005/pkg/yama/domain"

// Frame is one activation record: the function being executed, its register
// file (sized to the callee's max_locals), and a per-frame program counter.
// Args holds the original call arguments, read by "load_arg" and by the
// native-body command PutArg - independently of whatever the register file
// currently holds, since a register may since have been overwritten. Ret
// holds the value a native body has published via PutRet. Dest is the
// register in the *caller's* frame that should receive the return value,
// and IsNR records whether the call was call_nr (discarding it); both are
// meaningless for the entry frame.
type Frame struct {
	Fn   *domain.Type
	Regs []Value
	Args []Value
	Ret  Value
	PC   int
	Dest uint32
	IsNR bool
}

// newFrame allocates a zeroed (all-none) register file sized to fn's
// max_locals, pre-populating parameter slots 0..params-1 with args.
func newFrame(fn *domain.Type, args []Value, dest uint32, isNR bool) *Frame {
	maxLocals := fn.Info().Function.MaxLocals

	regs := make([]Value, maxLocals)
	copy(regs, args)

	return &Frame{
		Fn:   fn,
		Regs: regs,
		Args: args,
		Dest: dest,
		IsNR: isNR,
	}
}

// Get returns the value in register i. It panics on an out-of-range index;
// callers must bounds-check against a verified TypeInfo's max_locals first.
func (f *Frame) Get(i uint32) Value {
	return f.Regs[i]
}

// Set stores v into register i.
func (f *Frame) Set(i uint32, v Value) {
	f.Regs[i] = v
}
