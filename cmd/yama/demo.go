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
	"github.com/TirousCoded/Yama-sub005/pkg/yama/context"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/core"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/debug"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/domain"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/str"
)

// demoHead names the sample parcel every subcommand resolves against.
// Bytecode enters this core pre-compiled (a separate front-end module
// ingests text), so this in-memory parcel stands in for a loaded program,
// just big enough to give run/disasm/resolve something real to operate on.
const demoHead = "demo"

type demoParcel struct {
	module *core.ModuleInfo
}

func (p *demoParcel) Metadata() core.ParcelMetadata {
	return core.NewParcelMetadata(str.New(demoHead))
}

func (p *demoParcel) Import(relativePath string) (*core.ModuleInfo, bool) {
	if relativePath != "" {
		return nil, false
	}

	return p.module, true
}

// identityTypeInfo returns its single Int argument unchanged. Register 0 is
// pre-populated by the call ABI from the argument list itself, so load_arg
// targets register 1 instead (writing back into register 0 without reinit
// would fail the verifier's definite-assignment check).
func identityTypeInfo() *core.TypeInfo {
	consts := core.NewConstTableInfo().AddPrimitiveType(str.New("yama:Int"))

	code := core.NewCode()
	code.Append(core.LoadArgInsn(1, 0), false)
	code.Append(core.RetInsn(1), false)

	return core.NewFunctionTypeInfo(str.New("Identity"), consts, core.FunctionInfo{
		Callsig:   core.NewCallSigInfo([]uint32{0}, 0),
		MaxLocals: 2,
		Code:      code,
		Syms:      core.NewSyms(),
	})
}

// addTypeInfo sums its two Int arguments. The closed instruction set has
// no arithmetic opcode, only data movement and control flow, so the
// addition itself is native code; the wrapping TypeInfo is otherwise a
// function like any other.
func addTypeInfo() *core.TypeInfo {
	consts := core.NewConstTableInfo().AddPrimitiveType(str.New("yama:Int"))

	return core.NewFunctionTypeInfo(str.New("Add"), consts, core.FunctionInfo{
		Callsig:   core.NewCallSigInfo([]uint32{0, 0}, 0),
		MaxLocals: 3,
		CallFn: func(rawCtx any) {
			ctx := rawCtx.(*context.Context)
			f := ctx.TopFrame()
			ctx.PushInt(f.Args[0].Int() + f.Args[1].Int())
			ctx.PutRet()
		},
	})
}

// callerTypeInfo calls self:Add with two constant arguments, demonstrating
// the "call" instruction crossing from bytecode into a native callee.
func callerTypeInfo() *core.TypeInfo {
	addSig := core.NewCallSigInfo([]uint32{1, 1}, 1)

	consts := core.NewConstTableInfo().
		AddFunctionType(str.New("self:Add"), addSig).
		AddPrimitiveType(str.New("yama:Int")).
		AddInt(3).
		AddInt(4)

	code := core.NewCode()
	code.Append(core.LoadConstInsn(0, 0), false) // r0 = Add
	code.Append(core.LoadConstInsn(1, 2), false) // r1 = 3
	code.Append(core.LoadConstInsn(2, 3), false) // r2 = 4
	code.Append(core.CallInsn(0, 3, 3), false)   // call r0(r1, r2), dest r3
	code.Append(core.RetInsn(3), false)

	return core.NewFunctionTypeInfo(str.New("AddThreeAndFour"), consts, core.FunctionInfo{
		Callsig:   core.NewCallSigInfo(nil, 1),
		MaxLocals: 4,
		Code:      code,
		Syms:      core.NewSyms(),
	})
}

// newDemoDomain builds and installs the sample "demo" parcel, seeded
// alongside the built-in primitives every domain.New already carries.
func newDemoDomain(sink debug.Sink) (*domain.Domain, error) {
	factory := core.NewModuleFactory()

	for _, ty := range []*core.TypeInfo{identityTypeInfo(), addTypeInfo(), callerTypeInfo()} {
		if err := factory.Add(ty); err != nil {
			return nil, err
		}
	}

	d := domain.New(sink)
	batch := domain.InstallBatch{
		Parcels: map[string]core.Parcel{demoHead: &demoParcel{module: factory.Done()}},
	}

	if err := d.Install(batch); err != nil {
		return nil, err
	}

	return d, nil
}
