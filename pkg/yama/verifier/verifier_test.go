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
	"testing"

	"github.com/TirousCoded/Yama-sub005/pkg/yama/core"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/str"
)

// simpleAdd builds a function type "a" with constants [int(1), int(2)],
// max_locals=3, bytecode: load_const 0 0; load_const 1 1; copy 2 0 reinit;
// ret 2.
func simpleAdd() *core.TypeInfo {
	consts := core.NewConstTableInfo().AddInt(1).AddInt(2)

	code := core.NewCode()
	code.Append(core.LoadConstInsn(0, 0), false)
	code.Append(core.LoadConstInsn(1, 1), false)
	code.Append(core.CopyInsn(2, 0), true)
	code.Append(core.RetInsn(2), false)

	return core.NewFunctionTypeInfo(str.New("a"), consts, core.FunctionInfo{
		Callsig:   core.NewCallSigInfo(nil, 0),
		MaxLocals: 3,
		Code:      code,
		Syms:      core.NewSyms(),
	})
}

func Test_Verify_Succeeds(t *testing.T) {
	ty := simpleAdd()

	if !Verify(nil, ty) {
		t.Fatalf("expected a well-formed function type to verify")
	}
}

func Test_Verify_Idempotent(t *testing.T) {
	ty := simpleAdd()

	if !Verify(nil, ty) {
		t.Fatalf("first verification failed")
	}
	if !Verify(nil, ty) {
		t.Fatalf("second (cached) verification failed")
	}
	if v, ok := ty.Verified(); !ok || !v {
		t.Fatalf("expected cached verdict true, got %v, %v", v, ok)
	}
}

func Test_Verify_FailsOnOutOfBoundsCallsigParam(t *testing.T) {
	consts := core.NewConstTableInfo().AddPrimitiveType(str.New("b"))

	code := core.NewCode()
	code.Append(core.RetInsn(0), false)

	ty := core.NewFunctionTypeInfo(str.New("a"), consts, core.FunctionInfo{
		// illegal out-of-bounds param index
		Callsig:   core.NewCallSigInfo([]uint32{1}, 0),
		MaxLocals: 2,
		Code:      code,
		Syms:      core.NewSyms(),
	})

	if Verify(nil, ty) {
		t.Fatalf("expected verification to fail on out-of-bounds param index")
	}
}

func Test_Verify_FailsOnOutOfBoundsCallsigReturn(t *testing.T) {
	consts := core.NewConstTableInfo().AddPrimitiveType(str.New("b"))

	code := core.NewCode()
	code.Append(core.RetInsn(0), false)

	ty := core.NewFunctionTypeInfo(str.New("a"), consts, core.FunctionInfo{
		Callsig:   core.NewCallSigInfo(nil, 1), // illegal out-of-bounds return index
		MaxLocals: 2,
		Code:      code,
		Syms:      core.NewSyms(),
	})

	if Verify(nil, ty) {
		t.Fatalf("expected verification to fail on out-of-bounds return index")
	}
}

func Test_Verify_FailsOnEmbeddedCallsigOutOfBounds(t *testing.T) {
	// constant 1's embedded callsig references out-of-bounds index 9.
	consts := core.NewConstTableInfo().
		AddPrimitiveType(str.New("b")).
		AddFunctionType(str.New("c"), core.NewCallSigInfo([]uint32{9}, 0))

	code := core.NewCode()
	code.Append(core.RetInsn(0), false)

	ty := core.NewFunctionTypeInfo(str.New("a"), consts, core.FunctionInfo{
		Callsig:   core.NewCallSigInfo([]uint32{0, 1}, 0),
		MaxLocals: 3,
		Code:      code,
		Syms:      core.NewSyms(),
	})

	if Verify(nil, ty) {
		t.Fatalf("expected verification to fail due to embedded callsig out-of-bounds index")
	}
}

func Test_Verify_FailsOnMaxLocalsTooSmall(t *testing.T) {
	consts := core.NewConstTableInfo().
		AddPrimitiveType(str.New("b")).
		AddPrimitiveType(str.New("c"))

	code := core.NewCode()
	code.Append(core.RetInsn(0), false)

	ty := core.NewFunctionTypeInfo(str.New("a"), consts, core.FunctionInfo{
		Callsig:   core.NewCallSigInfo([]uint32{0}, 1), // 1 param, needs max_locals >= 2
		MaxLocals: 1,
		Code:      code,
		Syms:      core.NewSyms(),
	})

	if Verify(nil, ty) {
		t.Fatalf("expected verification to fail due to max_locals < params+1")
	}
}

func Test_Verify_FailsOnMissingTerminator(t *testing.T) {
	consts := core.NewConstTableInfo().AddInt(1)

	code := core.NewCode()
	code.Append(core.LoadConstInsn(0, 0), false)
	// falls off the end without a ret/jump

	ty := core.NewFunctionTypeInfo(str.New("a"), consts, core.FunctionInfo{
		Callsig:   core.NewCallSigInfo(nil, 0),
		MaxLocals: 1,
		Code:      code,
		Syms:      core.NewSyms(),
	})

	if Verify(nil, ty) {
		t.Fatalf("expected verification to fail due to missing terminator")
	}
}

func Test_Verify_FailsOnOutOfBoundsRegister(t *testing.T) {
	consts := core.NewConstTableInfo().AddInt(1)

	code := core.NewCode()
	code.Append(core.LoadConstInsn(5, 0), false) // register 5 >= max_locals
	code.Append(core.RetInsn(5), false)

	ty := core.NewFunctionTypeInfo(str.New("a"), consts, core.FunctionInfo{
		Callsig:   core.NewCallSigInfo(nil, 0),
		MaxLocals: 1,
		Code:      code,
		Syms:      core.NewSyms(),
	})

	if Verify(nil, ty) {
		t.Fatalf("expected verification to fail due to out-of-bounds register")
	}
}

func Test_Verify_FailsOnReinitViolation(t *testing.T) {
	consts := core.NewConstTableInfo().AddInt(1).AddInt(2)

	code := core.NewCode()
	code.Append(core.LoadConstInsn(0, 0), false)
	code.Append(core.LoadConstInsn(0, 1), false) // overwrites populated register 0 without reinit
	code.Append(core.RetInsn(0), false)

	ty := core.NewFunctionTypeInfo(str.New("a"), consts, core.FunctionInfo{
		Callsig:   core.NewCallSigInfo(nil, 0),
		MaxLocals: 1,
		Code:      code,
		Syms:      core.NewSyms(),
	})

	if Verify(nil, ty) {
		t.Fatalf("expected verification to fail due to missing reinit flag")
	}
}

func Test_Verify_AllowsReinitOverwrite(t *testing.T) {
	consts := core.NewConstTableInfo().AddInt(1).AddInt(2)

	code := core.NewCode()
	code.Append(core.LoadConstInsn(0, 0), false)
	code.Append(core.LoadConstInsn(0, 1), true) // reinit: permitted
	code.Append(core.RetInsn(0), false)

	ty := core.NewFunctionTypeInfo(str.New("a"), consts, core.FunctionInfo{
		Callsig:   core.NewCallSigInfo(nil, 0),
		MaxLocals: 1,
		Code:      code,
		Syms:      core.NewSyms(),
	})

	if !Verify(nil, ty) {
		t.Fatalf("expected reinit-flagged overwrite to be permitted")
	}
}

func Test_Verify_PrimitiveType(t *testing.T) {
	consts := core.NewConstTableInfo()
	ty := core.NewPrimitiveTypeInfo(str.New("Bool"), consts, core.BoolPType)

	if !Verify(nil, ty) {
		t.Fatalf("expected a primitive type with no constants to verify")
	}
}
