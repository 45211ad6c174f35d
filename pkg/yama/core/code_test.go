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
	"testing"

	"github.com/TirousCoded/Yama-sub005/pkg/yama/str"
)

func Test_Code_AppendAndReinit(t *testing.T) {
	c := NewCode()

	i0 := c.Append(LoadConstInsn(0, 0), false)
	i1 := c.Append(CopyInsn(1, 0), true)

	if i0 != 0 || i1 != 1 {
		t.Fatalf("unexpected indices %d, %d", i0, i1)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if c.ReinitAt(0) {
		t.Errorf("expected instruction 0 to not be reinit")
	}
	if !c.ReinitAt(1) {
		t.Errorf("expected instruction 1 to be reinit")
	}
	if c.At(1).Op != Copy {
		t.Errorf("At(1).Op = %v, want Copy", c.At(1).Op)
	}
}

func Test_Syms_SparseMapping(t *testing.T) {
	s := NewSyms()
	s.Set(3, Sym{Origin: str.New("foo.yama"), Line: 10, Column: 4})

	if _, ok := s.Get(0); ok {
		t.Errorf("expected no sym at 0")
	}

	sym, ok := s.Get(3)
	if !ok || sym.Line != 10 || sym.Column != 4 {
		t.Errorf("Get(3) = %+v, %v", sym, ok)
	}
}

func Test_Opcode_String(t *testing.T) {
	cases := map[Opcode]string{
		Noop:      "noop",
		LoadNone:  "load_none",
		Call:      "call",
		JumpFalse: "jump_false",
	}

	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", op, got, want)
		}
	}
}
