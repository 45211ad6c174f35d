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

func Test_ModuleFactory_Uniqueness(t *testing.T) {
	f := NewModuleFactory()

	a := NewPrimitiveTypeInfo(str.New("A"), NewConstTableInfo(), BoolPType)
	b := NewPrimitiveTypeInfo(str.New("A"), NewConstTableInfo(), IntPType)

	if err := f.Add(a); err != nil {
		t.Fatalf("unexpected error adding first type: %v", err)
	}
	if err := f.Add(b); err == nil {
		t.Fatalf("expected error adding duplicate name")
	}

	m := f.Done()
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}

	got, ok := m.Get(str.New("A"))
	if !ok || got.Primitive.PType != BoolPType {
		t.Errorf("Get(A) = %+v, %v", got, ok)
	}
}

func Test_ParcelMetadata_HasDep(t *testing.T) {
	md := NewParcelMetadata(str.New("self"), "a", "b")

	if !md.HasDep("a") || !md.HasDep("b") {
		t.Errorf("expected deps a and b to be present")
	}
	if md.HasDep("c") {
		t.Errorf("expected dep c to be absent")
	}
}
