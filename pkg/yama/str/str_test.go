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
package str

import "testing"

func Test_Eq(t *testing.T) {
	a := New("abc")
	b := New("abc")
	c := New("abd")

	if !a.Eq(b) {
		t.Errorf("expected %v == %v", a, b)
	}
	if a.Eq(c) {
		t.Errorf("expected %v != %v", a, c)
	}
}

func Test_HashStable(t *testing.T) {
	a := New("hello world")
	b := New("hello world")

	if a.Hash() != b.Hash() {
		t.Errorf("hash not stable across construction: %d vs %d", a.Hash(), b.Hash())
	}
}

func Test_Empty(t *testing.T) {
	if !Empty.Empty() {
		t.Errorf("expected Empty to be empty")
	}
	if New("x").Empty() {
		t.Errorf("expected non-empty Str to report non-empty")
	}
}

func Test_String(t *testing.T) {
	s := New("yama:Int")
	if s.String() != "yama:Int" {
		t.Errorf("got %q, want %q", s.String(), "yama:Int")
	}
}
