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
package domain

import (
	"github.com/TirousCoded/Yama-sub005/pkg/yama/core"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/str"
)

// builtinHead is the reserved parcel head under which the six built-in
// primitive types live. It names no real Parcel: these types are seeded
// directly into the registry at domain construction and are never resolved
// through parcel import machinery.
const builtinHead = "yama"

var builtinPTypes = []core.PType{
	core.IntPType,
	core.UIntPType,
	core.FloatPType,
	core.BoolPType,
	core.CharPType,
	core.NonePType,
}

// seedBuiltins installs the six built-in primitive types into d's registry
// under fullnames "yama:Int", "yama:UInt", and so on, bypassing Install
// entirely - they predate and outlive every installed parcel.
func (d *Domain) seedBuiltins() {
	for _, pt := range builtinPTypes {
		name := pt.String()
		consts := core.NewConstTableInfo()
		info := core.NewPrimitiveTypeInfo(str.New(name), consts, pt)
		info.MarkVerified(true)

		full := QualifiedName{Head: str.New(builtinHead), Member: str.New(name), HasMember: true}.Fullname()

		d.registry[full] = &Type{
			domain:   d,
			fullname: full,
			head:     builtinHead,
			info:     info,
		}
	}
}
