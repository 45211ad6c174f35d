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
	"fmt"

	"github.com/TirousCoded/Yama-sub005/pkg/yama/source"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/specparse"
	"github.com/TirousCoded/Yama-sub005/pkg/yama/str"
)

// QualifiedName is the parsed form of a spec string: head is the parcel
// head; tail is an optional relative module path under that parcel; member
// is the unqualified type name within that module; secondary is an optional
// trailing segment (e.g. a method name) following "::".
type QualifiedName struct {
	Head      str.Str
	Tail      str.Str
	Member    str.Str
	Secondary str.Str
	HasTail   bool
	HasMember bool
	HasSecond bool
	HasArgs   bool
}

// Fullname renders the canonical "head/tail:member::secondary" string used
// as a registry key. It is deliberately simple text concatenation: the
// domain never needs to parse its own cache keys back apart.
func (q QualifiedName) Fullname() string {
	s := q.Head.String()

	if q.HasTail {
		s += "/" + q.Tail.String()
	}
	if q.HasMember {
		s += ":" + q.Member.String()
	}
	if q.HasSecond {
		s += "::" + q.Secondary.String()
	}

	return s
}

type qualNameBuilder struct {
	name     QualifiedName
	depth    int
	err      error
	seenRoot bool
}

func (b *qualNameBuilder) RootId(s str.Str) {
	if b.depth == 0 && !b.seenRoot {
		b.name.Head = s
		b.seenRoot = true
		return
	}
	// A nested RootId belongs to a generic argument; this core does not
	// resolve parameterized types.
	b.name.HasArgs = true
}

func (b *qualNameBuilder) SlashId(s str.Str) {
	if b.depth == 0 {
		b.name.Tail = s
		b.name.HasTail = true
	}
}

func (b *qualNameBuilder) ColonId(s str.Str) {
	if b.depth == 0 {
		b.name.Member = s
		b.name.HasMember = true
	}
}

func (b *qualNameBuilder) DblColonId(s str.Str) {
	if b.depth == 0 {
		b.name.Secondary = s
		b.name.HasSecond = true
	}
}

func (b *qualNameBuilder) OpenArgs() {
	b.name.HasArgs = true
	b.depth++
}

func (b *qualNameBuilder) CloseArgs() {
	b.depth--
}

func (b *qualNameBuilder) SyntaxErr() {
	b.err = source.NewSyntaxError(source.Span{}, "malformed qualified name")
}

// ParseQualifiedName parses a single spec string into a QualifiedName,
// reporting any failure as a source.SyntaxError. Trailing input after a
// complete spec is spanned from where parsing stopped to the end; other
// failures carry an empty span, since the spec-parser callback interface
// carries no position of its own.
func ParseQualifiedName(spec string) (QualifiedName, error) {
	b := &qualNameBuilder{}

	n := specparse.Parse(spec, b)
	if b.err != nil {
		return QualifiedName{}, b.err
	}

	if n != len(spec) {
		return QualifiedName{}, source.NewSyntaxError(source.NewSpan(n, len(spec)),
			fmt.Sprintf("trailing input after spec: %q", spec[n:]))
	}

	if !b.seenRoot {
		return QualifiedName{}, source.NewSyntaxError(source.Span{}, "empty spec")
	}

	return b.name, nil
}

var _ specparse.Callback = (*qualNameBuilder)(nil)
