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

// Package specparse tokenizes and dispatches qualified-name specs of the
// form "root/sub:Type::member", driving a callback interface in token
// order. It does not reject specs which are syntactically valid but
// semantically nonsensical (e.g. a DblColon segment before a Slash
// segment) - that is the domain resolver's job.
//
// Grammar:
//
//	Spec := Id (Slash Id)? (Colon Id)? (Args)? (DblColon Id)?
//	Args := '[' Spec (',' Spec)* ']'
//	Id   := (letter | '_' | '%' | '$') (letter | digit | '_')*
//
// Whitespace is not significant inside a spec; it terminates one.
package specparse

import "github.com/TirousCoded/Yama-sub005/pkg/yama/str"

// Callback receives parse events in the order their tokens appear in the
// input. On the first ill-formed character, SyntaxErr is invoked exactly
// once and parsing stops; no further events are emitted for that spec.
type Callback interface {
	RootId(str.Str)
	SlashId(str.Str)
	ColonId(str.Str)
	DblColonId(str.Str)
	OpenArgs()
	CloseArgs()
	SyntaxErr()
}

// Parse parses a single spec from the start of input, driving cb as it goes,
// and returns the number of runes consumed. A spec is terminated by
// whitespace or end of input. The returned count lets callers parse a
// sequence of whitespace-separated specs by repeatedly slicing past it.
func Parse(input string, cb Callback) int {
	p := &parser{runes: []rune(input), cb: cb}
	p.parseSpec(false)
	return p.pos
}

type parser struct {
	runes  []rune
	pos    int
	cb     Callback
	failed bool
}

func isIdStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '%' || r == '$'
}

func isIdCont(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func (p *parser) atSpecEnd() bool {
	return p.pos >= len(p.runes) || isWhitespace(p.runes[p.pos])
}

func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.runes) {
		return 0, false
	}
	return p.runes[p.pos], true
}

func (p *parser) peekAt(offset int) (rune, bool) {
	i := p.pos + offset
	if i >= len(p.runes) {
		return 0, false
	}
	return p.runes[i], true
}

func (p *parser) fail() {
	if !p.failed {
		p.failed = true
		p.cb.SyntaxErr()
	}
}

// scanId scans a single Id starting at the current position, invoking emit
// with the scanned text on success. Returns false (without consuming
// anything or emitting) if no valid Id starts here.
func (p *parser) scanId(emit func(str.Str)) bool {
	r, ok := p.peek()
	if !ok || !isIdStart(r) {
		return false
	}

	start := p.pos
	p.pos++

	for {
		r, ok := p.peek()
		if !ok || !isIdCont(r) {
			break
		}
		p.pos++
	}

	emit(str.New(string(p.runes[start:p.pos])))

	return true
}

// isDblColonAhead reports whether the current position begins "::".
func (p *parser) isDblColonAhead() bool {
	r0, ok0 := p.peek()
	r1, ok1 := p.peekAt(1)

	return ok0 && r0 == ':' && ok1 && r1 == ':'
}

// parseSpec parses one Spec. insideArgs controls what is considered a valid
// terminator: inside an Args list a spec is terminated by ',' or ']', at the
// top level by whitespace or end of input.
func (p *parser) parseSpec(insideArgs bool) {
	if p.failed {
		return
	}

	if !p.scanId(p.cb.RootId) {
		p.fail()
		return
	}

	if r, ok := p.peek(); ok && r == '/' {
		p.pos++

		if !p.scanId(p.cb.SlashId) {
			p.fail()
			return
		}
	}

	if r, ok := p.peek(); ok && r == ':' && !p.isDblColonAhead() {
		p.pos++

		if !p.scanId(p.cb.ColonId) {
			p.fail()
			return
		}
	}

	if r, ok := p.peek(); ok && r == '[' {
		p.pos++
		p.cb.OpenArgs()

		for {
			p.parseSpec(true)
			if p.failed {
				return
			}

			if r, ok := p.peek(); ok && r == ',' {
				p.pos++
				continue
			}

			break
		}

		if r, ok := p.peek(); !ok || r != ']' {
			p.fail()
			return
		}

		p.pos++
		p.cb.CloseArgs()
	}

	if p.isDblColonAhead() {
		p.pos += 2

		if !p.scanId(p.cb.DblColonId) {
			p.fail()
			return
		}
	}

	if insideArgs {
		if r, ok := p.peek(); ok && (r == ',' || r == ']') {
			return
		}

		p.fail()

		return
	}

	if !p.atSpecEnd() {
		p.fail()
	}
}
