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

// Package source provides position-tagged diagnostics shared by the spec
// parser, the static verifier and the domain's linker.  Spec-parse failures
// and the diagnostics collected while verifying and installing are
// SyntaxErrors carrying a human-readable message and (where available) a
// Span into the originating text; the linker returns its own failures as
// plain errors.
package source

import "fmt"

// Span identifies a contiguous slice of some original input string by
// physical byte offsets, rather than by copying the substring itself.
type Span struct {
	start int
	end   int
}

// NewSpan constructs a Span, panicking if the bounds are inverted.
func NewSpan(start, end int) Span {
	if start > end {
		panic("invalid span")
	}
	return Span{start, end}
}

// Start returns the first byte offset covered by this span.
func (s Span) Start() int { return s.start }

// End returns one past the last byte offset covered by this span.
func (s Span) End() int { return s.end }

// Len returns the number of bytes covered by this span.
func (s Span) Len() int { return s.end - s.start }

// SyntaxError is a single diagnostic: a message plus the span of input text
// it pertains to.  The span's offsets are relative to whatever input the
// reporting component was given; they carry no meaning across inputs.
type SyntaxError struct {
	span Span
	msg  string
}

// NewSyntaxError constructs a SyntaxError.
func NewSyntaxError(span Span, msg string) SyntaxError {
	return SyntaxError{span, msg}
}

// Span returns the span this error pertains to.
func (e SyntaxError) Span() Span { return e.span }

// Error implements the error interface.
func (e SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.span.start, e.span.end, e.msg)
}

// Maps collects diagnostics accumulated while processing some artifact
// (a spec string, a bytecode body, an install batch).  Unlike a single
// `error` return, a Maps value lets a validation pass keep going after the
// first problem and report everything wrong with the input in one pass -
// the shape used throughout the verifier and linker.
type Maps struct {
	errors []SyntaxError
}

// Add appends a diagnostic.
func (m *Maps) Add(span Span, msg string) {
	m.errors = append(m.errors, NewSyntaxError(span, msg))
}

// Addf appends a formatted diagnostic.
func (m *Maps) Addf(span Span, format string, args ...any) {
	m.Add(span, fmt.Sprintf(format, args...))
}

// Errors returns the accumulated diagnostics in the order they were added.
func (m *Maps) Errors() []SyntaxError {
	return m.errors
}

// HasErrors reports whether any diagnostic has been recorded.
func (m *Maps) HasErrors() bool {
	return len(m.errors) > 0
}
