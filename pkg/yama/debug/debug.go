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

// Package debug provides the abstract debug sink: a stream accepting
// categorised diagnostic messages, with a proxy that masks categories out
// before they reach an underlying logrus logger.
package debug

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	log "github.com/sirupsen/logrus"
)

// Category tags the source of a diagnostic message.
type Category uint

// The minimum set of categories a sink must support.
const (
	General Category = iota
	Compile
	CtxLLCmd
	CtxPanic

	numBuiltinCategories
)

func (c Category) String() string {
	switch c {
	case General:
		return "general"
	case Compile:
		return "compile"
	case CtxLLCmd:
		return "ctx_llcmd"
	case CtxPanic:
		return "ctx_panic"
	default:
		return fmt.Sprintf("category(%d)", uint(c))
	}
}

// Mask is a bitmask over Category values, backed by a bitset so that a
// proxy's "which categories pass through" test is O(1) regardless of how
// many categories are registered.
type Mask struct {
	bits *bitset.BitSet
	all  bool
}

// NewMask constructs a mask admitting exactly the given categories.
func NewMask(cats ...Category) Mask {
	bits := bitset.New(uint(numBuiltinCategories))
	for _, c := range cats {
		bits.Set(uint(c))
	}

	return Mask{bits: bits}
}

// All returns the mask admitting every category, present or future.
func All() Mask {
	return Mask{all: true}
}

// Test reports whether cat passes this mask.
func (m Mask) Test(cat Category) bool {
	if m.all {
		return true
	}

	return m.bits != nil && m.bits.Test(uint(cat))
}

// Sink accepts categorised diagnostic messages. A nil Sink is legal and
// discards everything.
type Sink interface {
	Emit(cat Category, format string, args ...any)
}

// Emit sends a message to sink if sink is non-nil, matching the "null sink
// discards" contract without every caller needing a nil check.
func Emit(sink Sink, cat Category, format string, args ...any) {
	if sink == nil {
		return
	}

	sink.Emit(cat, format, args...)
}

// LogrusSink adapts a *logrus.Logger (or the package-level default logger,
// if Logger is nil) into a Sink, tagging each entry with its category.
type LogrusSink struct {
	Logger *log.Logger
}

// NewLogrusSink constructs a Sink backed by logger. A nil logger falls back
// to logrus's package-level default logger.
func NewLogrusSink(logger *log.Logger) *LogrusSink {
	return &LogrusSink{Logger: logger}
}

// Emit implements Sink.
func (s *LogrusSink) Emit(cat Category, format string, args ...any) {
	entry := log.WithField("category", cat.String())
	if s.Logger != nil {
		entry = s.Logger.WithField("category", cat.String())
	}

	entry.Debugf(format, args...)
}

// ProxySink wraps a base sink with a category mask; messages outside the
// mask are dropped before they ever reach the base.
type ProxySink struct {
	Base Sink
	Mask Mask
}

// NewProxySink constructs a masking proxy over base.
func NewProxySink(base Sink, mask Mask) *ProxySink {
	return &ProxySink{Base: base, Mask: mask}
}

// Emit implements Sink.
func (p *ProxySink) Emit(cat Category, format string, args ...any) {
	if !p.Mask.Test(cat) {
		return
	}

	Emit(p.Base, cat, format, args...)
}
