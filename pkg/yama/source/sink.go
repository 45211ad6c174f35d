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
package source

import "github.com/TirousCoded/Yama-sub005/pkg/yama/debug"

// CollectingSink decorates an inner debug.Sink (nil discards, matching
// ProxySink), recording every message emitted through it as a SyntaxError in
// Maps in addition to forwarding it onward. This is what lets a caller that
// needs "every problem with this input, not just the first" - the verifier's
// link-error callers among them - recover the full diagnostic list after a
// single pass, matching the []SyntaxError shape a validation pass collects
// its findings into.
type CollectingSink struct {
	Base debug.Sink
	Maps Maps
}

// NewCollectingSink constructs a CollectingSink forwarding to base.
func NewCollectingSink(base debug.Sink) *CollectingSink {
	return &CollectingSink{Base: base}
}

// Emit implements debug.Sink.
func (s *CollectingSink) Emit(cat debug.Category, format string, args ...any) {
	s.Maps.Addf(Span{}, format, args...)
	debug.Emit(s.Base, cat, format, args...)
}

var _ debug.Sink = (*CollectingSink)(nil)
