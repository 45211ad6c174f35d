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

// Package str provides Str, an immutable, hash-cached piece of text used as
// the canonical identity type throughout the core: type names, parcel heads,
// module paths and link symbols are all Str values.
package str

import "hash/fnv"

// Str is immutable text whose hash is computed once, at construction, and
// cached. Two Str values compare equal iff their underlying byte sequences
// are equal; the cached hash is never consulted for equality and is only
// exposed through Hash.
type Str struct {
	text string
	hash uint64
}

// New constructs a Str from a Go string, pre-computing its hash.
func New(text string) Str {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	return Str{text: text, hash: h.Sum64()}
}

// Empty is the canonical empty Str.
var Empty = New("")

// String returns the underlying text.
func (s Str) String() string {
	return s.text
}

// Hash returns the pre-computed content hash.
func (s Str) Hash() uint64 {
	return s.hash
}

// Empty reports whether this Str has no characters.
func (s Str) Empty() bool {
	return len(s.text) == 0
}

// Eq reports content equality between two Str values.
func (s Str) Eq(other Str) bool {
	return s.text == other.text
}

// Less imposes an arbitrary but total lexicographic order, useful for
// deterministic iteration over maps keyed by Str.
func (s Str) Less(other Str) bool {
	return s.text < other.text
}
