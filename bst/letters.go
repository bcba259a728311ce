// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bst

// OtherKey is the bucket for every byte that is neither a letter nor a
// space.
const OtherKey byte = '_'

// LetterKey folds c onto its letter-count bucket: lowercase letters for
// a-z and A-Z, ' ' for the space and OtherKey for anything else.
func LetterKey(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}

	switch {
	case c >= 'a' && c <= 'z', c == ' ':
		return c
	default:
		return OtherKey
	}
}

// LetterCount initialises m and tallies input into it, one key per
// bucket. m should be empty: like Init, a populated map is orphaned, not
// freed. The resulting tree is not balanced; call Balance if needed.
func LetterCount(m Map, input []byte) {
	m.Init()
	for _, c := range input {
		key := LetterKey(c)
		count, _ := m.Search(key) // zero when absent
		m.Insert(key, count+1)
	}
}
