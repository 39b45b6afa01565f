// Copyright 2025 The histlex Authors
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

// Package key implements structured entry keys.
//
// A Key names a single entry by its canonical word form together with a
// disambiguator that separates entries sharing the same canonical form.
// Disambiguators are assigned densely starting at 1 in processing order,
// so key stability across rebuilds requires a stable input ordering.
package key

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadKeyPath indicates a key path string that cannot be parsed.
var ErrBadKeyPath = errors.New("malformed key path")

// Key uniquely names an entry within a dictionary.
type Key struct {
	// Word is the entry's canonical word form.
	Word string

	// N is the disambiguator. It is 1 for the first entry with a given
	// canonical form and increases densely in build order.
	N int
}

// String returns the key's path representation.
func (k Key) String() string {
	return k.Path()
}

// Path renders the key as a file-system-safe path component of the form
// "{N}-{Word}".
func (k Key) Path() string {
	return strconv.Itoa(k.N) + "-" + k.Word
}

// Compare orders keys by (Word, N). It returns a negative number when
// a < b, a positive number when a > b and zero when the keys are equal.
func Compare(a, b Key) int {
	if c := strings.Compare(a.Word, b.Word); c != 0 {
		return c
	}
	switch {
	case a.N < b.N:
		return -1
	case a.N > b.N:
		return 1
	default:
		return 0
	}
}

// ParsePath parses a path component produced by Path. It fails when the
// string does not contain a '-' separator after a decimal prefix or when
// the disambiguator is not positive.
func ParsePath(s string) (Key, error) {
	i := strings.IndexByte(s, '-')
	if i <= 0 {
		return Key{}, fmt.Errorf("%w: %q", ErrBadKeyPath, s)
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q: %w", ErrBadKeyPath, s, err)
	}
	if n < 1 {
		return Key{}, fmt.Errorf("%w: %q: disambiguator must be positive", ErrBadKeyPath, s)
	}
	return Key{Word: s[i+1:], N: n}, nil
}

// Assign assigns keys to a sequence of canonical forms in order. Each
// distinct form receives disambiguators 1, 2, 3... in first-seen order.
// The result is deterministic for a fixed input ordering and changes
// when the input is reordered.
func Assign(canonical []string) []Key {
	last := make(map[string]int, len(canonical))
	keys := make([]Key, len(canonical))
	for i, word := range canonical {
		last[word]++
		keys[i] = Key{Word: word, N: last[word]}
	}
	return keys
}
