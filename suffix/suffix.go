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

// Package suffix implements minimal suffix rewrite rules.
//
// A Rule transforms one string into another by cutting a number of
// trailing runes and appending a replacement suffix. Rules are used to
// store word-form variants relative to a shared index key so that only
// the differing suffix occupies space in the serialized index.
package suffix

import (
	"fmt"
	"unicode/utf8"
)

// Rule rewrites the suffix of a string. Applying a Rule drops the last
// Cut runes of the source string and appends Suffix.
type Rule struct {
	// Cut is the number of trailing runes to remove. It counts runes,
	// not bytes.
	Cut int

	// Suffix is the replacement appended after the cut.
	Suffix string
}

// String returns a compact representation of the rule.
func (r Rule) String() string {
	return fmt.Sprintf("-%d+%q", r.Cut, r.Suffix)
}

// Between returns the Rule that transforms src into dst. The rule cuts
// everything after the longest common prefix of the two strings and
// appends the remainder of dst, so Apply(Between(src, dst), src) == dst
// holds for all src and dst.
func Between(src, dst string) Rule {
	// i is the byte offset of the first difference. Equal runes encode
	// to equal bytes so a single offset tracks both strings.
	i := 0
	for i < len(src) && i < len(dst) {
		rs, ns := utf8.DecodeRuneInString(src[i:])
		rd, nd := utf8.DecodeRuneInString(dst[i:])
		if rs != rd || ns != nd {
			break
		}
		i += ns
	}
	return Rule{
		Cut:    utf8.RuneCountInString(src[i:]),
		Suffix: dst[i:],
	}
}

// Apply rewrites src according to the rule. If the rule cuts more runes
// than src contains the whole string is replaced by the suffix.
func Apply(r Rule, src string) string {
	i := len(src)
	for n := 0; n < r.Cut && i > 0; n++ {
		_, size := utf8.DecodeLastRuneInString(src[:i])
		i -= size
	}
	if r.Suffix == "" {
		return src[:i]
	}
	return src[:i] + r.Suffix
}
