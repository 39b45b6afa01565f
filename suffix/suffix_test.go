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

package suffix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestBetween tests computing the rule between two strings.
func TestBetween(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		dst  string

		expected Rule
	}{
		{
			name: "identical",
			src:  "foo",
			dst:  "foo",

			expected: Rule{Cut: 0, Suffix: ""},
		},
		{
			name: "append only",
			src:  "foo",
			dst:  "fooo",

			expected: Rule{Cut: 0, Suffix: "o"},
		},
		{
			name: "cut only",
			src:  "fooo",
			dst:  "foo",

			expected: Rule{Cut: 1, Suffix: ""},
		},
		{
			name: "replace suffix",
			src:  "singen",
			dst:  "sang",

			expected: Rule{Cut: 5, Suffix: "ang"},
		},
		{
			name: "no common prefix",
			src:  "abc",
			dst:  "xyz",

			expected: Rule{Cut: 3, Suffix: "xyz"},
		},
		{
			name: "empty source",
			src:  "",
			dst:  "foo",

			expected: Rule{Cut: 0, Suffix: "foo"},
		},
		{
			name: "empty destination",
			src:  "foo",
			dst:  "",

			expected: Rule{Cut: 3, Suffix: ""},
		},
		{
			name: "multi-byte runes",
			src:  "häuser",
			dst:  "haus",

			expected: Rule{Cut: 5, Suffix: "aus"},
		},
		{
			name: "multi-byte common prefix",
			src:  "über",
			dst:  "übrig",

			expected: Rule{Cut: 2, Suffix: "rig"},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := Between(test.src, test.dst)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("Between (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestApply tests applying rules to source strings.
func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule Rule
		src  string

		expected string
	}{
		{
			name: "no-op",
			rule: Rule{Cut: 0, Suffix: ""},
			src:  "foo",

			expected: "foo",
		},
		{
			name: "append",
			rule: Rule{Cut: 0, Suffix: "s"},
			src:  "word",

			expected: "words",
		},
		{
			name: "cut and append",
			rule: Rule{Cut: 2, Suffix: "ung"},
			src:  "binden",

			expected: "bindung",
		},
		{
			name: "cut multi-byte runes",
			rule: Rule{Cut: 2, Suffix: ""},
			src:  "über",

			expected: "üb",
		},
		{
			name: "cut past start",
			rule: Rule{Cut: 10, Suffix: "x"},
			src:  "abc",

			expected: "x",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := Apply(test.rule, test.src)
			if got != test.expected {
				t.Errorf("Apply: want %q, got %q", test.expected, got)
			}
		})
	}
}

// TestRoundTrip tests that Apply(Between(a, b), a) == b.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"", ""},
		{"", "foo"},
		{"foo", ""},
		{"foo", "foo"},
		{"foo", "fooo"},
		{"fooo", "foo"},
		{"abc", "xyz"},
		{"singen", "sang"},
		{"häuser", "haus"},
		{"über", "übrig"},
		{"こと", "ことば"},
		{"ことば", "こと"},
		{"λόγος", "λόγῳ"},
	}

	for _, p := range pairs {
		a, b := p[0], p[1]
		if got := Apply(Between(a, b), a); got != b {
			t.Errorf("Apply(Between(%q, %q), %q): want %q, got %q", a, b, a, b, got)
		}
	}
}
