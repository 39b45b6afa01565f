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

package folding

import (
	"testing"

	"golang.org/x/text/transform"
)

// TestWhitespaceFolder tests whitespace folding end to end.
func TestWhitespaceFolder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string

		expected string
	}{
		{
			name:     "empty",
			src:      "",
			expected: "",
		},
		{
			name:     "no whitespace",
			src:      "foo",
			expected: "foo",
		},
		{
			name:     "leading whitespace",
			src:      " \t　foo",
			expected: "foo",
		},
		{
			name:     "trailing whitespace",
			src:      "foo \n",
			expected: "foo",
		},
		{
			name:     "internal span",
			src:      "foo \t bar",
			expected: "foo bar",
		},
		{
			name:     "multiple spans",
			src:      "  der   alte\thof  ",
			expected: "der alte hof",
		},
		{
			name:     "whitespace only",
			src:      " \t ",
			expected: "",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, _, err := transform.String(&WhitespaceFolder{}, test.src)
			if err != nil {
				t.Fatalf("transform.String: unexpected error: %v", err)
			}
			if got != test.expected {
				t.Errorf("fold(%q): want %q, got %q", test.src, test.expected, got)
			}
		})
	}
}
