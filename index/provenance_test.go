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

package index

import (
	"errors"
	"testing"
)

// TestProvenance_validate tests tag byte validation.
func TestProvenance_validate(t *testing.T) {
	t.Parallel()

	for _, p := range []Provenance{Original, Copy, Shared} {
		if err := p.validate(); err != nil {
			t.Errorf("validate(%v): unexpected error: %v", p, err)
		}
	}
	for _, p := range []Provenance{0, 4, 100, 255} {
		if err := p.validate(); !errors.Is(err, ErrBadProvenance) {
			t.Errorf("validate(%d): want ErrBadProvenance, got %v", byte(p), err)
		}
	}
}

// TestProvenance_order tests the merge precedence ordering.
func TestProvenance_order(t *testing.T) {
	t.Parallel()

	if !(Original < Copy && Copy < Shared) {
		t.Errorf("want Original < Copy < Shared, got %d, %d, %d", Original, Copy, Shared)
	}
}

// TestProvenance_String tests the human readable tags.
func TestProvenance_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		p        Provenance
		expected string
	}{
		{Original, "original"},
		{Copy, "copy"},
		{Shared, "shared"},
		{0, "invalid(0x00)"},
	}
	for _, test := range tests {
		if got := test.p.String(); got != test.expected {
			t.Errorf("String(%d): want %q, got %q", byte(test.p), test.expected, got)
		}
	}
}
