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

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"

	"github.com/histlex/histlex/internal/folding"
	"github.com/histlex/histlex/key"
)

// TestIndex_Lookup tests exact lookup over a built index.
func TestIndex_Lookup(t *testing.T) {
	t.Parallel()

	tuples := []Tuple{
		{Form: "haus", N: 1, Base: "haus", Code: Original},
		{Form: "häuser", N: 1, Base: "haus", Code: Original},
		{Form: "haus", N: 2, Base: "haus", Code: Copy},
		{Form: "hausen", N: 1, Base: "hausen", Code: Shared},
		{Form: "hof", N: 1, Payload: "m.", Base: "hof", Code: Original},
	}

	tests := []struct {
		name string
		form string

		expected []Match
	}{
		{
			name: "no match",
			form: "garten",

			expected: nil,
		},
		{
			name: "prefix of a stored form",
			form: "hau",

			expected: nil,
		},
		{
			name: "extension of a stored form",
			form: "hausens",

			expected: nil,
		},
		{
			name: "multiple entries on one form",
			form: "haus",

			expected: []Match{
				{Key: key.Key{Word: "haus", N: 1}, Code: Original},
				{Key: key.Key{Word: "haus", N: 2}, Code: Copy},
			},
		},
		{
			name: "variant form resolves to base",
			form: "häuser",

			expected: []Match{
				{Key: key.Key{Word: "haus", N: 1}, Code: Original},
			},
		},
		{
			name: "payload carried through",
			form: "hof",

			expected: []Match{
				{Key: key.Key{Word: "hof", N: 1}, Payload: "m.", Code: Original},
			},
		},
	}

	x, err := New(tuples, nil)
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := x.Lookup(test.form)
			if err != nil {
				t.Fatalf("Lookup(%q): unexpected error: %v", test.form, err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("Lookup(%q) (-want, +got):\n%s", test.form, diff)
			}
		})
	}
}

// TestIndex_LookupAll tests the union lookup and its provenance code
// precedence.
func TestIndex_LookupAll(t *testing.T) {
	t.Parallel()

	tuples := []Tuple{
		{Form: "gehen", N: 1, Base: "gehen", Code: Shared},
		{Form: "ging", N: 1, Base: "gehen", Code: Original},
		{Form: "gegangen", N: 1, Base: "gehen", Code: Copy},
		{Form: "gehen", N: 2, Base: "gehen", Code: Copy},
	}
	x, err := New(tuples, nil)
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		forms []string

		expected []Match
	}{
		{
			name:  "empty",
			forms: nil,

			expected: []Match{},
		},
		{
			name:  "original wins over shared",
			forms: []string{"gehen", "ging"},

			expected: []Match{
				{Key: key.Key{Word: "gehen", N: 1}, Code: Original},
				{Key: key.Key{Word: "gehen", N: 2}, Code: Copy},
			},
		},
		{
			name:  "copy loses to shared and original",
			forms: []string{"gegangen", "gehen", "ging"},

			expected: []Match{
				{Key: key.Key{Word: "gehen", N: 1}, Code: Original},
				{Key: key.Key{Word: "gehen", N: 2}, Code: Copy},
			},
		},
		{
			name:  "duplicate forms are idempotent",
			forms: []string{"gehen", "gehen"},

			expected: []Match{
				{Key: key.Key{Word: "gehen", N: 1}, Code: Shared},
				{Key: key.Key{Word: "gehen", N: 2}, Code: Copy},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := x.LookupAll(test.forms)
			if err != nil {
				t.Fatalf("LookupAll: unexpected error: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Errorf("LookupAll (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestIndex_payloadMerge tests the caller-supplied payload merge.
func TestIndex_payloadMerge(t *testing.T) {
	t.Parallel()

	tuples := []Tuple{
		{Form: "wort", N: 1, Payload: "", Base: "wort", Code: Original},
		{Form: "wort", N: 1, Payload: "n.", Base: "wort", Code: Shared},
		{Form: "wort", N: 1, Payload: "ignored", Base: "wort", Code: Shared},
	}
	x, err := New(tuples, nil)
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}

	got, err := x.Lookup("wort")
	if err != nil {
		t.Fatalf("Lookup: unexpected error: %v", err)
	}
	expected := []Match{
		{Key: key.Key{Word: "wort", N: 1}, Payload: "n.", Code: Original},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Lookup (-want, +got):\n%s", diff)
	}
}

// TestIndex_folding tests lookup with a folding transformer.
func TestIndex_folding(t *testing.T) {
	t.Parallel()

	options := &Options{
		Folder: func() transform.Transformer {
			return &folding.WhitespaceFolder{}
		},
	}
	tuples := []Tuple{
		{Form: " der\thof ", N: 1, Base: "der hof", Code: Original},
	}
	x, err := New(tuples, options)
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}

	got, err := x.Lookup("der  hof")
	if err != nil {
		t.Fatalf("Lookup: unexpected error: %v", err)
	}
	expected := []Match{
		{Key: key.Key{Word: "der hof", N: 1}, Code: Original},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Lookup (-want, +got):\n%s", diff)
	}
}

// TestIndex_badProvenance tests that building rejects invalid tags.
func TestIndex_badProvenance(t *testing.T) {
	t.Parallel()

	for _, code := range []Provenance{0, 4, 255} {
		_, err := New([]Tuple{{Form: "a", N: 1, Base: "a", Code: code}}, nil)
		if !errors.Is(err, ErrBadProvenance) {
			t.Errorf("New with code %d: want ErrBadProvenance, got %v", code, err)
		}
	}
}

// TestIndex_Reverse tests that reversing twice preserves the tuple set.
func TestIndex_Reverse(t *testing.T) {
	t.Parallel()

	tuples := []Tuple{
		{Form: "haus", N: 1, Base: "haus", Code: Original},
		{Form: "häuser", N: 1, Base: "haus", Code: Shared},
		{Form: "hausen", N: 2, Base: "haus", Code: Copy},
		{Form: "hof", N: 1, Payload: "m.", Base: "hof", Code: Original},
	}
	x, err := New(tuples, nil)
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}

	r, err := x.Reverse()
	if err != nil {
		t.Fatalf("Reverse: unexpected error: %v", err)
	}

	// The reversed index answers lookups by base form.
	got, err := r.Lookup("haus")
	if err != nil {
		t.Fatalf("Lookup: unexpected error: %v", err)
	}
	expected := []Match{
		{Key: key.Key{Word: "haus", N: 1}, Code: Original},
		{Key: key.Key{Word: "hausen", N: 2}, Code: Copy},
		{Key: key.Key{Word: "häuser", N: 1}, Code: Shared},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("reversed Lookup (-want, +got):\n%s", diff)
	}

	rr, err := r.Reverse()
	if err != nil {
		t.Fatalf("Reverse: unexpected error: %v", err)
	}
	if diff := cmp.Diff(x.Tuples(), rr.Tuples()); diff != "" {
		t.Errorf("Reverse(Reverse(x)) tuple set (-want, +got):\n%s", diff)
	}
}
