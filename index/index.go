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
	"fmt"
	"slices"

	"golang.org/x/text/transform"

	"github.com/histlex/histlex/key"
	"github.com/histlex/histlex/suffix"
)

// Tuple is a single form association used to build an index.
type Tuple struct {
	// Form is the word form under which the entry is found.
	Form string

	// N is the entry's key disambiguator.
	N int

	// Payload is opaque per-form data carried alongside the entry
	// reference.
	Payload string

	// Base is the entry's canonical form. Together with N it
	// reconstructs the entry's key.
	Base string

	// Code tags the source of the form association.
	Code Provenance
}

// Match is a single index lookup result.
type Match struct {
	// Key is the matched entry's key, reconstructed by applying the
	// stored rewrite rule to the looked-up form.
	Key key.Key

	// Payload is the per-form data stored for the entry.
	Payload string

	// Code is the provenance of the form association.
	Code Provenance
}

// Options are options for building and querying an index.
type Options struct {
	// Folder returns a [transform.Transformer] that performs folding
	// (e.g. case folding, whitespace folding) on forms at build time and
	// on queries at lookup time.
	Folder func() transform.Transformer

	// MergePayload merges payloads when the same (form, disambiguator)
	// pair is inserted more than once. The first argument is the payload
	// already stored.
	MergePayload func(old, next string) string
}

// DefaultOptions is the default options for an Index.
var DefaultOptions = &Options{
	Folder: func() transform.Transformer {
		return transform.Nop
	},
	MergePayload: func(old, next string) string {
		if old == "" {
			return next
		}
		return old
	},
}

// value is the per-disambiguator data stored on a trie node.
type value struct {
	payload string

	// rules maps rewrite rules to provenance codes. Applying a rule to
	// the node's path string yields the entry's base form.
	rules map[suffix.Rule]Provenance
}

// node is a compressed trie node. The label is the edge string leading
// to the node from its parent; children are keyed by the first byte of
// their label.
type node struct {
	label    string
	children map[byte]*node
	values   map[int]*value
}

// Index maps word forms to entry keys. It is built once and is read-only
// afterwards; lookups are safe for concurrent use.
type Index struct {
	root   *node
	folder func() transform.Transformer
	merge  func(old, next string) string
}

// New builds an index from the given tuples. Tuples with the same form
// and disambiguator are merged; payload collisions are resolved by
// Options.MergePayload and rule collisions keep the smallest provenance
// code.
func New(tuples []Tuple, options *Options) (*Index, error) {
	if options == nil {
		options = DefaultOptions
	}

	x := &Index{
		root:   &node{},
		folder: options.Folder,
		merge:  options.MergePayload,
	}
	if x.folder == nil {
		x.folder = DefaultOptions.Folder
	}
	if x.merge == nil {
		x.merge = DefaultOptions.MergePayload
	}

	for _, t := range tuples {
		if err := t.Code.validate(); err != nil {
			return nil, err
		}
		if err := x.insert(t); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// fold applies the configured folding transformer to s.
func (x *Index) fold(s string) (string, error) {
	folded, _, err := transform.String(x.folder(), s)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", s, err)
	}
	return folded, nil
}

// insert adds a single tuple to the trie.
func (x *Index) insert(t Tuple) error {
	form, err := x.fold(t.Form)
	if err != nil {
		return err
	}
	rule := suffix.Between(form, t.Base)

	n := x.root
	s := form
	for s != "" {
		child, ok := n.children[s[0]]
		if !ok {
			child = &node{label: s}
			if n.children == nil {
				n.children = map[byte]*node{}
			}
			n.children[s[0]] = child
			n = child
			break
		}

		p := commonPrefixLen(child.label, s)
		if p == len(child.label) {
			n = child
			s = s[p:]
			continue
		}

		// Split the edge at the divergence point.
		inner := &node{
			label:    child.label[:p],
			children: map[byte]*node{child.label[p]: child},
		}
		child.label = child.label[p:]
		n.children[s[0]] = inner
		n = inner
		s = s[p:]
	}

	if n.values == nil {
		n.values = map[int]*value{}
	}
	v, ok := n.values[t.N]
	if !ok {
		v = &value{
			payload: t.Payload,
			rules:   map[suffix.Rule]Provenance{},
		}
		n.values[t.N] = v
	} else {
		v.payload = x.merge(v.payload, t.Payload)
	}
	if code, ok := v.rules[rule]; !ok || t.Code < code {
		v.rules[rule] = t.Code
	}
	return nil
}

// commonPrefixLen returns the length in bytes of the longest common
// prefix of a and b.
func commonPrefixLen(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return i
}

// Lookup walks the trie by the form's characters and returns all entries
// registered under the form. A form with no matches returns an empty
// result, never an error. Results are ordered by key.
func (x *Index) Lookup(form string) ([]Match, error) {
	folded, err := x.fold(form)
	if err != nil {
		return nil, err
	}

	n := x.root
	s := folded
	for s != "" {
		child, ok := n.children[s[0]]
		if !ok || len(s) < len(child.label) || s[:len(child.label)] != child.label {
			return nil, nil
		}
		s = s[len(child.label):]
		n = child
	}

	var matches []Match
	for _, id := range sortedIDs(n.values) {
		v := n.values[id]
		for _, r := range sortedRules(v.rules) {
			matches = append(matches, Match{
				Key:     key.Key{Word: suffix.Apply(r, folded), N: id},
				Payload: v.payload,
				Code:    v.rules[r],
			})
		}
	}
	slices.SortFunc(matches, compareMatch)
	return matches, nil
}

// LookupAll unions lookups over multiple forms. When the same key is
// reachable through forms with different provenance codes the smallest
// code wins. Results are ordered by key.
func (x *Index) LookupAll(forms []string) ([]Match, error) {
	best := map[key.Key]Match{}
	for _, form := range forms {
		matches, err := x.Lookup(form)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if b, ok := best[m.Key]; !ok || m.Code < b.Code {
				best[m.Key] = m
			}
		}
	}

	merged := make([]Match, 0, len(best))
	for _, m := range best {
		merged = append(merged, m)
	}
	slices.SortFunc(merged, compareMatch)
	return merged, nil
}

// Tuples extracts the full association list from the trie in a
// deterministic order. Building a new index from the result produces an
// extensionally equal index.
func (x *Index) Tuples() []Tuple {
	var tuples []Tuple
	var walk func(n *node, path string)
	walk = func(n *node, path string) {
		for _, id := range sortedIDs(n.values) {
			v := n.values[id]
			for _, r := range sortedRules(v.rules) {
				tuples = append(tuples, Tuple{
					Form:    path,
					N:       id,
					Payload: v.payload,
					Base:    suffix.Apply(r, path),
					Code:    v.rules[r],
				})
			}
		}

		bs := make([]int, 0, len(n.children))
		for b := range n.children {
			bs = append(bs, int(b))
		}
		slices.Sort(bs)
		for _, b := range bs {
			child := n.children[byte(b)]
			walk(child, path+child.label)
		}
	}
	walk(x.root, "")
	return tuples
}

// Reverse builds an index with forms and base forms swapped, turning a
// "word form to base form" index into a "base form to word form" index.
// Reversing twice yields an index with the same tuple set.
//
// Reverse assumes the configured folder is idempotent over stored forms;
// the default no-op folder always is.
func (x *Index) Reverse() (*Index, error) {
	tuples := x.Tuples()
	swapped := make([]Tuple, len(tuples))
	for i, t := range tuples {
		swapped[i] = Tuple{
			Form:    t.Base,
			N:       t.N,
			Payload: t.Payload,
			Base:    t.Form,
			Code:    t.Code,
		}
	}
	return New(swapped, &Options{
		Folder:       x.folder,
		MergePayload: x.merge,
	})
}

func sortedIDs(values map[int]*value) []int {
	ids := make([]int, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func sortedRules(rules map[suffix.Rule]Provenance) []suffix.Rule {
	rs := make([]suffix.Rule, 0, len(rules))
	for r := range rules {
		rs = append(rs, r)
	}
	slices.SortFunc(rs, func(a, b suffix.Rule) int {
		if a.Cut != b.Cut {
			return a.Cut - b.Cut
		}
		switch {
		case a.Suffix < b.Suffix:
			return -1
		case a.Suffix > b.Suffix:
			return 1
		default:
			return 0
		}
	})
	return rs
}

func compareMatch(a, b Match) int {
	if c := key.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	return int(a.Code) - int(b.Code)
}
