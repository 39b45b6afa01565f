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

package histlex

import (
	"errors"
	"fmt"

	"github.com/histlex/histlex/key"
	"github.com/histlex/histlex/store"
)

// Scanner iterates over all entries of a dictionary in key enumeration
// order. The key list is snapshotted when the scanner is created but
// each record is read from disk only when Scan advances to it, so a
// partial scan performs proportional I/O. Creating a new scanner
// restarts the enumeration and yields the same sequence.
type Scanner[E store.Entry] struct {
	d      *Dict[E]
	keys   []key.Key
	i      int
	cur    E
	curKey key.Key
	strict bool
	err    error
}

// Entries returns a scanner over all entries of the dictionary.
func (d *Dict[E]) Entries() (*Scanner[E], error) {
	keys, err := d.Keys()
	if err != nil {
		return nil, err
	}
	return &Scanner[E]{
		d:      d,
		keys:   keys,
		strict: true,
	}, nil
}

// Strict controls how the scanner treats keys whose record cannot be
// loaded. In strict mode (the default) a missing record stops the scan
// with an ErrInconsistentStore; otherwise the key is skipped. Decode
// failures stop the scan in either mode.
func (s *Scanner[E]) Strict(strict bool) {
	s.strict = strict
}

// Scan advances to the next entry, reading its record from disk. It
// returns false when the enumeration is exhausted or an error occurred;
// Err reports the error.
func (s *Scanner[E]) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.i < len(s.keys) {
		k := s.keys[s.i]
		s.i++

		e, err := s.d.store.LoadKey(k)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				if !s.strict {
					continue
				}
				err = fmt.Errorf("%w: key %q: %w", ErrInconsistentStore, k.Path(), err)
			}
			s.err = err
			return false
		}

		s.curKey = k
		s.cur = e
		return true
	}
	return false
}

// Key returns the key of the current entry.
func (s *Scanner[E]) Key() key.Key {
	return s.curKey
}

// Entry returns the current entry.
func (s *Scanner[E]) Entry() E {
	return s.cur
}

// Err returns the first error encountered during scanning.
func (s *Scanner[E]) Err() error {
	return s.err
}
