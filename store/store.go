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

// Package store implements the per-entry record store.
//
// Entries are persisted under a dictionary root as one file per record:
//
//	<root>/entries/   one file per entry, named by its external ID
//	<root>/keys/      one file per key, named "{N}-{word}", whose
//	                  content is the entry's external ID
//
// The keys directory is an indirection: loading by key first resolves
// the key file to the external ID and then loads the record, so lookups
// by key and by ID share the same record layout. All files are written
// once during a build and never mutated, so any number of stores may
// read the same directory concurrently.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/histlex/histlex/key"
)

const (
	// EntriesDir is the record directory name under the dictionary root.
	EntriesDir = "entries"

	// KeysDir is the key indirection directory name under the
	// dictionary root.
	KeysDir = "keys"
)

// ErrNotFound indicates that a requested key or identifier has no
// stored record.
var ErrNotFound = errors.New("entry not found")

// Entry is a lexical record. The store treats the record as an opaque
// blob once encoded.
type Entry interface {
	// Forms returns the entry's word forms. It is non-empty and its
	// first element is the canonical form.
	Forms() []string

	// ID returns the entry's external identifier, unique across the
	// whole collection.
	ID() string
}

// Codec encodes and decodes entry records. It is owned by the entry
// record's module, not by the store.
type Codec[E Entry] interface {
	Encode(e E) ([]byte, error)
	Decode(data []byte) (E, error)
}

// Store reads and writes per-entry record files under a dictionary
// root.
type Store[E Entry] struct {
	path  string
	codec Codec[E]
}

// New returns a store over the given dictionary root.
func New[E Entry](path string, codec Codec[E]) *Store[E] {
	return &Store[E]{
		path:  path,
		codec: codec,
	}
}

// Init creates the entries and keys directories.
func (s *Store[E]) Init() error {
	for _, dir := range []string{EntriesDir, KeysDir} {
		if err := os.Mkdir(filepath.Join(s.path, dir), 0o700); err != nil {
			return fmt.Errorf("creating %q: %w", dir, err)
		}
	}
	return nil
}

// Validate checks that the entries directory exists.
func (s *Store[E]) Validate() error {
	fi, err := os.Stat(filepath.Join(s.path, EntriesDir))
	if err != nil {
		return fmt.Errorf("checking entries directory: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("checking entries directory: %w", fs.ErrNotExist)
	}
	return nil
}

// Save persists the entry record under its external ID and writes the
// key file resolving k to that ID.
func (s *Store[E]) Save(k key.Key, e E) error {
	keyPath := filepath.Join(s.path, KeysDir, k.Path())
	if err := os.WriteFile(keyPath, []byte(e.ID()), 0o600); err != nil {
		return fmt.Errorf("writing key file %q: %w", k.Path(), err)
	}

	data, err := s.codec.Encode(e)
	if err != nil {
		return fmt.Errorf("encoding entry %q: %w", e.ID(), err)
	}
	entryPath := filepath.Join(s.path, EntriesDir, e.ID())
	if err := os.WriteFile(entryPath, data, 0o600); err != nil {
		return fmt.Errorf("writing entry %q: %w", e.ID(), err)
	}
	return nil
}

// LoadKey loads the entry record named by the key. It fails with
// ErrNotFound when either the key file or the record is missing.
func (s *Store[E]) LoadKey(k key.Key) (E, error) {
	var zero E
	b, err := os.ReadFile(filepath.Join(s.path, KeysDir, k.Path()))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zero, fmt.Errorf("%w: key %q", ErrNotFound, k.Path())
		}
		return zero, fmt.Errorf("reading key file %q: %w", k.Path(), err)
	}
	return s.LoadID(string(b))
}

// LoadID loads the entry record for the external identifier, bypassing
// the key indirection. It fails with ErrNotFound when the record is
// missing.
func (s *Store[E]) LoadID(id string) (E, error) {
	var zero E
	b, err := os.ReadFile(filepath.Join(s.path, EntriesDir, id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zero, fmt.Errorf("%w: id %q", ErrNotFound, id)
		}
		return zero, fmt.Errorf("reading entry %q: %w", id, err)
	}
	e, err := s.codec.Decode(b)
	if err != nil {
		return zero, fmt.Errorf("decoding entry %q: %w", id, err)
	}
	return e, nil
}

// Keys lists all keys in the store in directory order. A file name that
// does not parse as a key is a fatal error since the keys directory is
// assumed to be entirely produced by this store.
func (s *Store[E]) Keys() ([]key.Key, error) {
	dirents, err := os.ReadDir(filepath.Join(s.path, KeysDir))
	if err != nil {
		return nil, fmt.Errorf("reading keys directory: %w", err)
	}

	keys := make([]key.Key, 0, len(dirents))
	for _, d := range dirents {
		k, err := key.ParsePath(d.Name())
		if err != nil {
			return nil, fmt.Errorf("listing keys: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
