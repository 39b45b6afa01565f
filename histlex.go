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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/histlex/histlex/index"
	"github.com/histlex/histlex/key"
	"github.com/histlex/histlex/store"
)

// FormsFile is the name of the serialized form index blob under the
// dictionary root.
const FormsFile = "forms.bin"

// Options are options for opening and building dictionaries.
type Options struct {
	// Index configures form folding and payload merging for the form
	// index.
	Index *index.Options
}

// DefaultOptions is the default options for a dictionary.
var DefaultOptions = &Options{}

// Dict is an open dictionary. Entries and the form index are immutable
// once built, so any number of handles may read the same directory
// concurrently, including across processes.
type Dict[E store.Entry] struct {
	path  string
	index *index.Index
	store *store.Store[E]
}

// TryOpen probes path for a valid dictionary. It returns false, without
// an error, when the forms blob is missing or fails to deserialize or
// when the entries directory does not exist. Errors are reserved for
// I/O failures other than a missing dictionary.
func TryOpen[E store.Entry](path string, codec store.Codec[E], options *Options) (*Dict[E], bool, error) {
	if options == nil {
		options = DefaultOptions
	}

	f, err := os.Open(filepath.Join(path, FormsFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("opening forms blob: %w", err)
	}
	defer f.Close()

	x, err := index.Read(f, options.Index)
	if err != nil {
		// A blob that does not deserialize means this is not a valid
		// dictionary, not that the probe failed.
		return nil, false, nil
	}

	s := store.New(path, codec)
	if err := s.Validate(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return &Dict[E]{
		path:  path,
		index: x,
		store: s,
	}, true, nil
}

// Open opens the dictionary at path. Unlike TryOpen a missing or
// structurally invalid dictionary is a fatal error.
func Open[E store.Entry](path string, codec store.Codec[E], options *Options) (*Dict[E], error) {
	d, ok, err := TryOpen(path, codec, options)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotDictionary, path)
	}
	return d, nil
}

// OpenAll opens all dictionaries under a directory tree. It returns all
// successfully opened dictionaries along with any errors that occurred.
func OpenAll[E store.Entry](path string, codec store.Codec[E], options *Options) ([]*Dict[E], []error) {
	var dicts []*Dict[E]
	var errs []error
	if err := filepath.WalkDir(path, func(p string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		d, ok, err := TryOpen(p, codec, options)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if ok {
			dicts = append(dicts, d)
			// A dictionary does not nest further dictionaries.
			return fs.SkipDir
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}

// Build creates a new dictionary at path from the given entries and
// returns an open handle over it. The target must not exist or must be
// an empty directory. Entries are processed in input order; reordering
// the input changes the assigned keys.
func Build[E store.Entry](path string, entries []BuildEntry[E], codec store.Codec[E], options *Options) (*Dict[E], error) {
	if options == nil {
		options = DefaultOptions
	}

	if fi, err := os.Stat(path); err == nil {
		if !fi.IsDir() {
			return nil, fmt.Errorf("%w: %q", ErrNonEmptyTarget, path)
		}
		dirents, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("reading target %q: %w", path, err)
		}
		if len(dirents) > 0 {
			return nil, fmt.Errorf("%w: %q", ErrNonEmptyTarget, path)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking target %q: %w", path, err)
	} else if err := os.MkdirAll(path, 0o700); err != nil {
		return nil, fmt.Errorf("creating target %q: %w", path, err)
	}

	s := store.New(path, codec)
	if err := s.Init(); err != nil {
		return nil, err
	}

	canonical := make([]string, len(entries))
	for i, be := range entries {
		forms := be.Entry.Forms()
		if len(forms) == 0 {
			return nil, fmt.Errorf("entry %q has no forms", be.Entry.ID())
		}
		canonical[i] = forms[0]
	}
	keys := key.Assign(canonical)

	var tuples []index.Tuple
	for i, be := range entries {
		if err := s.Save(keys[i], be.Entry); err != nil {
			return nil, err
		}
		tuples = append(tuples, formTuples(keys[i], be)...)
	}

	x, err := index.New(tuples, options.Index)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(filepath.Join(path, FormsFile))
	if err != nil {
		return nil, fmt.Errorf("creating forms blob: %w", err)
	}
	if _, err := x.WriteTo(f); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("writing forms blob: %w", err)
	}

	return &Dict[E]{
		path:  path,
		index: x,
		store: s,
	}, nil
}

// formTuples computes the three-way provenance split between the
// entry's own forms and the caller-supplied extra forms.
func formTuples[E store.Entry](k key.Key, be BuildEntry[E]) []index.Tuple {
	extra := make(map[string]bool, len(be.ExtraForms))
	for _, f := range be.ExtraForms {
		extra[f] = true
	}

	var tuples []index.Tuple
	seen := map[string]bool{}
	for _, f := range be.Entry.Forms() {
		if seen[f] {
			continue
		}
		seen[f] = true
		code := index.Original
		if extra[f] {
			code = index.Shared
		}
		tuples = append(tuples, index.Tuple{Form: f, N: k.N, Base: k.Word, Code: code})
	}
	for _, f := range be.ExtraForms {
		if seen[f] {
			continue
		}
		seen[f] = true
		tuples = append(tuples, index.Tuple{Form: f, N: k.N, Base: k.Word, Code: index.Copy})
	}
	return tuples
}

// Path returns the dictionary's root directory.
func (d *Dict[E]) Path() string {
	return d.path
}

// Index returns the dictionary's form index.
func (d *Dict[E]) Index() *index.Index {
	return d.index
}

// Lookup returns the entries registered under the given word form
// together with the provenance of each form association. A form with no
// matches returns an empty result.
func (d *Dict[E]) Lookup(form string) ([]Result[E], error) {
	matches, err := d.index.Lookup(form)
	if err != nil {
		return nil, err
	}
	return d.resolve(matches)
}

// LookupAll unions lookups over multiple forms. When the same entry is
// reachable through forms with different provenance codes the most
// historical code wins.
func (d *Dict[E]) LookupAll(forms []string) ([]Result[E], error) {
	matches, err := d.index.LookupAll(forms)
	if err != nil {
		return nil, err
	}
	return d.resolve(matches)
}

// resolve loads the entry for every index match. A match the store
// cannot resolve is a consistency violation, not an ordinary miss.
func (d *Dict[E]) resolve(matches []index.Match) ([]Result[E], error) {
	results := make([]Result[E], 0, len(matches))
	for _, m := range matches {
		e, err := d.store.LoadKey(m.Key)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("%w: index references %q: %w", ErrInconsistentStore, m.Key.Path(), err)
			}
			return nil, err
		}
		results = append(results, Result[E]{
			Entry: e,
			Code:  m.Code,
		})
	}
	return results, nil
}

// Load loads the entry named by the key. A missing entry is a fatal
// ErrNotFound.
func (d *Dict[E]) Load(k key.Key) (E, error) {
	e, err := d.store.LoadKey(k)
	if err != nil {
		var zero E
		if errors.Is(err, store.ErrNotFound) {
			return zero, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return zero, err
	}
	return e, nil
}

// TryLoad loads the entry named by the key, reporting a missing entry
// as absent rather than as an error.
func (d *Dict[E]) TryLoad(k key.Key) (E, bool, error) {
	e, err := d.store.LoadKey(k)
	if err != nil {
		var zero E
		if errors.Is(err, store.ErrNotFound) {
			return zero, false, nil
		}
		return zero, false, err
	}
	return e, true, nil
}

// LoadID loads the entry with the given external identifier, bypassing
// the key indirection.
func (d *Dict[E]) LoadID(id string) (E, error) {
	e, err := d.store.LoadID(id)
	if err != nil {
		var zero E
		if errors.Is(err, store.ErrNotFound) {
			return zero, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return zero, err
	}
	return e, nil
}

// TryLoadID loads the entry with the given external identifier,
// reporting a missing entry as absent rather than as an error.
func (d *Dict[E]) TryLoadID(id string) (E, bool, error) {
	e, err := d.store.LoadID(id)
	if err != nil {
		var zero E
		if errors.Is(err, store.ErrNotFound) {
			return zero, false, nil
		}
		return zero, false, err
	}
	return e, true, nil
}

// Keys lists all entry keys in enumeration order. A key file name that
// does not parse indicates corruption and is fatal.
func (d *Dict[E]) Keys() ([]key.Key, error) {
	keys, err := d.store.Keys()
	if err != nil {
		if errors.Is(err, key.ErrBadKeyPath) {
			return nil, fmt.Errorf("%w: %w", ErrCorruptIndex, err)
		}
		return nil, err
	}
	return keys, nil
}
