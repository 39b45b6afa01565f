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

// Package histlex implements a read-optimized on-disk store for
// historical dictionary entries.
//
// A dictionary is a directory containing several artifacts:
//  1. A forms.bin file holding the serialized form index: a compressed
//     trie mapping every known word form to the entries it belongs to,
//     with suffix rewrite rules recovering each entry's canonical form
//     and a provenance code recording where the form was attested.
//  2. An entries/ directory with one binary record per entry, named by
//     the entry's external identifier.
//  3. A keys/ directory with one file per structured key, named
//     "{disambiguator}-{canonical form}", whose content is the entry's
//     external identifier.
//
// Dictionaries are built once with Build and then opened read-only any
// number of times, concurrently and across processes. There is no
// update-in-place; rebuilding writes a fresh directory tree.
package histlex
