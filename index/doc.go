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

// Package index implements the word-form index.
//
// The index is a compressed trie mapping word forms to entry keys. Each
// terminal node carries, per entry disambiguator, a payload and a set of
// suffix rewrite rules tagged with a provenance code. A rule transforms
// the trie path string back into the entry's canonical (base) form, so
// variants sharing a prefix with their base form cost only the differing
// suffix in the serialized index.
//
// The whole index is serialized as a single blob: a fixed header with
// magic number, format version, tuple count and payload checksum,
// followed by a zstd-compressed tuple list. The trie is rebuilt from the
// tuple list when the blob is read.
package index
