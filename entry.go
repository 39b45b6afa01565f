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
	"github.com/histlex/histlex/index"
	"github.com/histlex/histlex/store"
)

// Entry is a lexical record as consumed by the store. See
// [store.Entry].
type Entry = store.Entry

// BuildEntry is a single build input: an entry together with the forms
// attested for it in the reference lexicon.
type BuildEntry[E store.Entry] struct {
	// Entry is the entry record to persist.
	Entry E

	// ExtraForms are the forms attested in the reference lexicon. Forms
	// present both here and in the entry's own form list are indexed as
	// Shared; forms present only here are indexed as Copy.
	ExtraForms []string
}

// Result is a single lookup result: a resolved entry and the provenance
// of the form association that matched it.
type Result[E store.Entry] struct {
	Entry E
	Code  index.Provenance
}
