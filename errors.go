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
)

var (
	// ErrNotDictionary indicates that a directory failed structural
	// validation: the forms blob is missing or does not deserialize, or
	// the entries directory does not exist.
	ErrNotDictionary = errors.New("not a dictionary")

	// ErrNotFound indicates that a requested key or identifier has no
	// stored record.
	ErrNotFound = errors.New("not found")

	// ErrCorruptIndex indicates that the store's own invariants were
	// violated, e.g. a key file name that does not parse. It cannot be
	// recovered from.
	ErrCorruptIndex = errors.New("corrupt index")

	// ErrNonEmptyTarget indicates that Build was invoked against an
	// existing non-empty directory.
	ErrNonEmptyTarget = errors.New("target directory not empty")

	// ErrInconsistentStore indicates that the form index references an
	// entry the store cannot resolve. The index and store are built
	// together, so a mismatch is corruption rather than an ordinary
	// miss.
	ErrInconsistentStore = errors.New("inconsistent store")
)
