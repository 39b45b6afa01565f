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
	"fmt"
)

// ErrBadProvenance indicates a provenance tag byte outside the valid
// range. It is a corruption error and is never recoverable.
var ErrBadProvenance = errors.New("invalid provenance tag")

// Provenance describes where the association between a word form and an
// entry was attested. It is persisted as a single tagged byte.
//
// The numeric order implements merge precedence: when the same key is
// reachable through forms carrying different codes, the smallest code
// wins, so an attestation in the historical source is never overwritten
// by one reconstructed from the reference lexicon.
type Provenance byte

const (
	// Original marks a form attested only in the historical source.
	Original Provenance = 1

	// Copy marks a form attested only in the reference lexicon.
	Copy Provenance = 2

	// Shared marks a form attested in both sources.
	Shared Provenance = 3
)

// String implements fmt.Stringer.
func (p Provenance) String() string {
	switch p {
	case Original:
		return "original"
	case Copy:
		return "copy"
	case Shared:
		return "shared"
	default:
		return fmt.Sprintf("invalid(0x%02x)", byte(p))
	}
}

// validate checks that the tag byte is one of the three valid codes.
func (p Provenance) validate() error {
	switch p {
	case Original, Copy, Shared:
		return nil
	default:
		return fmt.Errorf("%w: 0x%02x", ErrBadProvenance, byte(p))
	}
}
