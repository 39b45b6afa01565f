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

// Package article implements a concrete dictionary entry record and its
// binary codec.
//
// An article carries an external identifier, an ordered list of word
// forms whose first element is the canonical form, and a sequence of
// typed data sections. Section types are single tag bytes: lower case
// tags mark string-like data terminated by a null byte, upper case tags
// mark file-like data prefixed with a 32-bit size.
package article

import (
	"errors"
	"fmt"
	"strings"

	"github.com/k3a/html2text"
)

var (
	errNoForms     = errors.New("article has no forms")
	errInvalidType = errors.New("invalid data type")
)

// DataType is the type tag of a data section.
type DataType byte

const (
	// UTFTextType is utf-8 text.
	UTFTextType = DataType('m')

	// PhoneticType is a utf-8 phonetic transcription.
	PhoneticType = DataType('t')

	// XDXFType is utf-8 encoded xml in XDXF format.
	XDXFType = DataType('x')

	// HTMLType is utf-8 encoded HTML text.
	HTMLType = DataType('h')

	// WavType is .wav sound file data.
	WavType = DataType('W')

	// PictureType is image file data.
	PictureType = DataType('P')
)

// validType reports whether t is a known section tag.
func validType(t DataType) bool {
	switch t {
	case UTFTextType, PhoneticType, XDXFType, HTMLType, WavType, PictureType:
		return true
	default:
		return false
	}
}

// Data is a single typed data section.
type Data struct {
	Type DataType
	Data []byte
}

// Article is a dictionary entry record.
type Article struct {
	id    string
	forms []string
	data  []*Data
}

// New returns a new article. The forms list must be non-empty; its
// first element is the canonical form.
func New(id string, forms []string, data []*Data) (*Article, error) {
	if len(forms) == 0 {
		return nil, fmt.Errorf("%w: %q", errNoForms, id)
	}
	for _, d := range data {
		if !validType(d.Type) {
			return nil, fmt.Errorf("%w: %v", errInvalidType, d.Type)
		}
	}
	return &Article{
		id:    id,
		forms: forms,
		data:  data,
	}, nil
}

// ID returns the article's external identifier.
func (a *Article) ID() string {
	return a.id
}

// Forms returns the article's word forms. The first form is the
// canonical form.
func (a *Article) Forms() []string {
	return a.forms
}

// Canonical returns the article's canonical form.
func (a *Article) Canonical() string {
	return a.forms[0]
}

// Data returns the article's data sections.
func (a *Article) Data() []*Data {
	return a.data
}

// Text renders the article's text-like sections as plain text. HTML
// sections are converted; file-like sections are skipped.
func (a *Article) Text() string {
	var b strings.Builder
	for _, d := range a.data {
		switch d.Type {
		case UTFTextType, PhoneticType, XDXFType:
			b.Write(d.Data)
			b.WriteByte('\n')
		case HTMLType:
			b.WriteString(html2text.HTML2Text(string(d.Data)))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String returns a string representation of the article.
func (a *Article) String() string {
	return a.Canonical() + "\n" + a.Text()
}
