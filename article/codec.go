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

package article

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

var errTruncated = errors.New("truncated article record")

// Codec is the binary codec for article records.
//
// A record is laid out as:
//
//	id:       32-bit length followed by the identifier bytes
//	forms:    32-bit count, then per form a 32-bit length and bytes
//	sections: per section a tag byte, then either null-terminated
//	          bytes (lower case tags) or a 32-bit size and raw bytes
//	          (upper case tags), repeated to the end of the record
//
// All integers are big-endian.
type Codec struct{}

// Encode implements the entry codec contract.
func (Codec) Encode(a *Article) ([]byte, error) {
	if len(a.forms) == 0 {
		return nil, fmt.Errorf("%w: %q", errNoForms, a.id)
	}

	var b bytes.Buffer
	putString(&b, a.id)
	var count [4]byte
	binary.BigEndian.PutUint32(count[:], uint32(len(a.forms)))
	b.Write(count[:])
	for _, f := range a.forms {
		putString(&b, f)
	}

	for _, d := range a.data {
		if !validType(d.Type) {
			return nil, fmt.Errorf("%w: %v", errInvalidType, d.Type)
		}
		b.WriteByte(byte(d.Type))
		if 'a' <= d.Type && d.Type <= 'z' {
			b.Write(d.Data)
			b.WriteByte(0)
		} else {
			var size [4]byte
			binary.BigEndian.PutUint32(size[:], uint32(len(d.Data)))
			b.Write(size[:])
			b.Write(d.Data)
		}
	}
	return b.Bytes(), nil
}

// Decode implements the entry codec contract. Unknown section tags and
// truncated records are fatal decode errors.
func (Codec) Decode(data []byte) (*Article, error) {
	id, rest, err := getString(data)
	if err != nil {
		return nil, err
	}

	if len(rest) < 4 {
		return nil, errTruncated
	}
	count := binary.BigEndian.Uint32(rest)
	rest = rest[4:]
	if count == 0 {
		return nil, fmt.Errorf("%w: %q", errNoForms, id)
	}

	forms := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		var f string
		f, rest, err = getString(rest)
		if err != nil {
			return nil, err
		}
		forms = append(forms, f)
	}

	var sections []*Data
	for len(rest) > 0 {
		t := DataType(rest[0])
		rest = rest[1:]
		if !validType(t) {
			return nil, fmt.Errorf("%w: 0x%02x", errInvalidType, byte(t))
		}

		var d []byte
		if 'a' <= t && t <= 'z' {
			i := bytes.IndexByte(rest, 0)
			if i < 0 {
				return nil, errTruncated
			}
			d = rest[:i]
			rest = rest[i+1:]
		} else {
			if len(rest) < 4 {
				return nil, errTruncated
			}
			size := binary.BigEndian.Uint32(rest)
			if uint32(len(rest)-4) < size {
				return nil, errTruncated
			}
			d = rest[4 : 4+size]
			rest = rest[4+size:]
		}
		sections = append(sections, &Data{
			Type: t,
			Data: bytes.Clone(d),
		})
	}

	return &Article{
		id:    id,
		forms: forms,
		data:  sections,
	}, nil
}

func putString(b *bytes.Buffer, s string) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(s)))
	b.Write(n[:])
	b.WriteString(s)
}

func getString(b []byte) (string, []byte, error) {
	if len(b) < 4 {
		return "", nil, errTruncated
	}
	n := binary.BigEndian.Uint32(b)
	if uint32(len(b)-4) < n {
		return "", nil, errTruncated
	}
	return string(b[4 : 4+n]), b[4+n:], nil
}
