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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zstd"
)

const (
	// formatMagic identifies serialized form index blobs (ASCII "HLX1").
	formatMagic = 0x484C5831

	// formatVersion is the current blob format version.
	formatVersion = 1
)

var (
	// ErrBadMagic indicates the blob does not start with the index magic
	// number.
	ErrBadMagic = errors.New("bad index magic")

	// ErrBadVersion indicates an unsupported blob format version.
	ErrBadVersion = errors.New("unsupported index version")

	// ErrBadChecksum indicates the blob payload does not match its
	// recorded checksum.
	ErrBadChecksum = errors.New("index checksum mismatch")

	// ErrTruncated indicates the blob payload ended mid-record.
	ErrTruncated = errors.New("truncated index")
)

// header is the fixed-size blob header. All fields are big-endian.
type header struct {
	Magic    uint32
	Version  uint32
	Count    uint32
	Checksum uint32
}

const headerSize = 16

// WriteTo serializes the index as a single blob: the fixed header
// followed by the zstd-compressed tuple list. It implements
// [io.WriterTo].
func (x *Index) WriteTo(w io.Writer) (int64, error) {
	tuples := x.Tuples()

	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		return 0, fmt.Errorf("creating index compressor: %w", err)
	}
	for _, t := range tuples {
		if err := writeTuple(zw, t); err != nil {
			return 0, fmt.Errorf("encoding index: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("compressing index: %w", err)
	}

	payload := buf.Bytes()
	hdr := header{
		Magic:    formatMagic,
		Version:  formatVersion,
		Count:    uint32(len(tuples)),
		Checksum: crc32.ChecksumIEEE(payload),
	}
	if err := binary.Write(w, binary.BigEndian, hdr); err != nil {
		return 0, fmt.Errorf("writing index header: %w", err)
	}
	n, err := w.Write(payload)
	if err != nil {
		return headerSize + int64(n), fmt.Errorf("writing index payload: %w", err)
	}
	return headerSize + int64(n), nil
}

// Read deserializes an index blob written by WriteTo. The trie is
// rebuilt from the decoded tuple list using the given options.
func Read(r io.Reader, options *Options) (*Index, error) {
	var hdr header
	if err := binary.Read(r, binary.BigEndian, &hdr); err != nil {
		return nil, fmt.Errorf("reading index header: %w", err)
	}
	if hdr.Magic != formatMagic {
		return nil, fmt.Errorf("%w: 0x%08x", ErrBadMagic, hdr.Magic)
	}
	if hdr.Version != formatVersion {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, hdr.Version)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading index payload: %w", err)
	}
	if crc32.ChecksumIEEE(payload) != hdr.Checksum {
		return nil, ErrBadChecksum
	}

	zr, err := zstd.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating index decompressor: %w", err)
	}
	defer zr.Close()

	tuples := make([]Tuple, 0, hdr.Count)
	for i := uint32(0); i < hdr.Count; i++ {
		t, err := readTuple(zr)
		if err != nil {
			return nil, fmt.Errorf("decoding index: %w", err)
		}
		tuples = append(tuples, t)
	}
	return New(tuples, options)
}

func writeTuple(w io.Writer, t Tuple) error {
	if err := writeString(w, t.Form); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(t.N)); err != nil {
		return err
	}
	if err := writeString(w, t.Payload); err != nil {
		return err
	}
	if err := writeString(w, t.Base); err != nil {
		return err
	}
	_, err := w.Write([]byte{byte(t.Code)})
	return err
}

func readTuple(r io.Reader) (Tuple, error) {
	var t Tuple
	var err error
	if t.Form, err = readString(r); err != nil {
		return t, err
	}
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return t, eofErr(err)
	}
	t.N = int(n)
	if t.Payload, err = readString(r); err != nil {
		return t, err
	}
	if t.Base, err = readString(r); err != nil {
		return t, err
	}
	var code [1]byte
	if _, err := io.ReadFull(r, code[:]); err != nil {
		return t, eofErr(err)
	}
	t.Code = Provenance(code[0])
	return t, nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", eofErr(err)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", eofErr(err)
	}
	return string(b), nil
}

// eofErr maps end-of-stream conditions to ErrTruncated so callers see a
// corruption error rather than a bare EOF.
func eofErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}
