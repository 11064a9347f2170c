// Copyright 2026 Blink Labs Software
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

// Package bitio provides a forward-only, LSB-first bit cursor over an io.Reader.
//
// Bits are consumed starting with the least-significant bit of each byte, which
// is the packing order used by DEFLATE (RFC 1951, section 3.1.1). Byte-aligned
// reads are available for the parts of a stream that are defined in whole bytes.
package bitio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
)

const (
	// MaxBits is the largest number of bits that can be read or peeked at once
	MaxBits = 24

	bitsPerByte = 8
)

var (
	ErrTooManyBits = errors.New("bitio: bit count exceeds maximum")
	ErrNotAligned  = errors.New("bitio: byte read requested mid-byte")
)

// source is the subset of bufio.Reader the cursor needs
type source interface {
	io.Reader
	io.ByteReader
	Peek(n int) ([]byte, error)
}

// Reader is a forward-only bit cursor. It is not safe for concurrent use.
type Reader struct {
	r      source
	cur    byte  // unread bits of the current byte, already shifted down
	nbits  uint  // number of valid bits left in cur
	offset int64 // bytes pulled from r
	tmp    [2]byte
}

// NewReader returns a Reader consuming r. If r already provides Peek and ReadByte
// (such as a *bufio.Reader) it is used directly, otherwise it is buffered.
func NewReader(r io.Reader) *Reader {
	src, ok := r.(source)
	if !ok {
		src = bufio.NewReader(r)
	}
	return &Reader{r: src}
}

// Offset returns the number of input bytes consumed so far. A partially consumed
// byte counts as consumed.
func (br *Reader) Offset() int64 {
	return br.offset
}

// BitOffset returns the number of bits already consumed from the current byte
func (br *Reader) BitOffset() uint {
	if br.nbits == 0 {
		return 0
	}
	return bitsPerByte - br.nbits
}

// Aligned reports whether the cursor sits on a byte boundary
func (br *Reader) Aligned() bool {
	return br.nbits == 0
}

// PeekBits returns the next n bits without consuming them. It returns io.EOF if
// the cursor is on a byte boundary and the source is exhausted, and
// io.ErrUnexpectedEOF if only some of the requested bits are available.
func (br *Reader) PeekBits(n uint) (uint32, error) {
	if n > MaxBits {
		return 0, ErrTooManyBits
	}
	v := uint32(br.cur)
	if n <= br.nbits {
		return v & mask(n), nil
	}
	need := int((n - br.nbits + bitsPerByte - 1) / bitsPerByte)
	buf, err := br.r.Peek(need)
	if len(buf) < need {
		if len(buf) == 0 && br.nbits == 0 && (err == nil || errors.Is(err, io.EOF)) {
			return 0, io.EOF
		}
		return 0, unexpectedEOF(err)
	}
	shift := br.nbits
	for _, b := range buf {
		v |= uint32(b) << shift
		shift += bitsPerByte
	}
	return v & mask(n), nil
}

// ReadBits consumes and returns the next n bits, LSB-first
func (br *Reader) ReadBits(n uint) (uint32, error) {
	if n > MaxBits {
		return 0, ErrTooManyBits
	}
	var v uint32
	var got uint
	for got < n {
		if br.nbits == 0 {
			b, err := br.r.ReadByte()
			if err != nil {
				return 0, unexpectedEOF(err)
			}
			br.offset++
			br.cur = b
			br.nbits = bitsPerByte
		}
		take := min(n-got, br.nbits)
		v |= (uint32(br.cur) & mask(take)) << got
		br.cur >>= take
		br.nbits -= take
		got += take
	}
	return v, nil
}

// AlignToByte discards the unread bits of the current byte
func (br *Reader) AlignToByte() {
	br.cur = 0
	br.nbits = 0
}

// ReadFull fills p with the next len(p) bytes. The cursor must be byte aligned.
// A source that ends early yields io.ErrUnexpectedEOF.
func (br *Reader) ReadFull(p []byte) error {
	if br.nbits != 0 {
		return ErrNotAligned
	}
	// We use ReadFull because it guarantees to read the expected number of bytes or
	// return an error
	n, err := io.ReadFull(br.r, p)
	br.offset += int64(n)
	if err != nil {
		return unexpectedEOF(err)
	}
	return nil
}

// ReadUint16LE reads a byte-aligned little-endian uint16
func (br *Reader) ReadUint16LE() (uint16, error) {
	if err := br.ReadFull(br.tmp[:2]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(br.tmp[:2]), nil
}

func mask(n uint) uint32 {
	return uint32(1)<<n - 1
}

func unexpectedEOF(err error) error {
	if err == nil || errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
