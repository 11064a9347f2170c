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

package deflate

import (
	"io"
)

// Reader decompresses a stream incrementally. Only the block currently being
// drained is held in memory. It is not safe for concurrent use.
type Reader struct {
	dec *Decoder
	buf []byte
	err error
}

// NewReader returns a Reader which decodes the stream read from r
func NewReader(r io.Reader, opts ...DecoderOptionFunc) *Reader {
	return &Reader{
		dec: NewDecoder(r, opts...),
	}
}

// Read implements io.Reader. It returns io.EOF after the payload of the final block
// has been returned. Decode errors are returned from every subsequent call.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(r.buf) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		block, err := r.dec.NextBlock()
		if err != nil {
			r.err = err
			return 0, err
		}
		r.buf = block.Data()
	}
	n := copy(p, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

// Blocks returns the number of blocks decoded so far
func (r *Reader) Blocks() int {
	return r.dec.BlockCount()
}

// InputOffset returns the number of compressed bytes consumed so far
func (r *Reader) InputOffset() int64 {
	return r.dec.InputOffset()
}
