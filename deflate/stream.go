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
	"bytes"
	"io"
)

// Stream is a fully decoded block chain. The last block, and only the last block,
// has its final-flag set. A Stream is never modified after it is returned.
type Stream struct {
	blocks []*Block
}

// Decode decodes a complete stream held in memory
func Decode(data []byte, opts ...DecoderOptionFunc) (*Stream, error) {
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}

// DecodeReader decodes a complete stream from r
func DecodeReader(r io.Reader, opts ...DecoderOptionFunc) (*Stream, error) {
	return NewDecoder(r, opts...).Decode()
}

// Blocks returns the blocks of the stream in order
func (s *Stream) Blocks() []*Block {
	ret := make([]*Block, len(s.blocks))
	copy(ret, s.blocks)
	return ret
}

// Len returns the number of blocks
func (s *Stream) Len() int {
	return len(s.blocks)
}

// Size returns the total number of decoded bytes
func (s *Stream) Size() int {
	var size int
	for _, block := range s.blocks {
		size += len(block.Data())
	}
	return size
}

// Data returns the decoded payload of every block concatenated in stream order.
// Each call returns a new slice.
func (s *Stream) Data() []byte {
	ret := make([]byte, 0, s.Size())
	for _, block := range s.blocks {
		ret = append(ret, block.Data()...)
	}
	return ret
}

// WriteTo writes the decoded payload to w
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, block := range s.blocks {
		n, err := w.Write(block.Data())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
