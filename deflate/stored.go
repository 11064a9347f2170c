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
	"github.com/seiyab/gz-tools/bitio"
)

const (
	StoredBlockMaxLength = 65535

	// LEN XOR NLEN must be all ones
	storedBlockLengthCheck = 0xffff
)

// StoredBody is the payload of an uncompressed block
type StoredBody struct {
	data []byte
}

func (s *StoredBody) Type() BlockType {
	return BlockTypeStored
}

func (s *StoredBody) Data() []byte {
	return s.data
}

// decodeStoredBody reads LEN, NLEN and the payload from a byte-aligned cursor. The
// payload is only read once the two length fields agree.
func decodeStoredBody(br *bitio.Reader, offset int64) (*StoredBody, error) {
	length, err := br.ReadUint16LE()
	if err != nil {
		return nil, inputError(err)
	}
	nlength, err := br.ReadUint16LE()
	if err != nil {
		return nil, inputError(err)
	}
	if length^nlength != storedBlockLengthCheck {
		return nil, &InvalidStoredBlockLengthError{
			Length:  length,
			NLength: nlength,
			Offset:  offset,
		}
	}
	s := &StoredBody{
		data: make([]byte, length),
	}
	if err := br.ReadFull(s.data); err != nil {
		return nil, inputError(err)
	}
	return s, nil
}
