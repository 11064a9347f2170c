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
	"github.com/seiyab/gz-tools/cbor"
)

// BlockInfo describes the layout of one block. It encodes to CBOR as an array
type BlockInfo struct {
	cbor.StructAsArray
	Final       bool
	Type        BlockType
	Offset      int64
	InputLength int64
	Size        int
}

// Index returns a BlockInfo for each block in stream order
func (s *Stream) Index() []BlockInfo {
	ret := make([]BlockInfo, 0, len(s.blocks))
	for _, block := range s.blocks {
		ret = append(
			ret,
			BlockInfo{
				Final:       block.Final,
				Type:        block.Type(),
				Offset:      block.Offset,
				InputLength: block.InputLength,
				Size:        len(block.Data()),
			},
		)
	}
	return ret
}

// MarshalIndex encodes a block index to CBOR
func MarshalIndex(index []BlockInfo) ([]byte, error) {
	return cbor.Encode(index)
}

// UnmarshalIndex decodes a block index produced by MarshalIndex
func UnmarshalIndex(data []byte) ([]BlockInfo, error) {
	var ret []BlockInfo
	if _, err := cbor.Decode(data, &ret); err != nil {
		return nil, err
	}
	return ret, nil
}
