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
	"fmt"
)

// BlockType is the 2-bit type selector (BTYPE) from a block header
type BlockType uint8

const (
	BlockTypeStored         BlockType = 0
	BlockTypeFixedHuffman   BlockType = 1
	BlockTypeDynamicHuffman BlockType = 2
	BlockTypeReserved       BlockType = 3
)

func (t BlockType) String() string {
	switch t {
	case BlockTypeStored:
		return "stored"
	case BlockTypeFixedHuffman:
		return "fixed-huffman"
	case BlockTypeDynamicHuffman:
		return "dynamic-huffman"
	case BlockTypeReserved:
		return "reserved"
	default:
		return fmt.Sprintf("BlockType(%d)", uint8(t))
	}
}

const (
	// Number of bits in a block header (BFINAL + BTYPE)
	blockHeaderBits = 3

	blockHeaderFinalMask = 0x01
	blockHeaderTypeShift = 1
	blockHeaderTypeMask  = 0x03
)

// Body is the decoded content of a block. Each block type has its own
// implementation; StoredBody is currently the only one.
type Body interface {
	Type() BlockType
	// Data returns the decoded bytes. The slice must not be modified.
	Data() []byte
}

// Block is one framed unit of a stream
type Block struct {
	Final bool
	Body  Body
	// Offset of the block header within the input, in bytes
	Offset int64
	// Number of input bytes the block occupies, including its header
	InputLength int64
}

func (b *Block) Type() BlockType {
	return b.Body.Type()
}

func (b *Block) Data() []byte {
	return b.Body.Data()
}

func (b *Block) String() string {
	return fmt.Sprintf(
		"%s block at offset %d (final=%t, input=%d, output=%d)",
		b.Type(),
		b.Offset,
		b.Final,
		b.InputLength,
		len(b.Data()),
	)
}

// decodeBlock decodes a single block starting at the current cursor position.
// The header bits are peeked first and only consumed once the block type is known
// to be decodable.
func (d *Decoder) decodeBlock() (*Block, error) {
	offset := d.br.Offset()
	header, err := d.br.PeekBits(blockHeaderBits)
	if err != nil {
		return nil, inputError(err)
	}
	final := header&blockHeaderFinalMask != 0
	blockType := BlockType((header >> blockHeaderTypeShift) & blockHeaderTypeMask)
	var body Body
	switch blockType {
	case BlockTypeStored:
		if _, err := d.br.ReadBits(blockHeaderBits); err != nil {
			return nil, inputError(err)
		}
		// Stored blocks start on the next byte boundary
		d.br.AlignToByte()
		stored, err := decodeStoredBody(d.br, offset)
		if err != nil {
			return nil, err
		}
		body = stored
	case BlockTypeFixedHuffman, BlockTypeDynamicHuffman, BlockTypeReserved:
		return nil, &UnsupportedBlockTypeError{
			Type:   blockType,
			Offset: offset,
		}
	}
	block := &Block{
		Final:       final,
		Body:        body,
		Offset:      offset,
		InputLength: d.br.Offset() - offset,
	}
	return block, nil
}
