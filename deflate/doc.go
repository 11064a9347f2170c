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

// Package deflate decodes the block layer of a raw DEFLATE stream (RFC 1951).
//
// A stream is a chain of blocks. Each block starts with a 3-bit header: bit 0 is
// the final-flag and bits 1-2 select the block type. Decoding walks the chain
// until the first block with the final-flag set; anything after it belongs to
// the enclosing container and is left unread.
//
// Only stored (uncompressed) blocks are decodable. Fixed and dynamic Huffman
// blocks, as well as the reserved block type, are rejected with
// ErrUnsupportedBlockType.
//
// # Stored Blocks
//
// After the header a stored block skips to the next byte boundary and carries:
//
//	LEN   uint16 little-endian, payload length
//	NLEN  uint16 little-endian, one's complement of LEN
//	DATA  LEN bytes, copied verbatim
//
// # Usage
//
// Decode a whole stream into a Stream value:
//
//	stream, err := deflate.Decode(data)
//	if err != nil {
//	    return err
//	}
//	payload := stream.Data()
//
// Or decode incrementally with Reader, which never holds more than one block:
//
//	r := deflate.NewReader(conn, deflate.WithMaxOutputSize(1<<20))
//	_, err := io.Copy(dst, r)
//
// Every decode failure aborts the whole stream. Errors can be matched with
// errors.Is against ErrUnexpectedEndOfInput, ErrUnsupportedBlockType and
// ErrInvalidStoredBlockLength.
package deflate
