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
	"errors"
	"fmt"
	"io"
)

var (
	ErrUnexpectedEndOfInput     = errors.New("deflate: unexpected end of input")
	ErrUnsupportedBlockType     = errors.New("deflate: unsupported block type")
	ErrInvalidStoredBlockLength = errors.New("deflate: invalid stored block length")
	ErrOutputLimitExceeded      = errors.New("deflate: output size limit exceeded")
)

// UnsupportedBlockTypeError is returned for a block whose type selector names a
// block kind this package cannot decode. It matches ErrUnsupportedBlockType.
type UnsupportedBlockTypeError struct {
	Type   BlockType
	Offset int64
}

func (e *UnsupportedBlockTypeError) Error() string {
	return fmt.Sprintf(
		"%s: %s (BTYPE %02b) at offset %d",
		ErrUnsupportedBlockType,
		e.Type,
		uint8(e.Type),
		e.Offset,
	)
}

func (e *UnsupportedBlockTypeError) Is(target error) bool {
	return target == ErrUnsupportedBlockType
}

// InvalidStoredBlockLengthError is returned when a stored block's NLEN field is not
// the one's complement of its LEN field. It matches ErrInvalidStoredBlockLength.
type InvalidStoredBlockLengthError struct {
	Length  uint16
	NLength uint16
	Offset  int64
}

func (e *InvalidStoredBlockLengthError) Error() string {
	return fmt.Sprintf(
		"%s: got LEN %#04x NLEN %#04x, expected NLEN %#04x at offset %d",
		ErrInvalidStoredBlockLength,
		e.Length,
		e.NLength,
		^e.Length,
		e.Offset,
	)
}

func (e *InvalidStoredBlockLengthError) Is(target error) bool {
	return target == ErrInvalidStoredBlockLength
}

// inputError maps cursor exhaustion onto ErrUnexpectedEndOfInput. Any other error
// from the byte source is returned as-is.
func inputError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrUnexpectedEndOfInput
	}
	return err
}
