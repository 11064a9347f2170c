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

package deflate_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/seiyab/gz-tools/deflate"
	"github.com/seiyab/gz-tools/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoredBlockZeroLength(t *testing.T) {
	stream, err := deflate.Decode(test.StoredStream([]byte{}))
	require.NoError(t, err)
	assert.Equal(t, 0, stream.Size())
}

func TestStoredBlockNlenBitFlip(t *testing.T) {
	payload := []byte("stored")
	for bit := 0; bit < 16; bit++ {
		t.Run(fmt.Sprintf("bit-%d", bit), func(t *testing.T) {
			data := test.StoredStream(payload)
			// NLEN occupies bytes 3 and 4
			data[3+bit/8] ^= 1 << (bit % 8)
			_, err := deflate.Decode(data)
			require.ErrorIs(t, err, deflate.ErrInvalidStoredBlockLength)
			var lenErr *deflate.InvalidStoredBlockLengthError
			require.True(t, errors.As(err, &lenErr))
			assert.Equal(t, uint16(len(payload)), lenErr.Length)
			assert.Equal(t, ^uint16(len(payload))^uint16(1<<bit), lenErr.NLength)
		})
	}
}

func TestStoredBlockInvalidLengthStopsReading(t *testing.T) {
	data := []byte{0x01, 0x03, 0x00, 0x00, 0x00, 'a', 'b', 'c'}
	dec := deflate.NewDecoder(bytes.NewReader(data))
	_, err := dec.NextBlock()
	require.ErrorIs(t, err, deflate.ErrInvalidStoredBlockLength)
	// Header and both length fields, but no payload
	assert.Equal(t, int64(5), dec.InputOffset())
	assert.Contains(t, err.Error(), "expected NLEN 0xfffc")
}

func TestStoredBlockTruncatedPayload(t *testing.T) {
	data := test.StoredStream([]byte("payload"))
	_, err := deflate.Decode(data[:len(data)-1])
	assert.ErrorIs(t, err, deflate.ErrUnexpectedEndOfInput)
}

func TestStoredBlockTruncatedAnywhere(t *testing.T) {
	data := test.StoredStream([]byte("ab"), []byte("cd"))
	for i := 0; i < len(data); i++ {
		_, err := deflate.Decode(data[:i])
		assert.ErrorIs(t, err, deflate.ErrUnexpectedEndOfInput, "truncated to %d bytes", i)
	}
}

func TestStoredBlockPayloadIsOwned(t *testing.T) {
	data := test.StoredStream([]byte("abc"))
	stream, err := deflate.Decode(data)
	require.NoError(t, err)
	data[5] = 'x'
	assert.Equal(t, []byte("abc"), stream.Data())
}
