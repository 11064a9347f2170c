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
	"fmt"
	"io"
	"testing"
	"testing/iotest"

	"github.com/seiyab/gz-tools/deflate"
	"github.com/seiyab/gz-tools/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestReaderMatchesStreamData(t *testing.T) {
	defer goleak.VerifyNone(t)
	payloads := [][]byte{
		[]byte("abc"),
		{},
		testPayload(65535, 7),
		testPayload(3000, 8),
	}
	data := test.StoredStream(payloads...)
	expected := bytes.Join(payloads, nil)
	for _, bufSize := range []int{1, 7, 4096, 100000} {
		t.Run(fmt.Sprintf("buf-%d", bufSize), func(t *testing.T) {
			r := deflate.NewReader(iotest.OneByteReader(bytes.NewReader(data)))
			var out []byte
			buf := make([]byte, bufSize)
			for {
				n, err := r.Read(buf)
				out = append(out, buf[:n]...)
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
			}
			assert.Equal(t, expected, out)
			assert.Equal(t, len(payloads), r.Blocks())
			assert.Equal(t, int64(len(data)), r.InputOffset())
		})
	}
}

func TestReaderIOTest(t *testing.T) {
	defer goleak.VerifyNone(t)
	payload := testPayload(5000, 9)
	data := test.StoredStream(payload[:100], payload[100:2000], payload[2000:])
	err := iotest.TestReader(deflate.NewReader(bytes.NewReader(data)), payload)
	assert.NoError(t, err)
}

func TestReaderEOFRepeats(t *testing.T) {
	r := deflate.NewReader(bytes.NewReader(test.StoredStream([]byte("x"))))
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), out)
	for i := 0; i < 3; i++ {
		n, err := r.Read(make([]byte, 8))
		assert.Equal(t, 0, n)
		assert.ErrorIs(t, err, io.EOF)
	}
}

func TestReaderStickyError(t *testing.T) {
	data := test.StoredStream([]byte("abc"), []byte("defg"))
	r := deflate.NewReader(bytes.NewReader(data[:len(data)-1]))
	out, err := io.ReadAll(r)
	require.ErrorIs(t, err, deflate.ErrUnexpectedEndOfInput)
	// The first block was complete and is delivered before the failure
	assert.Equal(t, []byte("abc"), out)
	_, err = r.Read(make([]byte, 8))
	assert.ErrorIs(t, err, deflate.ErrUnexpectedEndOfInput)
}

func TestReaderZeroLengthRead(t *testing.T) {
	r := deflate.NewReader(bytes.NewReader(nil))
	n, err := r.Read(nil)
	assert.Equal(t, 0, n)
	assert.NoError(t, err)
	assert.Equal(t, 0, r.Blocks())
}

func TestReaderMaxOutputSize(t *testing.T) {
	data := test.StoredStream(testPayload(8, 1), testPayload(8, 2))
	r := deflate.NewReader(bytes.NewReader(data), deflate.WithMaxOutputSize(10))
	out, err := io.ReadAll(r)
	assert.ErrorIs(t, err, deflate.ErrOutputLimitExceeded)
	assert.Len(t, out, 8)
}
