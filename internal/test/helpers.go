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

package test

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// StoredBlock frames payload as a single stored block. It panics if the payload does
// not fit in one block.
func StoredBlock(final bool, payload []byte) []byte {
	if len(payload) > 0xffff {
		panic(fmt.Sprintf("stored block payload too large: %d", len(payload)))
	}
	var header byte
	if final {
		header = 0x01
	}
	ret := make([]byte, 5, 5+len(payload))
	ret[0] = header
	binary.LittleEndian.PutUint16(ret[1:3], uint16(len(payload)))
	binary.LittleEndian.PutUint16(ret[3:5], ^uint16(len(payload)))
	return append(ret, payload...)
}

// StoredStream frames each payload as a stored block, with only the last one marked final
func StoredStream(payloads ...[]byte) []byte {
	var ret []byte
	for i, payload := range payloads {
		ret = append(ret, StoredBlock(i == len(payloads)-1, payload)...)
	}
	return ret
}
