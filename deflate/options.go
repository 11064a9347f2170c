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
	"log/slog"
)

// DecoderOptionFunc is a type that represents functions that modify the Decoder config
type DecoderOptionFunc func(*Decoder)

// WithLogger specifies the logger to use. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) DecoderOptionFunc {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// WithMaxOutputSize limits the total number of decoded bytes. Decoding fails with
// ErrOutputLimitExceeded once a block would push the output past the limit. A value
// of 0 (the default) disables the limit
func WithMaxOutputSize(size int) DecoderOptionFunc {
	return func(d *Decoder) {
		d.maxOutputSize = size
	}
}

// WithBlockHandler specifies a function to be called with each block as it is decoded
func WithBlockHandler(handler func(*Block)) DecoderOptionFunc {
	return func(d *Decoder) {
		d.blockHandler = handler
	}
}
