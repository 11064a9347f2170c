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
	"io"
	"log/slog"

	"github.com/seiyab/gz-tools/bitio"
)

// Decoder walks the block chain of a single stream. It is not safe for concurrent use.
type Decoder struct {
	br            *bitio.Reader
	logger        *slog.Logger
	maxOutputSize int
	blockHandler  func(*Block)
	outputSize    int
	blockCount    int
	done          bool
	err           error
}

// NewDecoder returns a Decoder reading from r. The source is consumed strictly
// forward. Input is buffered unless r is a *bufio.Reader, in which case any bytes
// following the final block remain unread in r.
func NewDecoder(r io.Reader, opts ...DecoderOptionFunc) *Decoder {
	d := &Decoder{
		br: bitio.NewReader(r),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// NextBlock decodes the next block of the stream. After the final block has been
// returned, NextBlock returns io.EOF. Any decode error is sticky.
func (d *Decoder) NextBlock() (*Block, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.done {
		return nil, io.EOF
	}
	block, err := d.decodeBlock()
	if err != nil {
		d.logger.Debug(
			"failed to decode block",
			"component", "deflate",
			"block", d.blockCount,
			"offset", d.br.Offset(),
			"error", err,
		)
		d.err = err
		return nil, err
	}
	d.outputSize += len(block.Data())
	if d.maxOutputSize > 0 && d.outputSize > d.maxOutputSize {
		d.err = ErrOutputLimitExceeded
		return nil, d.err
	}
	d.blockCount++
	d.done = block.Final
	d.logger.Debug(
		"decoded block",
		"component", "deflate",
		"block", d.blockCount-1,
		"type", block.Type().String(),
		"final", block.Final,
		"offset", block.Offset,
		"size", len(block.Data()),
	)
	if d.blockHandler != nil {
		d.blockHandler(block)
	}
	return block, nil
}

// Decode decodes the remaining blocks up to and including the final block and
// returns them as a Stream. No partial Stream is returned on failure. If the final
// block was already returned by NextBlock, Decode returns io.EOF.
func (d *Decoder) Decode() (*Stream, error) {
	var blocks []*Block
	for {
		block, err := d.NextBlock()
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
		if block.Final {
			break
		}
	}
	return &Stream{blocks: blocks}, nil
}

// BlockCount returns the number of blocks decoded so far
func (d *Decoder) BlockCount() int {
	return d.blockCount
}

// InputOffset returns the number of input bytes consumed so far. Once the final
// block is decoded this is the length of the stream, and any trailer of an
// enclosing container starts at this offset.
func (d *Decoder) InputOffset() int64 {
	return d.br.Offset()
}

// Done reports whether the final block has been decoded
func (d *Decoder) Done() bool {
	return d.done
}
