/*
Copyright 2026 The arithmetic-coding Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package bitstream

import (
	"bufio"
	"io"
)

const defaultInputChunk = 4096

// BitInput wraps a byte source with an internal BitBuffer refilled on
// exhaustion, exposing the single-bit and single-byte reads the
// arithmetic decoder drives.
//
// Refilling rides bufio.Reader's own buffering contract: Peek a view of
// up to one chunk of bytes (bufio keeps reading from the source until the
// chunk is full or the source reports an error), push exactly those bytes
// into the internal BitBuffer, then Discard them from the reader.
type BitInput struct {
	src   *bufio.Reader
	buf   *BitBuffer
	pos   int
	chunk int
	eof   bool
}

// NewBitInput wraps r for bit-granularity reads.
func NewBitInput(r io.Reader) *BitInput {
	return &BitInput{
		src:   bufio.NewReaderSize(r, defaultInputChunk),
		buf:   NewBitBuffer(0),
		chunk: defaultInputChunk,
	}
}

// NextBit returns the next bit, or ok == false once the source is
// exhausted. A missing bit is soft failure, not an error: callers that
// need zero-padding past end-of-stream (the arithmetic decoder's
// renormalization) get that behavior from the caller side, not from here.
func (this *BitInput) NextBit() (bit byte, ok bool) {
	if this.pos >= this.buf.Len() {
		if !this.refill() {
			return 0, false
		}
	}

	bit, _ = this.buf.Get(this.pos)
	this.pos++
	return bit, true
}

// NextByte assembles eight bits MSB-first into a byte. Returns
// ok == false if the first bit of the byte is missing, or if the byte is
// only partially available at end of stream.
func (this *BitInput) NextByte() (b byte, ok bool) {
	var out byte

	for i := 0; i < 8; i++ {
		bit, hasBit := this.NextBit()

		if !hasBit {
			return 0, false
		}

		out = (out << 1) | bit
	}

	return out, true
}

func (this *BitInput) refill() bool {
	if this.eof {
		return false
	}

	peeked, err := this.src.Peek(this.chunk)

	if len(peeked) == 0 {
		this.eof = true
		return false
	}

	if err != nil {
		// Short read: bufio.Reader hands back whatever it has together
		// with the error (typically io.EOF); consume it and remember
		// there is nothing more to pull next time.
		this.eof = true
	}

	this.buf = NewBitBufferFromBytes(peeked)
	this.pos = 0

	if _, err := this.src.Discard(len(peeked)); err != nil {
		this.eof = true
	}

	return true
}
