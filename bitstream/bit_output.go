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
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const defaultOutputCapacityBits = 4096 * 8

// BitOutput wraps a byte sink with a BitBuffer of capacity a multiple of
// 8. PushBit appends; the buffer flushes to the sink automatically once
// full. Flush is mandatory at end of stream to emit any residual bits,
// tail-padded with zeros.
type BitOutput struct {
	dst io.Writer
	buf *BitBuffer
}

// NewBitOutput wraps w for bit-granularity writes, buffering capacityBits
// bits (the BitBuffer rounds this up to a multiple of 64) before flushing.
// capacityBits <= 0 selects a default internal capacity; any other value
// that is not a multiple of 8 panics.
func NewBitOutput(w io.Writer, capacityBits int) (*BitOutput, error) {
	if w == nil {
		return nil, errors.New("bit output: nil sink")
	}

	if capacityBits <= 0 {
		capacityBits = defaultOutputCapacityBits
	}

	if capacityBits%8 != 0 {
		panic(fmt.Errorf("bit output: capacity %d is not a multiple of 8", capacityBits))
	}

	return &BitOutput{dst: w, buf: NewBitBuffer(capacityBits)}, nil
}

// PushBit appends one bit, flushing the internal buffer to the sink first
// if it is already full.
func (this *BitOutput) PushBit(bit byte) {
	if this.buf.Len() == this.buf.Capacity() {
		if err := this.Flush(); err != nil {
			panic(err)
		}
	}

	this.buf.Push(bit & 1)
}

// PushByte pushes the eight bits of b, MSB-first.
func (this *BitOutput) PushByte(b byte) {
	for i := 7; i >= 0; i-- {
		this.PushBit((b >> uint(i)) & 1)
	}
}

// Flush writes every buffered byte to the sink and clears the buffer.
// Any bits left over from an incomplete trailing byte are written as zero.
func (this *BitOutput) Flush() error {
	if this.buf.IsEmpty() {
		return nil
	}

	if _, err := this.dst.Write(this.buf.GetBytes()); err != nil {
		return errors.Wrap(err, "bit output: flush")
	}

	this.buf.Clear()
	return nil
}
