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

// Package codec wires the bit I/O layer and the arithmetic coder pair
// into the byte-stream encode/decode drive loops spec.md calls for,
// exposed as an ordinary io.Writer/io.Reader pair so callers can use
// io.Copy instead of hand-writing the per-byte loop themselves.
package codec

import (
	"io"

	"github.com/pkg/errors"

	arc "github.com/duckling747/arithmetic-coding"
	"github.com/duckling747/arithmetic-coding/bitstream"
	"github.com/duckling747/arithmetic-coding/entropy"
)

// Writer compresses every byte written to it and emits the compressed
// bit stream to the wrapped io.Writer. Close must be called to encode the
// terminal EOF symbol, flush the coder's final bits, and flush any
// residual bits buffered by the underlying bit sink; it does not close
// the wrapped writer.
type Writer struct {
	out     *bitstream.BitOutput
	enc     *entropy.ArithmeticEncoder
	closed  bool
	written int64
}

// NewWriter wraps w. listener, if non-nil, is notified on every model
// rescale the encoder performs.
func NewWriter(w io.Writer, listener arc.ModelListener) (*Writer, error) {
	out, err := bitstream.NewBitOutput(w, 0)

	if err != nil {
		return nil, err
	}

	enc, err := entropy.NewArithmeticEncoder(out)

	if err != nil {
		return nil, err
	}

	if listener != nil {
		enc.SetListener(listener)
	}

	return &Writer{out: out, enc: enc}, nil
}

// Write encodes every byte of p, in order: Encode then Discover for each,
// per spec.md's ordering discipline. On an open Writer it reports
// len(p), nil; after Close it encodes nothing and returns an error. The
// bit sink writes to the wrapped writer whenever its buffer fills during
// Write and once more at Close: a sink error on one of those automatic
// flushes panics out of Write (see bitstream.BitOutput.PushBit), and the
// error of the final flush is returned by Close.
func (this *Writer) Write(p []byte) (int, error) {
	if this.closed {
		return 0, errors.New("arithmetic writer: write after close")
	}

	for _, b := range p {
		this.enc.Encode(int(b))
		this.enc.Discover(int(b))
	}

	this.written += int64(len(p))
	return len(p), nil
}

// Close encodes the terminal EOF symbol, flushes the coder's final two
// disambiguating bits, and flushes the underlying bit sink. Idempotent.
func (this *Writer) Close() error {
	if this.closed {
		return nil
	}

	this.closed = true
	this.enc.Encode(arc.EOF)
	this.enc.Finish()
	return this.out.Flush()
}

// Written returns the number of uncompressed bytes written so far.
func (this *Writer) Written() int64 {
	return this.written
}
