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

package codec

import (
	"io"

	arc "github.com/duckling747/arithmetic-coding"
	"github.com/duckling747/arithmetic-coding/bitstream"
	"github.com/duckling747/arithmetic-coding/entropy"
)

// Reader decompresses a stream produced by Writer. It implements
// io.Reader; decoding stops, returning io.EOF, as soon as the terminal
// EOF symbol is decoded, regardless of how much more (necessarily
// meaningless) data the wrapped reader might still have.
type Reader struct {
	in       *bitstream.BitInput
	dec      *entropy.ArithmeticDecoder
	begun    bool
	finished bool
	read     int64
}

// NewReader wraps r. listener, if non-nil, is notified on every model
// rescale the decoder performs.
func NewReader(r io.Reader, listener arc.ModelListener) (*Reader, error) {
	in := bitstream.NewBitInput(r)
	dec, err := entropy.NewArithmeticDecoder(in)

	if err != nil {
		return nil, err
	}

	if listener != nil {
		dec.SetListener(listener)
	}

	return &Reader{in: in, dec: dec}, nil
}

// Read decodes up to len(p) bytes into p. It returns io.EOF, possibly
// together with a final non-zero n, once the terminal EOF symbol has been
// decoded.
func (this *Reader) Read(p []byte) (int, error) {
	if this.finished {
		return 0, io.EOF
	}

	if !this.begun {
		this.dec.Begin()
		this.begun = true
	}

	n := 0

	for n < len(p) {
		s := this.dec.Decode()

		if s == arc.EOF {
			this.finished = true
			return n, io.EOF
		}

		this.dec.Discover(s)
		p[n] = byte(s)
		n++
		this.read++
	}

	return n, nil
}

// BytesRead returns the number of decoded bytes produced so far.
func (this *Reader) BytesRead() int64 {
	return this.read
}
