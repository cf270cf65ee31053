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

package entropy

import (
	"fmt"

	arc "github.com/duckling747/arithmetic-coding"
	"github.com/duckling747/arithmetic-coding/model"
)

// ArithmeticDecoder is the mirror image of ArithmeticEncoder: given the
// same sequence of Discover calls, its model.FenwickTree evolves
// bit-identically to the encoder's, which is what makes decoding exact.
type ArithmeticDecoder struct {
	model    *model.FenwickTree
	low      uint32
	high     uint32
	value    uint32
	in       arc.BitReader
	listener arc.ModelListener
}

// NewArithmeticDecoder creates a decoder reading from in. Call Begin once
// before the first call to Decode.
func NewArithmeticDecoder(in arc.BitReader) (*ArithmeticDecoder, error) {
	if in == nil {
		return nil, fmt.Errorf("arithmetic decoder: nil bit source")
	}

	m, err := model.NewFenwickTree(arc.Size, 1)

	if err != nil {
		return nil, err
	}

	return &ArithmeticDecoder{model: m, low: 0, high: top, in: in}, nil
}

// SetListener registers a ModelListener notified on every model rescale.
func (this *ArithmeticDecoder) SetListener(l arc.ModelListener) {
	this.listener = l
}

// Begin shifts up to 16 initial bits MSB-first into the decoder's value
// register. If the source has fewer bits available, it stops early
// without padding; padding only happens later, during Decode's
// renormalization, once the stream is genuinely exhausted.
func (this *ArithmeticDecoder) Begin() {
	for i := 0; i < valBits; i++ {
		bit, ok := this.in.NextBit()

		if !ok {
			return
		}

		this.value = (this.value << 1) | uint32(bit)
	}
}

// Decode returns the next symbol, locating it via the model's cumulative-
// to-symbol inverse lookup and narrowing [low, high] exactly as the
// encoder did when it encoded that symbol, then renormalizing in lock
// step. Past end of stream, missing bits are treated as zero, which is
// what lets a well-formed stream's trailing EOF symbol decode correctly
// even though its renormalization would otherwise demand more bits than
// the encoder actually emitted.
func (this *ArithmeticDecoder) Decode() int {
	rng := int64(this.high) - int64(this.low) + 1
	denom := this.model.Total()
	cum := (((int64(this.value)-int64(this.low))+1)*denom - 1) / rng
	s := this.model.Upper(cum)

	var lower int64

	if s > 0 {
		lower = this.model.Sum(s - 1)
	}

	upper := this.model.Sum(s)
	this.high = uint32(int64(this.low) + rng*upper/denom - 1)
	this.low = uint32(int64(this.low) + rng*lower/denom)

	for {
		switch {
		case this.high < half:
		case this.low >= half:
			this.value -= half
			this.low -= half
			this.high -= half
		case this.low >= firstQtr && this.high < thirdQtr:
			this.value -= firstQtr
			this.low -= firstQtr
			this.high -= firstQtr
		default:
			return s
		}

		this.low = (this.low << 1) & top
		this.high = ((this.high << 1) & top) | 1

		bit, ok := this.in.NextBit()

		if !ok {
			bit = 0
		}

		this.value = ((this.value << 1) | uint32(bit)) & top
	}
}

// Discover records that s has just been decoded, mirroring
// ArithmeticEncoder.Discover exactly so the two models stay in lock-step.
// Must not be called for the terminal EOF symbol.
func (this *ArithmeticDecoder) Discover(s int) {
	if this.model.Total() == arc.MaxFrequency {
		this.model.Scale(2)

		if this.listener != nil {
			this.listener.ProcessModelEvent(arc.ModelEvent{
				Type:   arc.EventRescale,
				Symbol: s,
				Total:  this.model.Total(),
			})
		}
	}

	this.model.Add(s, 1)
}

// Model exposes the decoder's frequency table, e.g. for diagnostics or
// for asserting lock-step with an encoder's model in tests.
func (this *ArithmeticDecoder) Model() *model.FenwickTree {
	return this.model
}
