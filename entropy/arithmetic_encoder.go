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

// Package entropy implements the adaptive arithmetic coder pair: an
// ArithmeticEncoder/ArithmeticDecoder that each own an independent
// model.FenwickTree and must evolve it identically, symbol for symbol, to
// stay in lock-step.
//
// Code based on the Witten-Neal-Cleary finite-precision arithmetic coding
// construction: 16-bit range state, quarter-point renormalization, and
// deferred "pending bit" emission across the E3 underflow case.
package entropy

import (
	"fmt"

	arc "github.com/duckling747/arithmetic-coding"
	"github.com/duckling747/arithmetic-coding/model"
)

const (
	valBits   = 16
	top       = uint32(1<<valBits - 1)
	firstQtr  = (top + 1) / 4
	half      = 2 * firstQtr
	thirdQtr  = 3 * firstQtr
)

// ArithmeticEncoder is an adaptive order-0 arithmetic encoder over a
// 257-symbol alphabet (256 byte values plus the reserved EOF symbol).
type ArithmeticEncoder struct {
	model    *model.FenwickTree
	low      uint32
	high     uint32
	pending  int
	out      arc.BitWriter
	listener arc.ModelListener
}

// NewArithmeticEncoder creates an encoder writing to out. Every symbol's
// count starts at 1 (Laplace smoothing), so every symbol is encodable
// from the very first call to Encode.
func NewArithmeticEncoder(out arc.BitWriter) (*ArithmeticEncoder, error) {
	if out == nil {
		return nil, fmt.Errorf("arithmetic encoder: nil bit sink")
	}

	m, err := model.NewFenwickTree(arc.Size, 1)

	if err != nil {
		return nil, err
	}

	return &ArithmeticEncoder{model: m, low: 0, high: top, out: out}, nil
}

// SetListener registers a ModelListener notified on every model rescale.
func (this *ArithmeticEncoder) SetListener(l arc.ModelListener) {
	this.listener = l
}

// Encode narrows [low, high] to the sub-interval symbol s occupies under
// the current model, then renormalizes, emitting or deferring bits as the
// range collapses toward the top/bottom half or the middle two quarters.
//
// s must have a strictly positive frequency under the current model. The
// driver in package codec guarantees that by
// calling Discover immediately after every Encode except the terminal
// EOF symbol, which is encoded exactly once at stream end.
func (this *ArithmeticEncoder) Encode(s int) {
	var lower int64

	if s > 0 {
		lower = this.model.Sum(s - 1)
	}

	upper := this.model.Sum(s)
	denom := this.model.Total()
	rng := int64(this.high) - int64(this.low) + 1

	this.high = uint32(int64(this.low) + rng*upper/denom - 1)
	this.low = uint32(int64(this.low) + rng*lower/denom)

	for {
		switch {
		case this.high < half:
			this.emit(0)
		case this.low >= half:
			this.emit(1)
			this.low -= half
			this.high -= half
		case this.low >= firstQtr && this.high < thirdQtr:
			this.pending++
			this.low -= firstQtr
			this.high -= firstQtr
		default:
			return
		}

		this.low = (this.low << 1) & top
		this.high = ((this.high << 1) & top) | 1
	}
}

// emit writes bit, followed by pending copies of its complement, and
// clears pending. Used for the E1 (high < half) and E2 (low >= half)
// renormalization cases; the E3 underflow case never emits directly and
// only increments pending instead.
func (this *ArithmeticEncoder) emit(bit byte) {
	this.out.PushBit(bit)
	comp := bit ^ 1

	for ; this.pending > 0; this.pending-- {
		this.out.PushBit(comp)
	}
}

// Discover records that s has just been coded, incrementing its count by
// one. If the model's total is already at MaxFrequency, the whole model
// is halved first so the update never overflows the bound.
func (this *ArithmeticEncoder) Discover(s int) {
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

// Finish flushes the final two bits that disambiguate the converged
// range. Must be called exactly once, after the terminal EOF symbol has
// been Encoded, and before the underlying bit sink is flushed.
func (this *ArithmeticEncoder) Finish() {
	this.pending++

	if this.low < firstQtr {
		this.emit(0)
	} else {
		this.emit(1)
	}
}

// Model exposes the encoder's frequency table, e.g. for diagnostics or
// for asserting lock-step with a decoder's model in tests.
func (this *ArithmeticEncoder) Model() *model.FenwickTree {
	return this.model
}
