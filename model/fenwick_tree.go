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

// Package model implements the adaptive frequency table the arithmetic
// coders consult: a Fenwick (binary-indexed) tree supporting prefix-sum
// queries, point updates, full-tree halving and the cumulative-to-symbol
// inverse lookup the decoder needs, all in O(log n).
package model

import "fmt"

// FenwickTree is a binary-indexed tree over n one-based slots, stored in
// an array of length n+1 with slot 0 unused. All public methods use
// zero-based indices; the +1 shift to the internal 1-based layout is
// private to this type.
type FenwickTree struct {
	tree    []int64
	n       int
	highBit int
}

// NewFenwickTree builds a tree of n logical slots, each initialized to
// init, using the standard O(n) bottom-up construction: every slot is
// assigned its initial value, then propagated into its Fenwick parent.
func NewFenwickTree(n int, init int64) (*FenwickTree, error) {
	if n <= 0 {
		return nil, fmt.Errorf("fenwick tree: invalid size %d (must be > 0)", n)
	}

	this := &FenwickTree{
		tree: make([]int64, n+1),
		n:    n,
	}

	for i := 1; i <= n; i++ {
		this.tree[i] += init

		if j := i + lsb(i); j <= n {
			this.tree[j] += this.tree[i]
		}
	}

	for hb := 1; hb<<1 <= n; hb <<= 1 {
		this.highBit = hb << 1
	}

	if this.highBit == 0 {
		this.highBit = 1
	}

	return this, nil
}

// lsb returns i's lowest set bit in two's-complement (i & -i).
func lsb(i int) int {
	return i & (-i)
}

// Len returns the number of logical slots in the tree.
func (this *FenwickTree) Len() int {
	return this.n
}

// Sum returns the prefix sum of slots 0..=i. Panics if i is out of range.
func (this *FenwickTree) Sum(i int) int64 {
	if i < 0 || i >= this.n {
		panic(fmt.Errorf("fenwick tree: index %d out of range [0,%d)", i, this.n))
	}

	idx := i + 1
	var s int64

	for idx > 0 {
		s += this.tree[idx]
		idx -= lsb(idx)
	}

	return s
}

// Total returns the sum of every slot, i.e. Sum(n-1).
func (this *FenwickTree) Total() int64 {
	return this.Sum(this.n - 1)
}

// Add adds a to slot i, propagating the update to every ancestor.
// Panics if i is out of range.
func (this *FenwickTree) Add(i int, a int64) {
	if i < 0 || i >= this.n {
		panic(fmt.Errorf("fenwick tree: index %d out of range [0,%d)", i, this.n))
	}

	for idx := i + 1; idx <= this.n; idx += lsb(idx) {
		this.tree[idx] += a
	}
}

// Sub subtracts a from slot i. Equivalent to Add(i, -a).
func (this *FenwickTree) Sub(i int, a int64) {
	this.Add(i, -a)
}

// Freq returns the individual frequency stored at slot i, recovered from
// the prefix-sum representation: tree[i+1] minus the subrange sum between
// (i+1)-lsb(i+1) and i.
func (this *FenwickTree) Freq(i int) int64 {
	if i < 0 || i >= this.n {
		panic(fmt.Errorf("fenwick tree: index %d out of range [0,%d)", i, this.n))
	}

	idx := i + 1
	result := this.tree[idx]
	z := idx - lsb(idx)
	idx--

	for idx != z {
		result -= this.tree[idx]
		idx -= lsb(idx)
	}

	return result
}

// Scale subtracts freq(i)/factor from every slot, walking from the highest
// index down so each Freq read sees only not-yet-rescaled slots. Invoked
// only with factor == 2 in this system: a slot's new frequency is
// f - f/factor, i.e. ceil(f/2), so a pre-scale frequency of 1 stays 1 —
// no slot is ever driven to 0 by a rescale, which is what keeps every
// symbol (including one that is never re-Discovered, like EOF) permanently
// codable.
func (this *FenwickTree) Scale(factor int64) {
	for i := this.n - 1; i >= 0; i-- {
		f := this.Freq(i)

		if a := f / factor; a != 0 {
			this.Sub(i, a)
		}
	}
}

// Upper returns the smallest zero-based index s such that Sum(s) > c, i.e.
// the unique s with Sum(s-1) <= c < Sum(s). This is the cumulative-to-symbol
// inverse the decoder uses; c must satisfy 0 <= c < Total().
func (this *FenwickTree) Upper(c int64) int {
	return this.descend(c + 1)
}

// Lower returns the smallest zero-based index s such that Sum(s) >= c.
// Provided alongside Upper for completeness of the cumulative-to-index
// inverse; the coders only ever call Upper.
func (this *FenwickTree) Lower(c int64) int {
	return this.descend(c)
}

// descend performs the Fenwick-tree-native log-n binary lifting walk:
// starting from the largest power of two <= n, repeatedly try to extend
// the current 1-based position by the mask, taking the step whenever doing
// so keeps the accumulated node value strictly below x. The position at
// the end of the walk, read as zero-based, is the answer.
func (this *FenwickTree) descend(x int64) int {
	pos := 0

	for mask := this.highBit; mask > 0; mask >>= 1 {
		next := pos + mask

		if next <= this.n && this.tree[next] < x {
			pos = next
			x -= this.tree[next]
		}
	}

	return pos
}
