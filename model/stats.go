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

package model

// Stats is a point-in-time snapshot of a FenwickTree's frequency table,
// for diagnostics or for asserting the lock-step invariant between an
// encoder's and a decoder's models in tests.
type Stats struct {
	Total int64
	Freqs []int64
}

// Snapshot captures the current total and every per-slot frequency.
func (this *FenwickTree) Snapshot() Stats {
	freqs := make([]int64, this.n)

	for i := 0; i < this.n; i++ {
		freqs[i] = this.Freq(i)
	}

	return Stats{Total: this.Total(), Freqs: freqs}
}
