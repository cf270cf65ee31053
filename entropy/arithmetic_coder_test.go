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
	"bytes"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	arc "github.com/duckling747/arithmetic-coding"
	"github.com/duckling747/arithmetic-coding/bitstream"
	"github.com/duckling747/arithmetic-coding/internal"
	"github.com/duckling747/arithmetic-coding/model"
)

// rescaleCounter is an arc.ModelListener that counts EventRescale
// notifications, used to assert the "no scale occurred" / "at least one
// scale occurred" boundary behaviors.
type rescaleCounter struct {
	count int
}

func (this *rescaleCounter) ProcessModelEvent(evt arc.ModelEvent) {
	if evt.Type == arc.EventRescale {
		this.count++
	}
}

// encodeBytes runs the encode drive loop over data and returns the
// compressed stream together with a model snapshot taken after every
// Discover call. The terminal EOF is Encoded but never Discovered, so it
// adds no snapshot.
func encodeBytes(t *testing.T, data []byte, listener arc.ModelListener) ([]byte, []model.Stats) {
	t.Helper()

	sink := internal.NewBufferStream()
	out, err := bitstream.NewBitOutput(sink, 0)
	require.NoError(t, err)

	enc, err := NewArithmeticEncoder(out)
	require.NoError(t, err)

	if listener != nil {
		enc.SetListener(listener)
	}

	var snaps []model.Stats

	for _, b := range data {
		enc.Encode(int(b))
		enc.Discover(int(b))
		snaps = append(snaps, enc.Model().Snapshot())
	}

	enc.Encode(arc.EOF)
	enc.Finish()
	require.NoError(t, out.Flush())

	return sink.Bytes(), snaps
}

// decodeBytes runs the decode drive loop over a compressed stream.
func decodeBytes(t *testing.T, compressed []byte, listener arc.ModelListener) ([]byte, []model.Stats) {
	t.Helper()

	src := internal.NewBufferStream(compressed)
	in := bitstream.NewBitInput(src)

	dec, err := NewArithmeticDecoder(in)
	require.NoError(t, err)

	if listener != nil {
		dec.SetListener(listener)
	}

	dec.Begin()

	var out []byte
	var snaps []model.Stats

	for {
		s := dec.Decode()

		if s == arc.EOF {
			break
		}

		dec.Discover(s)
		out = append(out, byte(s))
		snaps = append(snaps, dec.Model().Snapshot())
	}

	return out, snaps
}

func roundTrip(t *testing.T, data []byte) ([]byte, []model.Stats, []model.Stats) {
	t.Helper()

	compressed, encSnaps := encodeBytes(t, data, nil)
	decoded, decSnaps := decodeBytes(t, compressed, nil)
	require.Equal(t, data, decoded)

	return compressed, encSnaps, decSnaps
}

func TestRoundTripEmptyInput(t *testing.T) {
	compressed, _, _ := roundTrip(t, nil)
	require.NotEmpty(t, compressed)
}

func TestRoundTripSingleByteEveryValue(t *testing.T) {
	for v := 0; v < 256; v++ {
		roundTrip(t, []byte{byte(v)})
	}
}

func TestRoundTripRepeatedByteNoScaleOccurs(t *testing.T) {
	data := bytes.Repeat([]byte{'A'}, 10000)

	var listener rescaleCounter
	compressed, _ := encodeBytes(t, data, &listener)
	decoded, _ := decodeBytes(t, compressed, nil)

	require.Equal(t, data, decoded)
	require.Zero(t, listener.count)
}

func TestRoundTripLargeRandomInputForcesScale(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	data := make([]byte, 20000)
	r.Read(data)

	var encListener, decListener rescaleCounter

	compressed, encSnaps := encodeBytes(t, data, &encListener)
	decoded, decSnaps := decodeBytes(t, compressed, &decListener)

	require.Equal(t, data, decoded)
	require.GreaterOrEqual(t, encListener.count, 1)
	require.Equal(t, encListener.count, decListener.count)

	require.Equal(t, len(encSnaps), len(decSnaps))

	for i := range encSnaps {
		if diff := cmp.Diff(encSnaps[i], decSnaps[i]); diff != "" {
			t.Fatalf("model diverged after symbol %d (-encoder +decoder):\n%s", i, diff)
		}
	}
}

func TestRoundTripAllByteValuesInSequence(t *testing.T) {
	data := make([]byte, 256)

	for i := range data {
		data[i] = byte(i)
	}

	roundTrip(t, data)
}

func TestRoundTripNaturalLanguageTextCompresses(t *testing.T) {
	data := []byte(naturalLanguageSample)

	compressed, _, _ := roundTrip(t, data)
	require.Less(t, len(compressed), len(data))
}

func TestModelsStayInLockStepAcrossAllPrefixes(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly, the quick brown fox jumps over the lazy dog again and again")

	_, encSnaps, decSnaps := roundTrip(t, data)
	require.Equal(t, len(data), len(encSnaps))
	require.Equal(t, len(data), len(decSnaps))

	for i := range encSnaps {
		if diff := cmp.Diff(encSnaps[i], decSnaps[i]); diff != "" {
			t.Fatalf("model diverged after symbol %d (-encoder +decoder):\n%s", i, diff)
		}
	}
}

const naturalLanguageSample = `It is a truth universally acknowledged, that a single man in possession
of a good fortune, must be in want of a wife. However little known the
feelings or views of such a man may be on his first entering a
neighbourhood, this truth is so well fixed in the minds of the
surrounding families, that he is considered as the rightful property of
some one or other of their daughters. My dear Mr. Bennet, said his lady
to him one day, have you heard that Netherfield Park is let at last?`
