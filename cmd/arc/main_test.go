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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeThenDecodeRoundTrips(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	var compressed bytes.Buffer
	require.NoError(t, encode(bytes.NewReader(data), &compressed))

	var decoded bytes.Buffer
	require.NoError(t, decode(bytes.NewReader(compressed.Bytes()), &decoded))

	require.Equal(t, data, decoded.Bytes())
}

func TestUsageMentionsBinaryAndFlags(t *testing.T) {
	msg := usage()
	require.Contains(t, msg, filepath.Base(os.Args[0]))
	require.Contains(t, msg, "-e")
	require.Contains(t, msg, "-d")
}
