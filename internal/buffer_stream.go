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

// Package internal holds small helpers shared by this module's own tests
// and benchmarks, not meant for consumption outside the module.
package internal

import (
	"bytes"

	"github.com/pkg/errors"
)

// BufferStream is a closable read/write stream of bytes backed by a
// bytes.Buffer, standing in for a real byte-stream source/sink in tests
// that exercise codec.Writer/codec.Reader or the bitstream package
// without touching the filesystem or stdin/stdout.
type BufferStream struct {
	buf    *bytes.Buffer
	closed bool
}

// NewBufferStream creates a BufferStream, optionally pre-seeded with the
// given bytes.
func NewBufferStream(args ...[]byte) *BufferStream {
	this := &BufferStream{}

	if len(args) == 1 {
		this.buf = bytes.NewBuffer(args[0])
	} else {
		this.buf = bytes.NewBuffer(make([]byte, 0))
	}

	return this
}

// Write writes b to the internal buffer, growing it as needed. Returns an
// error if the stream is closed.
func (this *BufferStream) Write(b []byte) (int, error) {
	if this.closed {
		return 0, errors.New("buffer stream: closed")
	}

	return this.buf.Write(b)
}

// Read reads from the internal buffer. Returns an error if the stream is
// closed, or (0, io.EOF) once no data remains.
func (this *BufferStream) Read(b []byte) (int, error) {
	if this.closed {
		return 0, errors.New("buffer stream: closed")
	}

	return this.buf.Read(b)
}

// Close makes the stream unavailable for future reads or writes.
func (this *BufferStream) Close() error {
	this.closed = true
	return nil
}

// Len returns the number of unread bytes currently buffered.
func (this *BufferStream) Len() int {
	return this.buf.Len()
}

// Bytes returns the buffer's remaining unread content without consuming it.
func (this *BufferStream) Bytes() []byte {
	return this.buf.Bytes()
}
