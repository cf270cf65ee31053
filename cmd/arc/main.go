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

// Command arc is the thin command-line front end: -e compresses stdin to
// stdout, -d decompresses stdin to stdout. Argument parsing is hand-rolled
// rather than built on a flag library because the exact usage string below
// is itself part of this tool's observable contract.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/duckling747/arithmetic-coding/codec"
)

func usage() string {
	return fmt.Sprintf("Usage: %s [-e | -d] --", filepath.Base(os.Args[0]))
}

func main() {
	if len(os.Args) != 2 || (os.Args[1] != "-e" && os.Args[1] != "-d") {
		fmt.Fprintln(os.Stderr, usage())
		os.Exit(1)
	}

	in := bufio.NewReader(os.Stdin)
	out := bufio.NewWriter(os.Stdout)

	var err error

	if os.Args[1] == "-e" {
		err = encode(in, out)
	} else {
		err = decode(in, out)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := out.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "arc: flush stdout"))
		os.Exit(1)
	}
}

func encode(r io.Reader, w io.Writer) error {
	cw, err := codec.NewWriter(w, nil)

	if err != nil {
		return errors.Wrap(err, "arc: open encoder")
	}

	if _, err := io.Copy(cw, r); err != nil {
		return errors.Wrap(err, "arc: encode")
	}

	return errors.Wrap(cw.Close(), "arc: close encoder")
}

func decode(r io.Reader, w io.Writer) error {
	cr, err := codec.NewReader(r, nil)

	if err != nil {
		return errors.Wrap(err, "arc: open decoder")
	}

	if _, err := io.Copy(w, cr); err != nil {
		return errors.Wrap(err, "arc: decode")
	}

	return nil
}
