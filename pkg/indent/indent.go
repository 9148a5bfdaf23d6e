// Copyright 2021 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package indent prefixes each line of its input.  The gojson command uses
// it to nest each format's option list inside its --help output.
package indent

import (
	"bytes"
	"io"
)

// String returns s with each line prefixed by prefix.
func String(prefix, s string) string {
	if prefix == "" || s == "" {
		return s
	}
	return string(Bytes([]byte(prefix), []byte(s)))
}

// Bytes returns b with each line prefixed by prefix.
func Bytes(prefix, b []byte) []byte {
	if len(prefix) == 0 || len(b) == 0 {
		return b
	}
	var buf bytes.Buffer
	w := NewWriter(&buf, string(prefix))
	w.Write(b)
	return buf.Bytes()
}

// NewWriter returns a writer that writes to w with each line prefixed by
// prefix.  The prefix of a line is not written until the line has content,
// so a stream ending in a newline does not produce a dangling prefix.
func NewWriter(w io.Writer, prefix string) io.Writer {
	if prefix == "" {
		return w
	}
	return &writer{w: w, prefix: []byte(prefix), bol: true}
}

type writer struct {
	w      io.Writer
	prefix []byte
	bol    bool // the next content byte starts a line
}

// Write writes buf with prefixes inserted, in a single write to the
// underlying writer.  The returned count is in bytes of buf: when the
// underlying writer comes up short, the count reflects how much of buf made
// it out, not how many prefixed bytes were written.
func (w *writer) Write(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	out := make([]byte, 0, len(buf)+len(w.prefix))
	// content runs of out, for mapping an underlying short write back to
	// a count of buf bytes
	type run struct{ outStart, outEnd, inStart int }
	var runs []run
	in := 0
	rest := buf
	for len(rest) > 0 {
		if w.bol {
			out = append(out, w.prefix...)
			w.bol = false
		}
		line := rest
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line = rest[:i+1]
			w.bol = true
		}
		runs = append(runs, run{len(out), len(out) + len(line), in})
		out = append(out, line...)
		in += len(line)
		rest = rest[len(line):]
	}
	a, err := w.w.Write(out)
	if err == nil {
		return len(buf), nil
	}
	n := 0
	for _, r := range runs {
		switch {
		case a >= r.outEnd:
			n = r.inStart + (r.outEnd - r.outStart)
		case a > r.outStart:
			n = r.inStart + (a - r.outStart)
		}
		if a < r.outEnd {
			break
		}
	}
	return n, err
}
