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

package jsonstream

import (
	"io"
	"unicode/utf8"
)

// Parse decodes input as a single chunk and returns the final value.  A nil
// opts means the default options.
func Parse(input string, opts *Options) (Value, error) {
	p := New(opts)
	if err := p.Push(input); err != nil {
		return nil, err
	}
	if err := p.Close(); err != nil {
		return nil, err
	}
	return p.Value(), nil
}

// A Result is one observation of the parse: the root so far, the events
// accumulated since the previous observation (when tracking is enabled), and
// whether the input is exhausted.
type Result struct {
	Root   Value
	Events []Event
	Done   bool
}

// A Stream drives a Parser over a sequence of input chunks, yielding one
// Result per chunk and a final Result, with Done set, after the source is
// exhausted and the parse is closed.
type Stream struct {
	parser *Parser
	src    func() (string, bool)
	done   bool
}

// NewStream returns a stream feeding chunks from src into a new parser.
// src returns the next chunk, and false once no chunk remains.  A nil opts
// means the default options.
func NewStream(src func() (string, bool), opts *Options) *Stream {
	return &Stream{parser: New(opts), src: src}
}

// Parser returns the underlying parser, e.g. to install a placeholder before
// the first call to Next.
func (s *Stream) Parser() *Parser {
	return s.parser
}

// Next consumes the next chunk and returns the resulting observation.  Once
// the source is exhausted it closes the parse and returns a final Result
// with Done set; after that it returns nil, nil.
func (s *Stream) Next() (*Result, error) {
	if s.done {
		return nil, nil
	}
	chunk, ok := s.src()
	if !ok {
		if err := s.parser.Close(); err != nil {
			return nil, err
		}
		s.done = true
		return s.observe(true)
	}
	if err := s.parser.Push(chunk); err != nil {
		return nil, err
	}
	return s.observe(false)
}

func (s *Stream) observe(done bool) (*Result, error) {
	r := &Result{Root: s.parser.Value(), Done: done}
	if s.parser.opts.TrackEvents {
		evs, err := s.parser.TakeEvents()
		if err != nil {
			return nil, err
		}
		r.Events = evs
	}
	return r, nil
}

// ReaderChunks returns a chunk source reading up to n bytes at a time from
// r.  A chunk never splits a UTF-8 sequence: trailing bytes of an incomplete
// rune are held back until the rest arrives.  n <= 0 means a default size.
func ReaderChunks(r io.Reader, n int) func() (string, bool) {
	if n <= 0 {
		n = 4096
	}
	buf := make([]byte, n)
	var pend []byte
	eof := false
	return func() (string, bool) {
		for !eof {
			m, err := r.Read(buf)
			if err != nil {
				eof = true
			}
			if m == 0 {
				continue
			}
			pend = append(pend, buf[:m]...)
			cut := len(pend)
			if !eof {
				s := cut
				for s > 0 && cut-s < utf8.UTFMax && !utf8.RuneStart(pend[s-1]) {
					s--
				}
				if s > 0 && !utf8.FullRune(pend[s-1:cut]) {
					cut = s - 1
				}
			}
			if cut == 0 {
				continue
			}
			out := string(pend[:cut])
			pend = append(pend[:0], pend[cut:]...)
			return out, true
		}
		if len(pend) > 0 {
			out := string(pend)
			pend = nil
			return out, true
		}
		return "", false
	}
}
