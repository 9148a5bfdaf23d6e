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

// Program gojson parses JSON streams, displays errors, and writes a
// rendering of the decoded tree on output.
//
// Usage: gojson [--chunk N] [--format FORMAT] [FORMAT OPTIONS] [FILE ...]
//
// Each FILE is read at most N bytes at a time and parsed incrementally, one
// chunk per read (a chunk never splits a UTF-8 sequence).
// If no files are given, standard input is parsed.
//
// FORMAT, which defaults to "tree", specifies the format of output to
// produce.  Use "gojson --help" for a list of available formats.
//
// FORMAT OPTIONS are flags that apply to a specific format.  They must
// follow --format.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pborman/getopt"
	"github.com/streamjson/gojson/pkg/indent"
	"github.com/streamjson/gojson/pkg/jsonstream"
)

// A source is one named input, pre-split into the chunks it was read in.
type source struct {
	name   string
	chunks []string
}

// Each format must register a formatter with register.  The function f will
// be called once with the set of sources read.
type formatter struct {
	name  string
	f     func(io.Writer, []source)
	help  string
	flags *getopt.Set
}

var formatters = map[string]*formatter{}

func register(f *formatter) {
	formatters[f.name] = f
}

// exitIfError writes errs to standard error and exits with an exit status of
// 1.  If errs is empty then exitIfError does nothing and simply returns.
func exitIfError(errs []error) {
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}
		stop(1)
	}
}

var stop = os.Exit

func main() {
	var format string
	formats := make([]string, 0, len(formatters))
	for k := range formatters {
		formats = append(formats, k)
	}
	sort.Strings(formats)

	var help bool
	chunk := 4096
	getopt.IntVarLong(&chunk, "chunk", 0, "read input in chunks of at most N bytes", "N")
	getopt.StringVarLong(&format, "format", 0, "format to display: "+strings.Join(formats, ", "), "FORMAT")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[FORMAT OPTIONS] [FILE ...]")

	if err := getopt.Getopt(func(o getopt.Option) bool {
		if o.Name() == "--format" {
			f, ok := formatters[format]
			if !ok {
				fmt.Fprintf(os.Stderr, "%s: invalid format.  Choices are %s\n", format, strings.Join(formats, ", "))
				stop(1)
			}
			if f.flags != nil {
				f.flags.VisitAll(func(o getopt.Option) {
					getopt.AddOption(o)
				})
			}
		}
		return true
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		fmt.Fprintf(os.Stderr, `
Formats:
`)
		for _, fn := range formats {
			f := formatters[fn]
			fmt.Fprintf(os.Stderr, "    %s - %s\n", f.name, f.help)
			if f.flags != nil {
				f.flags.PrintOptions(indent.NewWriter(os.Stderr, "   "))
			}
			fmt.Fprintln(os.Stderr)
		}
		stop(0)
	}

	if format == "" {
		format = "tree"
	}
	if _, ok := formatters[format]; !ok {
		fmt.Fprintf(os.Stderr, "%s: invalid format.  Choices are %s\n", format, strings.Join(formats, ", "))
		stop(1)
	}

	files := getopt.Args()

	var srcs []source
	if len(files) == 0 {
		srcs = append(srcs, source{name: "<STDIN>", chunks: readChunks(os.Stdin, chunk)})
	}
	for _, name := range files {
		fp, err := os.Open(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		srcs = append(srcs, source{name: name, chunks: readChunks(fp, chunk)})
		fp.Close()
	}

	formatters[format].f(os.Stdout, srcs)
}

// readChunks drains r, reading at most n bytes at a time, into chunks that
// never split a UTF-8 sequence.  A chunk that completes a held-back sequence
// can be longer than n bytes.
func readChunks(r io.Reader, n int) []string {
	next := jsonstream.ReaderChunks(r, n)
	var out []string
	for {
		c, ok := next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

// parseChunks runs the chunks of src through a parser with opts, returning
// the parser so the formatter can pull the value or the events out of it.
func parseChunks(src source, opts *jsonstream.Options) (*jsonstream.Parser, error) {
	p := jsonstream.New(opts)
	for _, c := range src.chunks {
		if err := p.Push(c); err != nil {
			return nil, fmt.Errorf("%s:%v", src.name, err)
		}
	}
	if err := p.Close(); err != nil {
		return nil, fmt.Errorf("%s:%v", src.name, err)
	}
	return p, nil
}
