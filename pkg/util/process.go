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

// Package util contains gojson utility functions that could be useful for
// external users.
package util

import (
	"fmt"
	"io"
	"os"

	"github.com/streamjson/gojson/pkg/jsonstream"
)

// ProcessReader streams r through a parser in chunks of at most chunk bytes
// and returns the final value.  chunk <= 0 means a default size.  A nil
// opts means the default options.
func ProcessReader(r io.Reader, chunk int, opts *jsonstream.Options) (jsonstream.Value, error) {
	s := jsonstream.NewStream(jsonstream.ReaderChunks(r, chunk), opts)
	for {
		res, err := s.Next()
		if err != nil {
			return nil, err
		}
		if res.Done {
			return res.Root, nil
		}
	}
}

// ProcessFiles takes a list of file names and runs the streaming parser
// against each, returning the decoded values keyed by file name.  Errors are
// collected per file; a file with an error has no entry in the map.
func ProcessFiles(names []string, chunk int, opts *jsonstream.Options) (map[string]jsonstream.Value, []error) {
	vals := map[string]jsonstream.Value{}
	var errs []error
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		v, err := ProcessReader(f, chunk, opts)
		f.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s:%v", name, err))
			continue
		}
		vals[name] = v
	}
	return vals, errs
}
