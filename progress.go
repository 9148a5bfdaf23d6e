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

package main

import (
	"fmt"
	"io"

	"github.com/pborman/getopt"
	"github.com/streamjson/gojson/pkg/jsonstream"
)

var progressSuffix = "..."

func init() {
	flags := getopt.New()
	register(&formatter{
		name:  "progress",
		f:     doProgress,
		help:  "display one snapshot of the tree per input chunk",
		flags: flags,
	})
	flags.StringVarLong(&progressSuffix, "progress_suffix", 0, "suffix appended to strings still in flight", "SUFFIX")
}

func doProgress(w io.Writer, srcs []source) {
	var errs []error
	for _, src := range srcs {
		chunks := src.chunks
		i := 0
		next := func() (string, bool) {
			if i >= len(chunks) {
				return "", false
			}
			i++
			return chunks[i-1], true
		}
		s := jsonstream.NewStream(next, &jsonstream.Options{
			IncompleteStrings: jsonstream.IncludeIncompleteWithSuffix,
			IncompleteSuffix:  progressSuffix,
		})
		n := 0
		for {
			res, err := s.Next()
			if err != nil {
				errs = append(errs, fmt.Errorf("%s:%v", src.name, err))
				break
			}
			if res == nil {
				break
			}
			n++
			if res.Done {
				fmt.Fprintf(w, "done\t%v\n", res.Root)
			} else {
				fmt.Fprintf(w, "#%d\t%v\n", n, res.Root)
			}
		}
	}
	exitIfError(errs)
}
