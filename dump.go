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
	"io"

	"github.com/alecthomas/repr"
	"github.com/streamjson/gojson/pkg/jsonstream"
)

func init() {
	register(&formatter{
		name: "dump",
		f:    doDump,
		help: "dump the decoded tree as a native Go value",
	})
}

func doDump(w io.Writer, srcs []source) {
	var errs []error
	for _, src := range srcs {
		p, err := parseChunks(src, nil)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		repr.New(w, repr.Indent("  ")).Println(jsonstream.Native(p.Value()))
	}
	exitIfError(errs)
}
