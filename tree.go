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
	"strconv"

	"github.com/streamjson/gojson/pkg/jsonstream"
)

func init() {
	register(&formatter{
		name: "tree",
		f:    doTree,
		help: "display the decoded tree, indented",
	})
}

func doTree(w io.Writer, srcs []source) {
	var errs []error
	for _, src := range srcs {
		p, err := parseChunks(src, nil)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		Write(w, p.Value(), "")
		fmt.Fprintln(w)
	}
	exitIfError(errs)
}

// Write writes v, formatted, and all of its children, to w.  Children are
// indented further by a tab.  Typically indent is "" at the top level.
func Write(w io.Writer, v jsonstream.Value, indent string) {
	switch v := v.(type) {
	case *jsonstream.Array:
		if v.Len() == 0 {
			fmt.Fprint(w, "[]")
			return
		}
		fmt.Fprintln(w, "[")
		for i := 0; i < v.Len(); i++ {
			fmt.Fprint(w, indent+"\t")
			Write(w, v.At(i), indent+"\t")
			if i < v.Len()-1 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintln(w)
		}
		fmt.Fprint(w, indent+"]")
	case *jsonstream.Object:
		if v.Len() == 0 {
			fmt.Fprint(w, "{}")
			return
		}
		fmt.Fprintln(w, "{")
		keys := v.Keys()
		for i, k := range keys {
			e, _ := v.Get(k)
			fmt.Fprintf(w, "%s\t%s: ", indent, strconv.Quote(k))
			Write(w, e, indent+"\t")
			if i < len(keys)-1 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintln(w)
		}
		fmt.Fprint(w, indent+"}")
	default:
		fmt.Fprint(w, v)
	}
}
