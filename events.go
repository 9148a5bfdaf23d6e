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

var eventsPathsOnly bool

func init() {
	flags := getopt.New()
	register(&formatter{
		name:  "events",
		f:     doEvents,
		help:  "display the structural event log",
		flags: flags,
	})
	flags.BoolVarLong(&eventsPathsOnly, "events_paths_only", 0, "display only the path of each event")
}

func doEvents(w io.Writer, srcs []source) {
	var errs []error
	for _, src := range srcs {
		p, err := parseChunks(src, &jsonstream.Options{TrackEvents: true})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		evs, err := p.TakeEvents()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, e := range evs {
			if eventsPathsOnly {
				fmt.Fprintln(w, e.Path)
			} else {
				fmt.Fprintln(w, e)
			}
		}
	}
	exitIfError(errs)
}
