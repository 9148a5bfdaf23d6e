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

// Package jsonstream incrementally parses JSON (RFC 8259) supplied in
// arbitrarily sized text chunks, progressively constructing the decoded
// value tree.  The root value is observable at any point during parsing,
// with the latest chunk already reflected.
//
// At its simplest, the Parse function decodes a complete document:
//
//	v, err := jsonstream.Parse(`{"a":1}`, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Streaming consumers construct a Parser and feed it chunks:
//
//	p := jsonstream.New(nil)
//	for chunk := range chunks {
//		if err := p.Push(chunk); err != nil {
//			log.Fatal(err)
//		}
//		render(p.Value()) // the tree so far
//	}
//	if err := p.Close(); err != nil {
//		log.Fatal(err)
//	}
//
// A placeholder tree installed with SetPlaceholder before the first Push is
// progressively overwritten by real data and trimmed as containers close,
// which lets a UI render a skeleton that fills in.  With
// Options.IncompleteStrings, a string still in flight at a chunk boundary is
// surfaced in the tree, optionally with an ellipsis suffix.  With
// Options.TrackEvents, every structural mutation is recorded for
// differential rendering.
//
// The Stream type wraps a Parser and a chunk source into an iterator that
// yields one observation per chunk; it is the recommended interface for UI
// consumers.
//
// A parser is single-threaded and halt-on-fault: the first syntax error
// stops it until Reset.
package jsonstream
