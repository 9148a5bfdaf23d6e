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

// IncompleteStrings selects how a string that is still being lexed at a
// chunk boundary is reflected in the tree.
type IncompleteStrings int

const (
	// OmitIncomplete leaves partially lexed strings out of the tree; the
	// target slot keeps its previous value until the string terminates.
	// This is the default and the only mode under which parsing is fully
	// independent of how the input was chunked.
	OmitIncomplete IncompleteStrings = iota
	// IncludeIncomplete writes the partial contents into the target slot
	// at each chunk boundary and at Close.
	IncludeIncomplete
	// IncludeIncompleteWithSuffix behaves like IncludeIncomplete but
	// appends Options.IncompleteSuffix to the partial contents, so a
	// consumer can render an ellipsis while the string is in flight.
	IncludeIncompleteWithSuffix
)

// Options defines the options that should be used when parsing a stream.
type Options struct {
	// IncompleteStrings controls whether strings that are only partly
	// received are surfaced in the tree at chunk boundaries.  Strings
	// that would become a property name are never surfaced.
	IncompleteStrings IncompleteStrings
	// IncompleteSuffix is appended to partial string contents when
	// IncompleteStrings is IncludeIncompleteWithSuffix.  "..." is
	// typical.
	IncompleteSuffix string
	// TrackEvents enables the event log.  Every structural mutation of
	// the tree is recorded and drained with TakeEvents.  Writes of
	// incomplete strings are not events.
	TrackEvents bool
}
