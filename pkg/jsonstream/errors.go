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
	"errors"
	"fmt"
)

// A SyntaxError reports malformed input.  Location points at the offending
// character, or at the first character of an offending literal.  Once a
// parser has returned a SyntaxError it keeps returning it until Reset.
type SyntaxError struct {
	Message  string
	Location Location
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s", e.Location, e.Message)
}

// Usage errors.  These report misuse of the API rather than bad input and
// carry no location.
var (
	// ErrClosed is returned by Push and Close after Close has completed.
	ErrClosed = errors.New("jsonstream: parser is closed")
	// ErrAlreadyParsing is returned by SetPlaceholder once any input has
	// been consumed.
	ErrAlreadyParsing = errors.New("jsonstream: input already consumed")
	// ErrEventsDisabled is returned by TakeEvents when Options.TrackEvents
	// was not set.
	ErrEventsDisabled = errors.New("jsonstream: event tracking is disabled")
)
