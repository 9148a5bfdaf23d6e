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

// Package jsonpath contains high-level helpers for working with
// jsonstream value trees: looking up the slot an event path addresses, and
// rebuilding a tree from an event log.  Differential renderers use these to
// apply only what changed.
package jsonpath

import (
	"github.com/streamjson/gojson/pkg/jsonstream"
)

// Lookup walks v along path and returns the value it addresses.  It returns
// false when a segment does not match the shape of the tree.
func Lookup(v jsonstream.Value, path jsonstream.Path) (jsonstream.Value, bool) {
	for _, seg := range path {
		switch s := seg.(type) {
		case jsonstream.Index:
			a, ok := v.(*jsonstream.Array)
			if !ok || int(s) < 0 || int(s) >= a.Len() {
				return nil, false
			}
			v = a.At(int(s))
		case jsonstream.Key:
			o, ok := v.(*jsonstream.Object)
			if !ok {
				return nil, false
			}
			if v, ok = o.Get(string(s)); !ok {
				return nil, false
			}
		default:
			return nil, false
		}
	}
	return v, true
}

// Build replays events against an initially empty root and returns the
// resulting tree.  Events carry no values, only paths, so leaf values and
// container kinds are read from src, the tree the events were recorded
// against.  Replaying a complete event log against the final tree
// reconstructs it.
func Build(events []jsonstream.Event, src jsonstream.Value) jsonstream.Value {
	holder := jsonstream.NewArray(jsonstream.Null{})
	for _, e := range events {
		switch e.Kind {
		case jsonstream.EventBegin:
			v, ok := Lookup(src, e.Path)
			if !ok {
				continue
			}
			switch v.(type) {
			case *jsonstream.Object:
				setAt(holder, e.Path, jsonstream.NewObject())
			case *jsonstream.Array:
				setAt(holder, e.Path, jsonstream.NewArray())
			}
		case jsonstream.EventSet:
			if v, ok := Lookup(src, e.Path); ok {
				setAt(holder, e.Path, v)
			}
		}
	}
	return holder.At(0)
}

// setAt writes v at path under the root slot held by holder.  Paths into
// containers the replay has not created are dropped.
func setAt(holder *jsonstream.Array, path jsonstream.Path, v jsonstream.Value) {
	if len(path) == 0 {
		holder.Set(0, v)
		return
	}
	parent, ok := Lookup(holder.At(0), path[:len(path)-1])
	if !ok {
		return
	}
	switch s := path[len(path)-1].(type) {
	case jsonstream.Index:
		if a, ok := parent.(*jsonstream.Array); ok {
			a.Set(int(s), v)
		}
	case jsonstream.Key:
		if o, ok := parent.(*jsonstream.Object); ok {
			o.Set(string(s), v)
		}
	}
}
