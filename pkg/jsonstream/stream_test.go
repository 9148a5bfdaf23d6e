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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openconfig/gnmi/errdiff"
)

// sliceChunks returns a chunk source over chunks.
func sliceChunks(chunks []string) func() (string, bool) {
	i := 0
	return func() (string, bool) {
		if i >= len(chunks) {
			return "", false
		}
		i++
		return chunks[i-1], true
	}
}

func TestStream(t *testing.T) {
	chunks := []string{`{"a":`, `1,"b":`, `[true]}`}
	s := NewStream(sliceChunks(chunks), &Options{TrackEvents: true})
	var results []*Result
	for {
		res, err := s.Next()
		if err != nil {
			t.Fatal(err)
		}
		if res == nil {
			break
		}
		results = append(results, res)
	}
	// One observation per chunk plus the final one.
	if len(results) != len(chunks)+1 {
		t.Fatalf("got %d results, want %d", len(results), len(chunks)+1)
	}
	for i, res := range results {
		if want := i == len(results)-1; res.Done != want {
			t.Errorf("result %d: Done = %v, want %v", i, res.Done, want)
		}
	}
	want := O("a", Number(1), "b", A(Bool(true)))
	if got := results[len(results)-1].Root; !Equal(got, want) {
		t.Errorf("final root: got %s, want %s", got, want)
	}
	// The per-chunk event slices concatenate to the full log.
	var all []Event
	for _, res := range results {
		all = append(all, res.Events...)
	}
	wantPaths := []string{".", ".a", ".b", ".b[0]", ".b", "."}
	if len(all) != len(wantPaths) {
		t.Fatalf("got %d events %v, want %d", len(all), all, len(wantPaths))
	}
	for i, e := range all {
		if e.Path.String() != wantPaths[i] {
			t.Errorf("event %d: got path %v, want %s", i, e.Path, wantPaths[i])
		}
	}
}

func TestStreamError(t *testing.T) {
	s := NewStream(sliceChunks([]string{`[1,`, `]`}), nil)
	var err error
	for {
		var res *Result
		res, err = s.Next()
		if err != nil || res == nil {
			break
		}
	}
	if diff := errdiff.Substring(err, `Unexpected token: "]"`); diff != "" {
		t.Error(diff)
	}
}

// TestStreamPlaceholder verifies that a placeholder can be installed through
// the stream's parser before the first chunk.
func TestStreamPlaceholder(t *testing.T) {
	s := NewStream(sliceChunks([]string{`{"a":1`, `}`}), nil)
	if err := s.Parser().SetPlaceholder(O("a", Null{}, "b", Null{})); err != nil {
		t.Fatal(err)
	}
	res, err := s.Next()
	if err != nil {
		t.Fatal(err)
	}
	// The literal 1 is not terminated yet, so the placeholder values are
	// still showing.
	if want := O("a", Null{}, "b", Null{}); !Equal(res.Root, want) {
		t.Errorf("after first chunk: got %s, want %s", res.Root, want)
	}
	for res != nil && !res.Done {
		if res, err = s.Next(); err != nil {
			t.Fatal(err)
		}
	}
	if want := O("a", Number(1)); res == nil || !Equal(res.Root, want) {
		t.Errorf("final: got %v, want %s", res, want)
	}
}

func TestReaderChunks(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   string
		n    int
		want []string
	}{
		{line(), "", 4, nil},
		{line(), "abc", 8, []string{"abc"}},
		{line(), "abcdef", 2, []string{"ab", "cd", "ef"}},
		// A chunk boundary never splits a UTF-8 sequence.
		{line(), "aü", 2, []string{"a", "ü"}},
		{line(), "ü", 1, []string{"ü"}},
		{line(), "héllo", 3, []string{"hé", "llo"}},
	} {
		next := ReaderChunks(strings.NewReader(tt.in), tt.n)
		var got []string
		for {
			c, ok := next()
			if !ok {
				break
			}
			got = append(got, c)
		}
		if diff := cmp.Diff(got, tt.want); diff != "" {
			t.Errorf("%d: chunks differ (-got +want):\n%s", tt.line, diff)
		}
		if strings.Join(got, "") != tt.in {
			t.Errorf("%d: chunks do not concatenate to the input", tt.line)
		}
	}
}

func TestParseWhole(t *testing.T) {
	got, err := Parse(`{"a":[1,2]}`, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := O("a", A(Number(1), Number(2))); !Equal(got, want) {
		t.Errorf("got %s, want %s", got, want)
	}
}
