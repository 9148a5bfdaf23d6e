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
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openconfig/gnmi/errdiff"
)

// line returns the line number from which it was called.
// Used to mark where test entries are in the source.
func line() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}

// equal returns true if t and tt have the same code and payload.  Locations
// are checked separately.
func (t *token) equal(tt *token) bool {
	return t.code == tt.code && t.text == tt.text && Equal(t.lit, tt.lit)
}

// T creates a new payloadless token from the provided code.
func T(c code) token { return token{code: c} }

// S creates a new string token from the provided code and content.
func S(c code, text string) token { return token{code: c, text: text} }

// L creates a new literal token carrying v.
func L(v Value) token { return token{code: tLiteral, lit: v} }

// lexString feeds in to a fresh lexer one code point at a time, then closes
// it, returning every token produced.
func lexString(in string) ([]token, error) {
	var l lexer
	l.reset()
	var out []token
	for _, c := range in {
		toks, err := l.pushChar(c)
		if err != nil {
			return out, err
		}
		out = append(out, toks...)
	}
	toks, err := l.close()
	return append(out, toks...), err
}

func TestLex(t *testing.T) {
Tests:
	for _, tt := range []struct {
		line   int
		in     string
		tokens []token
	}{
		{line(), "", nil},
		{line(), "   \t\r\n", nil},
		{line(), "null", []token{
			L(Null{}),
		}},
		{line(), "true", []token{
			L(Bool(true)),
		}},
		{line(), "false", []token{
			L(Bool(false)),
		}},
		{line(), "42", []token{
			L(Number(42)),
		}},
		{line(), "-50.25e3", []token{
			L(Number(-50250)),
		}},
		{line(), "true false", []token{
			L(Bool(true)),
			L(Bool(false)),
		}},
		// A single character can terminate a literal and be a
		// structural token itself; the literal comes first.
		{line(), "[7]", []token{
			T(tStartArray),
			L(Number(7)),
			T(tEndArray),
		}},
		{line(), "[1,2]", []token{
			T(tStartArray),
			L(Number(1)),
			T(tComma),
			L(Number(2)),
			T(tEndArray),
		}},
		{line(), "7", []token{
			L(Number(7)),
		}},
		{line(), `""`, []token{
			T(tStartString),
			S(tEndString, ""),
		}},
		{line(), `"abc"`, []token{
			T(tStartString),
			S(tEndString, "abc"),
		}},
		{line(), `"a\"b\\c\/d"`, []token{
			T(tStartString),
			S(tEndString, `a"b\c/d`),
		}},
		{line(), `"\b\f\n\r\t"`, []token{
			T(tStartString),
			S(tEndString, "\b\f\n\r\t"),
		}},
		{line(), `"Aé"`, []token{
			T(tStartString),
			S(tEndString, "Aé"),
		}},
		// Raw control characters are accepted inside strings.
		{line(), "\"a\nb\"", []token{
			T(tStartString),
			S(tEndString, "a\nb"),
		}},
		{line(), `{"a":1}`, []token{
			T(tStartObject),
			T(tStartString),
			S(tEndString, "a"),
			T(tColon),
			L(Number(1)),
			T(tEndObject),
		}},
		{line(), `7"x"`, []token{
			L(Number(7)),
			T(tStartString),
			S(tEndString, "x"),
		}},
	} {
		tokens, err := lexString(tt.in)
		if err != nil {
			t.Errorf("%d: %v", tt.line, err)
			continue
		}
		if len(tokens) != len(tt.tokens) {
			t.Errorf("%d: got %d tokens, want %d", tt.line, len(tokens), len(tt.tokens))
			continue Tests
		}
		for i := range tokens {
			if !tokens[i].equal(&tt.tokens[i]) {
				t.Errorf("%d: token %d: got %v, want %v", tt.line, i, &tokens[i], &tt.tokens[i])
			}
		}
	}
}

func TestLexErrors(t *testing.T) {
	for _, tt := range []struct {
		line int
		in   string
		want string
	}{
		{line(), "tru", "Unknown literal value: tru"},
		{line(), "nul ", "Unknown literal value: nul"},
		{line(), "12x", "Unknown literal value: 12x"},
		{line(), "1.2.3", "Unknown literal value: 1.2.3"},
		{line(), `"\x"`, `Illegal escape sequence: \x`},
		{line(), `"\uzzzz"`, `Illegal escape sequence: \uzzzz`},
		{line(), `"\u00g0"`, `Illegal escape sequence: \u00g0`},
		{line(), `"abc`, "Unterminated string"},
		{line(), `"abc\`, "Unterminated string"},
		{line(), `"abc\u00`, "Unterminated string"},
	} {
		_, err := lexString(tt.in)
		if diff := errdiff.Substring(err, tt.want); diff != "" {
			t.Errorf("%d: %s", tt.line, diff)
		}
	}
}

func TestLexLocations(t *testing.T) {
	// Locations are 1's based; \r\n counts as a single line break.
	tokens, err := lexString("[1,\r\n2]")
	if err != nil {
		t.Fatal(err)
	}
	want := []Location{
		{Index: 1, Line: 1, Col: 1}, // [
		{Index: 2, Line: 1, Col: 2}, // 1
		{Index: 3, Line: 1, Col: 3}, // ,
		{Index: 6, Line: 2, Col: 1}, // 2
		{Index: 7, Line: 2, Col: 2}, // ]
	}
	var got []Location
	for i := range tokens {
		got = append(got, tokens[i].loc)
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("locations (-got +want):\n%s", diff)
	}
}

func TestLexLiteralErrorLocation(t *testing.T) {
	// The error points at the start of the offending literal, even when
	// it is flushed by the following character.
	_, err := lexString("{\n  \"k\" tru\n}")
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("got %v, want a *SyntaxError", err)
	}
	if se.Message != "Unknown literal value: tru" {
		t.Errorf("got message %q, want %q", se.Message, "Unknown literal value: tru")
	}
	if want := (Location{Index: 9, Line: 2, Col: 7}); se.Location != want {
		t.Errorf("got location %+v, want %+v", se.Location, want)
	}
}

func TestLexFlushString(t *testing.T) {
	var l lexer
	l.reset()
	var tokens []token
	push := func(s string) {
		for _, c := range s {
			toks, err := l.pushChar(c)
			if err != nil {
				t.Fatal(err)
			}
			tokens = append(tokens, toks...)
		}
	}

	push(`"Hel`)
	tokens = append(tokens, l.flushString()...)
	// Nothing new has accumulated, so a second flush emits nothing.
	tokens = append(tokens, l.flushString()...)
	push(`lo"`)

	want := []token{
		T(tStartString),
		S(tStringChunk, "Hel"),
		S(tEndString, "lo"),
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i := range tokens {
		if !tokens[i].equal(&want[i]) {
			t.Errorf("token %d: got %v, want %v", i, &tokens[i], &want[i])
		}
	}
}

func TestLexReset(t *testing.T) {
	var l lexer
	l.reset()
	if _, err := l.pushChar('x'); err != nil {
		t.Fatal(err)
	}
	l.reset()
	toks, err := l.close()
	if err != nil {
		t.Fatalf("close after reset: %v", err)
	}
	if len(toks) != 0 {
		t.Errorf("got %d tokens after reset, want 0", len(toks))
	}
	if (l.loc != Location{Line: 1}) {
		t.Errorf("got location %+v after reset, want line 1", l.loc)
	}
}
