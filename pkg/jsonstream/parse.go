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

// This file implements the Parser, which consumes the lexer's tokens and
// materializes the value tree.  The parser keeps a stack of frames describing
// the path from the root to the container currently being populated.  The
// bottom of the stack is a synthetic length-1 array holding the root slot,
// which lets "set the root" reuse the ordinary array logic.

// A piece is the next lexical atom expected inside a container.
type piece int

const (
	atPropertyName piece = iota
	atColon
	atValue
	atComma
)

// A frame is one entry of the parser's context stack.
type frame interface {
	isFrame()
}

// An arrayFrame tracks an array being populated.  key is the index the next
// value will land in.
type arrayFrame struct {
	arr    *Array
	key    int
	expect piece
	empty  bool
}

// An objectFrame tracks an object being populated.  key is the most recently
// consumed property name; seen holds every name whose value was committed,
// each once.
type objectFrame struct {
	obj    *Object
	key    string
	expect piece
	empty  bool
	seen   map[string]bool
}

// A stringFrame accumulates the contents of a string across chunk
// boundaries.
type stringFrame struct {
	buf []byte
}

func (*arrayFrame) isFrame()  {}
func (*objectFrame) isFrame() {}
func (*stringFrame) isFrame() {}

// A Parser incrementally decodes a stream of JSON text chunks into a live
// value tree.  The root value is observable at any point during parsing via
// Value; the latest pushed chunk is always reflected.  A Parser must not be
// used from multiple goroutines and must not be copied.
type Parser struct {
	opts Options

	lex         lexer
	root        *Array // synthetic length-1 array holding the root slot
	stack       []frame
	events      []Event
	placeholder bool
	started     bool
	closed      bool
	err         error
}

// New returns an empty parser.  A nil opts means the default options.
func New(opts *Options) *Parser {
	p := &Parser{}
	if opts != nil {
		p.opts = *opts
	}
	p.Reset()
	return p
}

// Reset returns p to its constructed state, dropping the tree, any pending
// error, and any placeholder.
func (p *Parser) Reset() {
	p.lex.reset()
	p.root = NewArray(Null{})
	p.stack = append(p.stack[:0], &arrayFrame{arr: p.root, expect: atValue, empty: true})
	p.events = nil
	p.placeholder = false
	p.started = false
	p.closed = false
	p.err = nil
}

// SetPlaceholder installs v as the initial root value.  Containers in v that
// the input also produces are reused, so branches the input has not reached
// yet stay visible; when a container's closing bracket is seen, placeholder
// branches the input never touched are trimmed from it.  SetPlaceholder
// fails once any input has been consumed.
func (p *Parser) SetPlaceholder(v Value) error {
	if p.started {
		return ErrAlreadyParsing
	}
	p.root.Set(0, v)
	p.placeholder = true
	return nil
}

// Value returns the current root value.  It is valid at any point during
// parsing; the caller may read the tree between calls to Push but must not
// mutate its containers.
func (p *Parser) Value() Value {
	return p.root.At(0)
}

// TakeEvents drains and returns the events accumulated since the last call.
// It fails unless Options.TrackEvents was set.
func (p *Parser) TakeEvents() ([]Event, error) {
	if !p.opts.TrackEvents {
		return nil, ErrEventsDisabled
	}
	evs := p.events
	p.events = nil
	return evs, nil
}

// Push parses one more chunk of input.  Pushing the input in any number of
// chunks leaves the parser in the same state as pushing it whole.
func (p *Parser) Push(text string) error {
	if p.closed {
		return ErrClosed
	}
	if p.err != nil {
		return p.err
	}
	for _, c := range text {
		p.started = true
		toks, err := p.lex.pushChar(c)
		if err != nil {
			p.err = err
			return err
		}
		for i := range toks {
			if err := p.token(&toks[i]); err != nil {
				p.err = err
				return err
			}
		}
	}
	return p.surfaceIncomplete()
}

// Close finalizes the parse.  It flushes any trailing literal and fails if a
// string, array, or object is still open.
func (p *Parser) Close() error {
	if p.closed {
		return ErrClosed
	}
	if p.err != nil {
		return p.err
	}
	toks, err := p.lex.close()
	if err != nil {
		// Surface what arrived of the open string before failing, so
		// Value reflects the whole stream.
		p.surfaceIncomplete()
		p.err = err
		return err
	}
	for i := range toks {
		if err := p.token(&toks[i]); err != nil {
			p.err = err
			return err
		}
	}
	if len(p.stack) > 1 {
		msg := "Unterminated array"
		if _, ok := p.stack[len(p.stack)-1].(*objectFrame); ok {
			msg = "Unterminated object"
		}
		p.err = &SyntaxError{Message: msg, Location: p.lex.loc}
		return p.err
	}
	p.closed = true
	return nil
}

// token dispatches one lexer token against the top of the stack.
func (p *Parser) token(t *token) error {
	top := p.stack[len(p.stack)-1]
	switch t.code {
	case tLiteral:
		return p.setValue(t.lit, t)

	case tStartObject:
		obj, _ := p.reusableSlot().(*Object)
		if obj == nil {
			obj = NewObject()
		}
		if err := p.setValue(obj, t); err != nil {
			return err
		}
		p.stack = append(p.stack, &objectFrame{
			obj:    obj,
			expect: atPropertyName,
			empty:  true,
			seen:   map[string]bool{},
		})
		return nil

	case tStartArray:
		arr, _ := p.reusableSlot().(*Array)
		if arr == nil {
			arr = NewArray()
		}
		if err := p.setValue(arr, t); err != nil {
			return err
		}
		p.stack = append(p.stack, &arrayFrame{arr: arr, expect: atValue, empty: true})
		return nil

	case tEndObject:
		f, ok := top.(*objectFrame)
		want := atComma
		if ok && f.empty {
			want = atPropertyName
		}
		if !ok || f.expect != want {
			return p.unexpectedToken(t)
		}
		p.closeContainer()
		return nil

	case tEndArray:
		f, ok := top.(*arrayFrame)
		if !ok || len(p.stack) == 1 || (!f.empty && f.expect == atValue) {
			return p.unexpectedToken(t)
		}
		p.closeContainer()
		return nil

	case tColon:
		f, ok := top.(*objectFrame)
		if !ok || f.expect != atColon {
			return p.unexpectedToken(t)
		}
		f.expect = atValue
		return nil

	case tComma:
		if len(p.stack) == 1 {
			// The root holds exactly one value.
			return p.unexpectedToken(t)
		}
		switch f := top.(type) {
		case *arrayFrame:
			if f.expect != atComma {
				return p.unexpectedToken(t)
			}
			f.key++
			f.expect = atValue
		case *objectFrame:
			if f.expect != atComma {
				return p.unexpectedToken(t)
			}
			f.seen[f.key] = true
			f.expect = atPropertyName
		default:
			return p.unexpectedToken(t)
		}
		return nil

	case tStartString:
		switch f := top.(type) {
		case *arrayFrame:
			if f.expect != atValue {
				return p.unexpectedToken(t)
			}
		case *objectFrame:
			if f.expect != atValue && f.expect != atPropertyName {
				return p.unexpectedToken(t)
			}
		default:
			return p.unexpectedToken(t)
		}
		p.stack = append(p.stack, &stringFrame{})
		return nil

	case tStringChunk:
		f, ok := top.(*stringFrame)
		if !ok {
			return p.unexpectedToken(t)
		}
		f.buf = append(f.buf, t.text...)
		return nil

	case tEndString:
		f, ok := top.(*stringFrame)
		if !ok {
			return p.unexpectedToken(t)
		}
		f.buf = append(f.buf, t.text...)
		s := string(f.buf)
		p.stack = p.stack[:len(p.stack)-1]
		if of, ok := p.stack[len(p.stack)-1].(*objectFrame); ok && of.expect == atPropertyName {
			of.key = s
			of.expect = atColon
			return nil
		}
		return p.setValue(String(s), t)
	}
	return p.unexpectedToken(t)
}

// setValue writes v into the slot the top frame designates, advances the
// frame to expect a comma, and records the event.
func (p *Parser) setValue(v Value, t *token) error {
	switch f := p.stack[len(p.stack)-1].(type) {
	case *arrayFrame:
		if f.expect != atValue {
			return p.unexpectedValue(t)
		}
		f.arr.Set(f.key, v)
		f.expect = atComma
		f.empty = false
	case *objectFrame:
		if f.expect != atValue {
			return p.unexpectedValue(t)
		}
		f.obj.Set(f.key, v)
		f.expect = atComma
		f.empty = false
	default:
		return p.unexpectedValue(t)
	}
	switch v.(type) {
	case *Array, *Object:
		p.emit(EventBegin)
	default:
		p.emit(EventSet)
	}
	return nil
}

// reusableSlot returns the existing value in the slot the next value will
// land in, but only when a placeholder overlay is active.  Descending into a
// compatible placeholder container reuses it so its untouched branches stay
// visible.
func (p *Parser) reusableSlot() Value {
	if !p.placeholder {
		return nil
	}
	switch f := p.stack[len(p.stack)-1].(type) {
	case *arrayFrame:
		return f.arr.At(f.key)
	case *objectFrame:
		if v, ok := f.obj.Get(f.key); ok {
			return v
		}
	}
	return nil
}

// closeContainer commits the final element or property of the top frame,
// trims unvisited placeholder branches, and pops the frame.
func (p *Parser) closeContainer() {
	switch f := p.stack[len(p.stack)-1].(type) {
	case *arrayFrame:
		if !f.empty {
			f.key++
		}
		if p.placeholder {
			f.arr.truncate(f.key)
		}
	case *objectFrame:
		if !f.empty {
			f.seen[f.key] = true
		}
		if p.placeholder {
			for _, k := range f.obj.Keys() {
				if !f.seen[k] {
					f.obj.Delete(k)
				}
			}
		}
	}
	p.stack = p.stack[:len(p.stack)-1]
	p.emit(EventEnd)
}

// surfaceIncomplete runs at chunk boundaries.  If a string value is in
// flight, its contents so far (plus the configured suffix) are written into
// the parent's slot without advancing the parse or emitting events; the next
// token overwrites the slot through the normal path.  A string that would
// become a property name is left invisible.
func (p *Parser) surfaceIncomplete() error {
	if p.opts.IncompleteStrings == OmitIncomplete {
		return nil
	}
	for _, t := range p.lex.flushString() {
		t := t
		if err := p.token(&t); err != nil {
			return err
		}
	}
	f, ok := p.stack[len(p.stack)-1].(*stringFrame)
	if !ok {
		return nil
	}
	s := string(f.buf)
	if p.opts.IncompleteStrings == IncludeIncompleteWithSuffix {
		s += p.opts.IncompleteSuffix
	}
	switch pf := p.stack[len(p.stack)-2].(type) {
	case *arrayFrame:
		pf.arr.Set(pf.key, String(s))
	case *objectFrame:
		if pf.expect == atPropertyName {
			return nil
		}
		pf.obj.Set(pf.key, String(s))
	}
	return nil
}

// path returns the address of the slot the top frame designates.  The
// synthetic root frame contributes nothing, so the root slot's path is
// empty.
func (p *Parser) path() Path {
	var path Path
	for _, f := range p.stack[1:] {
		switch f := f.(type) {
		case *arrayFrame:
			path = append(path, Index(f.key))
		case *objectFrame:
			path = append(path, Key(f.key))
		}
	}
	return path
}

func (p *Parser) emit(k EventKind) {
	if !p.opts.TrackEvents {
		return
	}
	p.events = append(p.events, Event{Kind: k, Path: p.path()})
}

func (p *Parser) unexpectedToken(t *token) error {
	return &SyntaxError{
		Message:  `Unexpected token: "` + t.code.String() + `"`,
		Location: t.loc,
	}
}

func (p *Parser) unexpectedValue(t *token) error {
	return &SyntaxError{Message: "Unexpected value", Location: t.loc}
}
