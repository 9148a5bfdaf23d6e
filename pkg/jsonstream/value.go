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
	"strconv"
	"strings"
)

// A Value is one node of a decoded JSON tree.  It is one of Null, Bool,
// Number, String, *Array, or *Object; consumers are expected to dispatch
// with a type switch.  Array and Object nodes are mutated in place while
// parsing; the rest are immutable.
type Value interface {
	isValue()
	// String returns a compact JSON-like rendering of the value.  It is
	// meant for display and tests, not for machine consumption: string
	// escaping follows strconv.Quote, which is a superset of JSON's.
	String() string
}

// Null is the JSON null value.
type Null struct{}

func (Null) isValue()       {}
func (Null) String() string { return "null" }

// Bool is a JSON boolean.
type Bool bool

func (Bool) isValue() {}
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Number is a JSON number.  All numbers are 64-bit floats.
type Number float64

func (Number) isValue() {}
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// String is a JSON string.
type String string

func (String) isValue() {}
func (s String) String() string {
	return strconv.Quote(string(s))
}

// An Array is an ordered sequence of values.
type Array struct {
	elems []Value
}

func (*Array) isValue() {}

// NewArray returns an array holding elems.
func NewArray(elems ...Value) *Array {
	return &Array{elems: elems}
}

// Len returns the number of elements in a.
func (a *Array) Len() int { return len(a.elems) }

// At returns the element at index i, or nil if i is out of range.
func (a *Array) At(i int) Value {
	if i < 0 || i >= len(a.elems) {
		return nil
	}
	return a.elems[i]
}

// Set stores v at index i, extending the array with nulls as needed.
func (a *Array) Set(i int, v Value) {
	for i >= len(a.elems) {
		a.elems = append(a.elems, Null{})
	}
	a.elems[i] = v
}

// truncate drops every element at index n or beyond.
func (a *Array) truncate(n int) {
	if n < len(a.elems) {
		a.elems = a.elems[:n]
	}
}

// Equal reports whether a and b are structurally equal.
func (a *Array) Equal(b *Array) bool { return Equal(a, b) }

func (a *Array) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range a.elems {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// An Object is an insertion-ordered mapping from property names to values.
// Overwriting an existing property keeps its original position.
type Object struct {
	keys []string
	vals map[string]Value
}

func (*Object) isValue() {}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{vals: map[string]Value{}}
}

// Len returns the number of properties in o.
func (o *Object) Len() int { return len(o.keys) }

// Get returns the value of property k.
func (o *Object) Get(k string) (Value, bool) {
	v, ok := o.vals[k]
	return v, ok
}

// Set stores v under property k.
func (o *Object) Set(k string, v Value) *Object {
	if _, ok := o.vals[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.vals[k] = v
	return o
}

// Delete removes property k, if present.
func (o *Object) Delete(k string) {
	if _, ok := o.vals[k]; !ok {
		return
	}
	delete(o.vals, k)
	for i, key := range o.keys {
		if key == k {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the property names of o in insertion order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Equal reports whether o and b are structurally equal, including property
// order.
func (o *Object) Equal(b *Object) bool { return Equal(o, b) }

func (o *Object) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Quote(k))
		sb.WriteByte(':')
		sb.WriteString(o.vals[k].String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Equal reports whether a and b are structurally equal.  Objects compare
// equal only if their properties are in the same insertion order.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bb, ok := b.(Bool)
		return ok && a == bb
	case Number:
		bb, ok := b.(Number)
		return ok && a == bb
	case String:
		bb, ok := b.(String)
		return ok && a == bb
	case *Array:
		bb, ok := b.(*Array)
		if !ok || len(a.elems) != len(bb.elems) {
			return false
		}
		for i := range a.elems {
			if !Equal(a.elems[i], bb.elems[i]) {
				return false
			}
		}
		return true
	case *Object:
		bb, ok := b.(*Object)
		if !ok || len(a.keys) != len(bb.keys) {
			return false
		}
		for i, k := range a.keys {
			if bb.keys[i] != k || !Equal(a.vals[k], bb.vals[k]) {
				return false
			}
		}
		return true
	}
	return false
}

// Native converts v into the corresponding native Go value: nil, bool,
// float64, string, []interface{}, or map[string]interface{}.  Object
// insertion order is not preserved.
func Native(v Value) interface{} {
	switch v := v.(type) {
	case Bool:
		return bool(v)
	case Number:
		return float64(v)
	case String:
		return string(v)
	case *Array:
		out := make([]interface{}, len(v.elems))
		for i, e := range v.elems {
			out[i] = Native(e)
		}
		return out
	case *Object:
		out := make(map[string]interface{}, len(v.keys))
		for _, k := range v.keys {
			out[k] = Native(v.vals[k])
		}
		return out
	}
	return nil
}
