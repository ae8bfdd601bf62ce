// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines the values produced by parsing JSON text, whether the
// text was complete or truncated.
//
// A Value is one of Null, Bool, Int, Float, String, Array, or Object. Object
// members preserve the order in which their keys first appeared; assigning to
// an existing key replaces its value in place.
package ast

import (
	"math"
	"strconv"

	"github.com/creachadair/jpart/internal/escape"

	"go4.org/mem"
)

// A Value is an arbitrary JSON value.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string

	appendJSON([]byte) []byte
}

// An Object is an ordered collection of key-value members.
type Object []*Member

// JSON satisfies the Value interface.
func (o Object) JSON() string { return string(o.appendJSON(nil)) }

func (o Object) appendJSON(buf []byte) []byte {
	buf = append(buf, '{')
	for i, m := range o {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = escape.AppendQuote(buf, mem.S(m.Key))
		buf = append(buf, ':')
		buf = m.Value.appendJSON(buf)
	}
	return append(buf, '}')
}

// Find returns the member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Set sets the value of key in o to v. If o already has a member with that
// key, its value is replaced in place; otherwise a new member is added at the
// end.
func (o *Object) Set(key string, v Value) {
	if m := o.Find(key); m != nil {
		m.Value = v
		return
	}
	*o = append(*o, Field(key, v))
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
func Field(key string, val Value) *Member { return &Member{Key: key, Value: val} }

// An Array is a sequence of values.
type Array []Value

// JSON satisfies the Value interface.
func (a Array) JSON() string { return string(a.appendJSON(nil)) }

func (a Array) appendJSON(buf []byte) []byte {
	buf = append(buf, '[')
	for i, v := range a {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = v.appendJSON(buf)
	}
	return append(buf, ']')
}

// A String is a string value. The value is unescaped.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return escape.Quote(string(s)) }

func (s String) appendJSON(buf []byte) []byte { return escape.AppendQuote(buf, mem.S(string(s))) }

// An Int is an integer value.
type Int int64

// JSON satisfies the Value interface.
func (z Int) JSON() string { return strconv.FormatInt(int64(z), 10) }

func (z Int) appendJSON(buf []byte) []byte { return strconv.AppendInt(buf, int64(z), 10) }

// A Float is a floating-point value. A value too large to represent is
// infinite; JSON has no spelling for that, so it encodes as null.
type Float float64

// JSON satisfies the Value interface.
func (f Float) JSON() string { return string(f.appendJSON(nil)) }

func (f Float) appendJSON(buf []byte) []byte {
	if math.IsInf(float64(f), 0) || math.IsNaN(float64(f)) {
		return append(buf, "null"...)
	}
	return strconv.AppendFloat(buf, float64(f), 'g', -1, 64)
}

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

func (b Bool) appendJSON(buf []byte) []byte { return strconv.AppendBool(buf, bool(b)) }

// Null represents the null constant.
var Null Value = nullValue{}

type nullValue struct{}

// JSON satisfies the Value interface.
func (nullValue) JSON() string { return "null" }

func (nullValue) appendJSON(buf []byte) []byte { return append(buf, "null"...) }

func (nullValue) String() string { return "null" }
