// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpart

import (
	"github.com/creachadair/jpart/ast"
	"github.com/creachadair/jpart/decode"
)

// Options control the behavior of a Parser. A nil *Options is ready for use
// and provides default values as described.
type Options struct {
	// If true, string values are returned as their raw text between the
	// quotation marks, with no escape processing. Truncated strings are
	// returned verbatim, even if they end in the middle of an escape.
	//
	// By default, escapes are decoded. A complete string with an invalid
	// escape is an error, and a truncated string whose text cannot be decoded
	// is reported as the empty string.
	RawStrings bool

	// If true, the keywords true, false, and null must be spelled exactly,
	// or be a truncated prefix of the keyword. By default only the first
	// character of a keyword is examined.
	StrictLiterals bool

	// If positive, arrays and objects nested more deeply than this are
	// rejected with ErrTooDeep. By default depth is not limited.
	MaxDepth int

	// If set, this function is called by Parse when the input has text left
	// over after the first value. It receives the complete input, the value
	// parsed, and the unconsumed text.
	OnExtraToken func(input string, v ast.Value, rest string)
}

func (o *Options) rawStrings() bool     { return o != nil && o.RawStrings }
func (o *Options) strictLiterals() bool { return o != nil && o.StrictLiterals }

func (o *Options) maxDepth() int {
	if o == nil || o.MaxDepth < 0 {
		return 0
	}
	return o.MaxDepth
}

func (o *Options) onExtraToken() func(string, ast.Value, string) {
	if o == nil {
		return nil
	}
	return o.OnExtraToken
}

// A Parser parses possibly-truncated JSON text.
//
// A Parser records the text left over by its most recent call to Parse, so
// it is not safe for concurrent use by multiple goroutines without external
// synchronization. Decode does not modify the parser, and may be called
// concurrently.
type Parser struct {
	raw      bool
	literals bool
	dec      decode.Decoder
	onExtra  func(string, ast.Value, string)

	rest string // from the last call to Parse
}

// New constructs a new Parser with the given options.
func New(opts *Options) *Parser {
	return &Parser{
		raw:      opts.rawStrings(),
		literals: opts.strictLiterals(),
		dec:      decode.Decoder{MaxDepth: opts.maxDepth()},
		onExtra:  opts.onExtraToken(),
	}
}

// Strict reports whether p decodes string escapes.
func (p *Parser) Strict() bool { return !p.raw }

// A Result is a value parsed from the front of an input, together with the
// text of the input that was not consumed.
type Result struct {
	Value ast.Value
	Rest  string // a suffix of the input, not trimmed
}

// Extra reports whether r has unconsumed text.
func (r Result) Extra() bool { return r.Rest != "" }

// Decode parses text and returns the value determined by the longest prefix
// of text that is a possibly-truncated JSON value, along with the remainder.
//
// If text is empty, the value is an empty Object. If text is a complete JSON
// document, the result is the decoded document with no remainder. Otherwise,
// truncated arrays, objects, strings, numbers, and keywords are completed
// with the values that can be determined from the available text.
//
// In case of error, the concrete type of the error is *DecodeError.
func (p *Parser) Decode(text string) (Result, error) {
	if text == "" {
		return Result{Value: ast.Object{}}, nil
	}
	v, err := p.dec.Decode(text)
	if err == nil {
		return Result{Value: v}, nil
	}

	r := &recovery{p: p, input: text, cause: err}
	v, rest, err := r.value(text, 0)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v, Rest: rest}, nil
}

// Parse parses text as Decode does, and returns only the value.
// The unconsumed remainder of text is recorded, and may be recovered by
// calling Remaining. If the remainder is not empty and an OnExtraToken
// function is set, Parse calls it once before returning.
func (p *Parser) Parse(text string) (ast.Value, error) {
	res, err := p.Decode(text)
	if err != nil {
		return nil, err
	}
	p.rest = res.Rest
	if p.onExtra != nil && res.Extra() {
		p.onExtra(text, res.Value, res.Rest)
	}
	return res.Value, nil
}

// Remaining returns the text left unconsumed by the most recent successful
// call to Parse, or "" if there was none.
func (p *Parser) Remaining() string { return p.rest }

// Parse parses text with default options.
// See [Parser.Decode] for a description of the result.
func Parse(text string) (ast.Value, error) { return New(nil).Parse(text) }

// MustParse parses text with default options, and panics if parsing fails.
func MustParse(text string) ast.Value {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}
