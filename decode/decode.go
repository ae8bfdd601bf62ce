// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package decode implements a standards-compliant decoder for complete JSON
// documents. It accepts exactly the grammar of RFC 8259: comments, trailing
// commas, and unquoted names are rejected.
//
// Decode reports an error if the input is empty, is not valid JSON, or has
// non-whitespace text following the first value:
//
//	v, err := decode.Decode(`{"a": [1, 2.5, "x"]}`)
//	if err != nil {
//	   log.Fatalf("Decode: %v", err)
//	}
//
// In case of error, the concrete type of the error is *decode.SyntaxError.
package decode

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/creachadair/jpart/ast"
	"github.com/creachadair/jpart/internal/escape"

	"go4.org/mem"
)

var (
	// ErrEmptyInput is reported when the input contains no value.
	ErrEmptyInput = errors.New("empty input")

	// ErrExtraInput is reported when a complete value is followed by
	// additional non-whitespace input.
	ErrExtraInput = errors.New("extra input after value")

	// ErrTooDeep is reported when the nesting depth of the input exceeds the
	// limit set by a Decoder.
	ErrTooDeep = errors.New("nesting depth limit exceeded")
)

// A Decoder decodes complete JSON documents. The zero value is ready for use
// and imposes no limit on nesting depth.
type Decoder struct {
	// If positive, arrays and objects nested more deeply than this are
	// rejected with ErrTooDeep.
	MaxDepth int
}

// Decode decodes a single JSON value from src using a zero Decoder.
func Decode(src string) (ast.Value, error) { return Decoder{}.Decode(src) }

// Decode decodes a single JSON value from src. Whitespace may surround the
// value, but any other trailing text is reported as ErrExtraInput.
func (d Decoder) Decode(src string) (_ ast.Value, err error) {
	p := &parser{src: src, s: NewScanner(src), maxDepth: d.MaxDepth}
	defer p.recoverSyntaxError(&err)

	if !p.s.Next() {
		if err := p.s.Err(); err != nil {
			p.scanFailed(err)
		}
		p.syntaxError(ErrEmptyInput, "%v", ErrEmptyInput)
	}
	v := p.parseElement(1)
	if p.s.Next() || p.s.Err() != nil {
		p.syntaxErrorAt(p.s.Span().Pos, ErrExtraInput, "%v", ErrExtraInput)
	}
	return v, nil
}

// DecodeString decodes a single quoted JSON string literal, including its
// enclosing quotation marks. No other text may surround the literal.
func DecodeString(quoted string) (string, error) {
	s := NewScanner(quoted)
	if !s.Next() || s.Token() != String || s.Span() != (Span{Pos: 0, End: len(quoted)}) {
		pos := s.Span().End
		cause := s.Err()
		if cause == nil {
			cause = errors.New("not a string literal")
		}
		return "", &SyntaxError{
			Offset:   pos,
			Location: LineColOf(quoted, pos),
			Message:  cause.Error(),
			err:      cause,
		}
	}
	return unquote(s.Text())
}

// parser is a recursive-descent JSON parser over a token stream.
// Syntax errors are reported by panicking with a *SyntaxError, which is
// recovered by Decode.
type parser struct {
	src      string
	s        *Scanner
	maxDepth int
}

func (p *parser) recoverSyntaxError(errp *error) {
	if serr := recover(); serr != nil {
		err, ok := serr.(*SyntaxError)
		if !ok {
			panic(serr)
		}
		*errp = err
	}
}

// parseElement consumes a single value of any type.
// Precondition: token != Invalid.
func (p *parser) parseElement(depth int) ast.Value {
	switch tok := p.s.Token(); tok {
	case LBrace:
		p.checkDepth(depth)
		return p.parseMembers(depth)
	case LSquare:
		p.checkDepth(depth)
		return p.parseElements(depth)
	case Integer:
		return p.integer(p.s.Text())
	case Number:
		return p.number(p.s.Text())
	case String:
		text, err := unquote(p.s.Text())
		if err != nil {
			p.syntaxError(err, "invalid string: %v", err)
		}
		return ast.String(text)
	case True, False:
		return ast.Bool(tok == True)
	case Null:
		return ast.Null
	case RBrace, RSquare, Comma, Colon:
		p.syntaxError(nil, "unexpected %v", tok)
	default:
		p.syntaxError(nil, "unknown token %v", tok)
	}
	panic("unreachable")
}

// parseMembers consumes zero or more key:value object members.
// Precondition: token == LBrace.
// Postcondition: token == RBrace.
func (p *parser) parseMembers(depth int) ast.Object {
	var b ast.Builder
	if tok := p.advance(RBrace, String); tok == RBrace {
		return b.Object() // end of object
	}
	for {
		// Parse a single member: "key": value
		key, err := unquote(p.s.Text())
		if err != nil {
			p.syntaxError(err, "invalid key: %v", err)
		}
		p.advance(Colon)
		p.advance()
		b.Set(key, p.parseElement(depth+1))

		// Check whether we have more members (",") or are done ("}").
		if tok := p.advance(RBrace, Comma); tok == RBrace {
			return b.Object()
		}
		p.advance(String) // advance to next key
	}
}

// parseElements consumes zero or more comma-separated array values.
// Precondition: token == LSquare.
// Postcondition: token == RSquare.
func (p *parser) parseElements(depth int) ast.Array {
	arr := ast.Array{}
	if tok := p.advance(); tok == RSquare {
		return arr // end of array
	}
	for {
		arr = append(arr, p.parseElement(depth+1))
		if tok := p.advance(RSquare, Comma); tok == RSquare {
			return arr
		}
		p.advance()
	}
}

func (p *parser) integer(text string) ast.Value {
	z, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		return ast.Int(z)
	} else if errors.Is(err, strconv.ErrRange) {
		return p.number(text) // too large for an int64
	}
	p.syntaxError(err, "invalid integer %q", text)
	panic("unreachable")
}

func (p *parser) number(text string) ast.Value {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		p.syntaxError(err, "invalid number %q", text)
	}
	return ast.Float(f)
}

func (p *parser) checkDepth(depth int) {
	if p.maxDepth > 0 && depth > p.maxDepth {
		p.syntaxError(ErrTooDeep, "%v (max %d)", ErrTooDeep, p.maxDepth)
	}
}

// advance reads the next token, which must be one of tokens if any are given.
func (p *parser) advance(tokens ...Token) Token {
	if !p.s.Next() {
		if err := p.s.Err(); err != nil {
			p.scanFailed(err)
		}
		p.syntaxErrorAt(len(p.src), nil, "%s", tokLabel(tokens, "end of input"))
	}
	tok := p.s.Token()
	if len(tokens) != 0 && !slices.Contains(tokens, tok) {
		p.syntaxError(nil, "%s", tokLabel(tokens, tok))
	}
	return tok
}

// scanFailed reports a lexical error from the scanner.
func (p *parser) scanFailed(err error) {
	var pe posError
	if errors.As(err, &pe) {
		p.syntaxErrorAt(pe.pos, err, "%v", pe.err)
	}
	p.syntaxError(err, "%v", err)
}

func (p *parser) syntaxError(err error, msg string, args ...any) {
	p.syntaxErrorAt(p.s.Span().Pos, err, msg, args...)
}

func (p *parser) syntaxErrorAt(pos int, err error, msg string, args ...any) {
	panic(&SyntaxError{
		Offset:   pos,
		Location: LineColOf(p.src, pos),
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	})
}

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []Token, got any) string {
	if len(tokens) == 0 {
		return fmt.Sprintf("expected value, got %v", got)
	}
	var exp string
	if len(tokens) == 1 {
		exp = tokens[0].String()
	} else {
		last := len(tokens) - 1
		ss := make([]string, last)
		for i, tok := range tokens[:last] {
			ss[i] = tok.String()
		}
		exp = strings.Join(ss, ", ") + " or " + tokens[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}

// unquote decodes a quoted string token.
func unquote(text string) (string, error) {
	dec, err := escape.Unquote(mem.S(text[1 : len(text)-1]))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// SyntaxError is the concrete type of errors reported by the decoder.
type SyntaxError struct {
	Offset   int     // byte offset of the error in the input, 0-based
	Location LineCol // line and column of the error
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
