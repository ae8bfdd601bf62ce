// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package decode

import (
	"fmt"
	"strings"

	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Integer              // number: integer with no fraction or exponent
	Number               // number with fraction and/or exponent
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Integer: "integer",
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Scanner reads lexical tokens from a string. Each call to Next advances
// the scanner to the next token. The text of each token is a substring of the
// input, so scanning does not copy.
type Scanner struct {
	src string
	tok Token
	err error

	pos, end int // start and end offsets of current token
}

// NewScanner constructs a new lexical scanner that consumes src.
func NewScanner(src string) *Scanner { return &Scanner{src: src} }

// Next advances s to the next token of the input and reports whether a token
// is available. At the end of input, or after a lexical error, Next returns
// false. Use Err to distinguish these cases.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	s.tok = Invalid
	s.pos = skipSpace(s.src, s.end)
	s.end = s.pos
	if s.pos == len(s.src) {
		return false
	}

	ch := s.src[s.pos]

	// Handle punctuation.
	if t, ok := selfDelim(ch); ok {
		s.end++
		s.tok = t
		return true
	}

	// Handle numbers.
	if isNumStart(ch) {
		return s.scanNumber()
	}

	// Handle string values.
	if ch == '"' {
		return s.scanString()
	}

	// Handle constants: true, false, null
	var want string
	switch ch {
	case 't':
		s.tok, want = True, "true"
	case 'f':
		s.tok, want = False, "false"
	case 'n':
		s.tok, want = Null, "null"
	default:
		return s.failf(s.pos, "unexpected %q", ch)
	}
	s.end = scanWhile(s.src, s.pos, isNameByte)
	if got := mem.S(s.src[s.pos:s.end]); !got.EqualString(want) {
		return s.failf(s.pos, "unknown constant %q", got.StringCopy())
	}
	return true
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the lexical error that stopped the scanner, or nil if none.
func (s *Scanner) Err() error { return s.err }

// Text returns the undecoded text of the current token.
func (s *Scanner) Text() string { return s.src[s.pos:s.end] }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

func (s *Scanner) scanString() bool {
	src := s.src
	for i := s.pos + 1; i < len(src); i++ {
		switch ch := src[i]; {
		case ch == '"':
			s.end = i + 1
			s.tok = String
			return true
		case ch == '\\':
			i++
			if i == len(src) {
				break
			}
			switch src[i] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
			case 'u':
				if !isHex4(src[i+1:]) {
					return s.failf(i, "invalid Unicode escape")
				}
				i += 4
			default:
				return s.failf(i, "invalid %q after escape", src[i])
			}
		case ch < ' ':
			return s.failf(i, "unescaped control %q", ch)
		}
	}
	return s.failf(len(src), "unterminated string")
}

func (s *Scanner) scanNumber() bool {
	src := s.src
	i := s.pos
	if src[i] == '-' {
		// If there is a leading sign, we need at least one digit.
		i++
		if i == len(src) || !isDigit(src[i]) {
			return s.failf(i, "want digit after sign")
		}
	}

	// Consume the integer part, and check for extra leading zeroes, which are
	// disallowed by the JSON grammar. That is: 0.12 is OK, 01.2 is not.
	start := i
	i = scanWhile(src, i, isDigit)
	if src[start] == '0' && i-start > 1 {
		return s.failf(start, "extra leading zeroes")
	}
	s.tok = Integer

	// If a decimal point follows, consume a fractional part.
	if i < len(src) && src[i] == '.' {
		j := scanWhile(src, i+1, isDigit)
		if j == i+1 {
			return s.failf(j, "no digits after decimal point")
		}
		i = j
		s.tok = Number
	}

	// If an exponent follows, consume it.
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		i++
		if i < len(src) && (src[i] == '+' || src[i] == '-') {
			i++
		}
		j := scanWhile(src, i, isDigit)
		if j == i {
			return s.failf(j, "missing exponent digits")
		}
		i = j
		s.tok = Number
	}
	s.end = i
	return true
}

type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }

func (s *Scanner) failf(pos int, msg string, args ...any) bool {
	s.tok = Invalid
	s.end = pos
	s.err = posError{pos, fmt.Errorf(msg, args...)}
	return false
}

func skipSpace(src string, i int) int { return scanWhile(src, i, isSpace) }

// scanWhile returns the offset of the first byte of src at or after i that
// does not satisfy f, or len(src).
func scanWhile(src string, i int, f func(byte) bool) int {
	for i < len(src) && f(src[i]) {
		i++
	}
	return i
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNameByte(ch byte) bool { return ch >= 'a' && ch <= 'z' }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isHex4(s string) bool {
	return len(s) >= 4 && isHexDigit(s[0]) && isHexDigit(s[1]) && isHexDigit(s[2]) && isHexDigit(s[3])
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Token, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
