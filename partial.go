// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpart

import (
	"fmt"
	"strings"

	"github.com/creachadair/jpart/ast"
	"github.com/creachadair/jpart/decode"
)

// A recovery holds the state of a single attempt to parse a truncated value.
// Each step consumes a prefix of its input string and returns the value it
// parsed together with the unconsumed suffix.
type recovery struct {
	p     *Parser
	input string // the complete input
	cause error  // the error from the complete-document decoder
}

// A lead classifies the first character of a value.
type lead int

const (
	leadInvalid lead = iota // not the start of any value
	leadSpace               // whitespace preceding a value
	leadArray               // "["
	leadObject              // "{"
	leadString              // `"`
	leadBool                // t, T, f, F
	leadNull                // n
	leadNumber              // digit, "-", or "."
)

func classify(c byte) lead {
	switch c {
	case ' ', '\t', '\r', '\n':
		return leadSpace
	case '[':
		return leadArray
	case '{':
		return leadObject
	case '"':
		return leadString
	case 't', 'T', 'f', 'F':
		return leadBool
	case 'n':
		return leadNull
	case '-', '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return leadNumber
	}
	return leadInvalid
}

// value parses a single value from the front of s, which is nested inside
// depth arrays or objects.
func (r *recovery) value(s string, depth int) (ast.Value, string, error) {
	if s == "" {
		return nil, "", r.fail(s, nil, "unexpected end of input")
	}
	switch classify(s[0]) {
	case leadSpace:
		return r.value(trimSpace(s), depth)
	case leadArray:
		return r.array(s, depth+1)
	case leadObject:
		return r.object(s, depth+1)
	case leadString:
		return r.quoted(s)
	case leadBool:
		if s[0] == 't' || s[0] == 'T' {
			return r.literal(s, "true", ast.Bool(true))
		}
		return r.literal(s, "false", ast.Bool(false))
	case leadNull:
		return r.literal(s, "null", ast.Null)
	case leadNumber:
		return r.number(s)
	case leadInvalid:
		return nil, "", r.fail(s, ErrUnexpectedToken, "unexpected %q", s[0])
	default:
		panic(fmt.Sprintf("unhandled lead %d", classify(s[0])))
	}
}

// array parses an array beginning at s[0] == '['. If the input ends before
// the closing bracket, the elements parsed so far are returned.
func (r *recovery) array(s string, depth int) (ast.Value, string, error) {
	if err := r.checkDepth(s, depth); err != nil {
		return nil, "", err
	}
	arr := ast.Array{}
	s = trimSpace(s[1:])
	for {
		if s == "" {
			return arr, "", nil // truncated
		} else if s[0] == ']' {
			return arr, s[1:], nil
		}

		elt, rest, err := r.value(s, depth)
		if err != nil {
			return nil, "", err
		}
		arr = append(arr, elt)

		s = trimSpace(rest)
		if s == "" || s[0] == ']' {
			continue
		} else if s[0] != ',' {
			return nil, "", r.fail(s, ErrMissingSeparator, "expected %q or %q after array element, got %q", ',', ']', s[0])
		}
		s = trimSpace(s[1:])
	}
}

// object parses an object beginning at s[0] == '{'. If the input ends before
// the closing brace, the members parsed so far are returned. A key with no
// value is assigned null.
func (r *recovery) object(s string, depth int) (ast.Value, string, error) {
	if err := r.checkDepth(s, depth); err != nil {
		return nil, "", err
	}
	var obj ast.Builder
	s = trimSpace(s[1:])
	for {
		if s == "" {
			return obj.Object(), "", nil // truncated
		} else if s[0] == '}' {
			return obj.Object(), s[1:], nil
		}

		kv, rest, err := r.value(s, depth)
		if err != nil {
			return nil, "", err
		}
		key := keyString(kv)

		// A key may be followed by the end of input or the object.
		s = trimSpace(rest)
		if s == "" || s[0] == '}' {
			obj.Set(key, ast.Null)
			continue
		} else if s[0] != ':' {
			return nil, "", r.fail(s, ErrMissingColon, "expected %q after object key, got %q", ':', s[0])
		}

		// A colon may be followed by the end of input, or the end of the member.
		s = trimSpace(s[1:])
		if s == "" || s[0] == ',' || s[0] == '}' {
			obj.Set(key, ast.Null)
			if s != "" && s[0] == ',' {
				s = trimSpace(s[1:])
			}
			continue
		}

		val, rest, err := r.value(s, depth)
		if err != nil {
			return nil, "", err
		}
		obj.Set(key, val)

		s = trimSpace(rest)
		if s == "" || s[0] == '}' {
			continue
		} else if s[0] != ',' {
			return nil, "", r.fail(s, ErrMissingSeparator, "expected %q or %q after object value, got %q", ',', '}', s[0])
		}
		s = trimSpace(s[1:])
	}
}

// keyString returns the string form of an object key. A well-formed key is
// a string; any other value is rendered as JSON text.
func keyString(v ast.Value) string {
	if s, ok := v.(ast.String); ok {
		return string(s)
	}
	return v.JSON()
}

func (r *recovery) checkDepth(s string, depth int) error {
	if limit := r.p.dec.MaxDepth; limit > 0 && depth > limit {
		return r.fail(s, ErrTooDeep, "%v (max %d)", ErrTooDeep, limit)
	}
	return nil
}

// fail constructs a hard error for a failure at the start of s, which must be
// a suffix of the input.
func (r *recovery) fail(s string, reason error, msg string, args ...any) error {
	pos := len(r.input) - len(s)
	return &DecodeError{
		Message:  fmt.Sprintf(msg, args...),
		Input:    r.input,
		Offset:   pos,
		Location: decode.LineColOf(r.input, pos),
		reason:   reason,
		cause:    r.cause,
	}
}

func trimSpace(s string) string { return strings.TrimLeft(s, " \t\r\n") }
