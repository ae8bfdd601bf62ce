// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpart

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/jpart/ast"
	"github.com/creachadair/jpart/decode"
	"github.com/creachadair/jpart/internal/escape"

	"go4.org/mem"
)

// quoted parses a string beginning at s[0] == '"'.
//
// If the closing quote is missing, the string is truncated: in raw mode the
// text after the opening quote is returned as-is. Otherwise the text is
// decoded as if it were closed, and if that fails the value is "". A
// truncated string always consumes the rest of the input.
func (r *recovery) quoted(s string) (ast.Value, string, error) {
	if end := closingQuote(s); end >= 0 {
		if r.p.raw {
			return ast.String(s[1:end]), s[end+1:], nil
		}
		text, err := decode.DecodeString(s[:end+1])
		if err != nil {
			return nil, "", r.fail(s, errors.Join(ErrBadString, err), "invalid string: %v", err)
		}
		return ast.String(text), s[end+1:], nil
	}

	content := s[1:]
	if r.p.raw {
		return ast.String(content), "", nil
	} else if escape.IsPartialEscape(mem.S(content)) {
		return ast.String(""), "", nil
	}
	text, err := decode.DecodeString(`"` + content + `"`)
	if err != nil {
		return ast.String(""), "", nil
	}
	return ast.String(text), "", nil
}

// closingQuote returns the offset in s of the quotation mark that ends the
// string opened by s[0], or -1 if there is none. A quote is escaped if it is
// preceded by an odd number of backslashes.
func closingQuote(s string) int {
	for i := 1; i < len(s); {
		j := strings.IndexByte(s[i:], '"')
		if j < 0 {
			return -1
		}
		q := i + j
		n := 0
		for k := q - 1; k > 0 && s[k] == '\\'; k-- {
			n++
		}
		if n%2 == 0 {
			return q
		}
		i = q + 1
	}
	return -1
}

// number parses a number beginning at s[0], which is a digit, "-", or ".".
//
// The number is lexed greedily as an optional sign, digits, an optional
// fraction, and an optional exponent, any of which may be incomplete. An
// incomplete fraction or exponent at the end is discarded. If no digits are
// available, the text of the number is returned as a string.
func (r *recovery) number(s string) (ast.Value, string, error) {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	i = skipDigits(s, i)

	var isFloat bool
	if i < len(s) && s[i] == '.' {
		i = skipDigits(s, i+1)
		isFloat = true
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		i = skipDigits(s, i)
		isFloat = true
	}
	lex, rest := s[:i], s[i:]

	// Drop an exponent with no digits, then a decimal point with no digits.
	num := lex
	if k := strings.IndexAny(num, "eE"); k >= 0 && !hasDigit(num[k+1:]) {
		num = num[:k]
		isFloat = strings.Contains(num, ".")
	}
	if strings.HasSuffix(num, ".") {
		num = num[:len(num)-1]
		isFloat = false
	}
	if !hasDigit(num) {
		return ast.String(lex), "", nil // e.g., "-" or "."
	}

	if !isFloat {
		if z, err := strconv.ParseInt(num, 10, 64); err == nil {
			return ast.Int(z), rest, nil
		} else if !errors.Is(err, strconv.ErrRange) {
			return nil, "", r.fail(s, ErrBadNumber, "invalid integer %q: %v", num, err)
		}
		// Fall through: too large for an int64.
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, "", r.fail(s, ErrBadNumber, "invalid number %q: %v", num, err)
	}
	return ast.Float(f), rest, nil
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

func hasDigit(s string) bool { return strings.ContainsAny(s, "0123456789") }

// literal parses the keyword word, whose first character is at s[0], and
// reports v as its value. If fewer characters remain than the length of the
// keyword, the keyword is truncated and all of s is consumed. Otherwise the
// length of the keyword is consumed.
//
// Unless the parser requires strict literals, the consumed characters are
// not checked.
func (r *recovery) literal(s, word string, v ast.Value) (ast.Value, string, error) {
	n, ok := runePrefix(s, utf8.RuneCountInString(word))
	if r.p.literals {
		if got := s[:n]; (ok && got != word) || (!ok && !strings.HasPrefix(word, got)) {
			return nil, "", r.fail(s, ErrBadLiteral, "invalid literal %q, want %q", got, word)
		}
	}
	if !ok {
		return v, "", nil // truncated
	}
	return v, s[n:], nil
}

// runePrefix returns the length in bytes of the first n runes of s, and
// reports whether s has at least n runes.
func runePrefix(s string, n int) (int, bool) {
	pos := 0
	for range n {
		if pos == len(s) {
			return pos, false
		}
		_, size := utf8.DecodeRuneInString(s[pos:])
		pos += size
	}
	return pos, true
}
