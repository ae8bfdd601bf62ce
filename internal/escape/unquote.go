// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// ErrIncomplete is reported by Unquote when the input ends in the middle of
// an escape sequence.
var ErrIncomplete = errors.New("incomplete escape sequence")

// Unquote decodes the contents of a JSON string. The input must have the
// enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents, and UTF-16
// surrogate pairs written as two \u escapes are combined. An unpaired
// surrogate decodes as the Unicode replacement rune. Unquote reports an
// error for an invalid escape, an unescaped control character, or an
// incomplete escape sequence (ErrIncomplete).
func Unquote(src mem.RO) ([]byte, error) {
	if i := firstSpecial(src); i < 0 {
		return mem.Append(make([]byte, 0, src.Len()), src), nil
	}

	dec := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		i := firstSpecial(src)
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
		dec = mem.Append(dec, src.SliceTo(i))
		if c := src.At(i); c != '\\' {
			return nil, fmt.Errorf("unescaped control %q", c)
		}

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, ErrIncomplete
		}
		c := src.At(0)
		src = src.SliceFrom(1)
		switch c {
		case '"', '\\', '/':
			dec = append(dec, c)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			r, err := parseHex4(src)
			if err != nil {
				return nil, err
			}
			src = src.SliceFrom(4)

			// A high surrogate may be followed by an escaped low surrogate.
			if utf16.IsSurrogate(r) && src.Len() >= 6 && src.At(0) == '\\' && src.At(1) == 'u' {
				if r2, err := parseHex4(src.SliceFrom(2)); err == nil {
					if c := utf16.DecodeRune(r, r2); c != utf8.RuneError {
						dec = utf8.AppendRune(dec, c)
						src = src.SliceFrom(6)
						continue
					}
				}
			}
			if utf16.IsSurrogate(r) {
				r = utf8.RuneError
			}
			dec = utf8.AppendRune(dec, r)
		default:
			return nil, fmt.Errorf("invalid %q after escape", c)
		}
	}
	return dec, nil
}

// IsPartialEscape reports whether src consists entirely of the beginning of
// a single escape sequence that cannot yet be decoded: a lone backslash,
// optionally followed by "u" and up to three hexadecimal digits.
func IsPartialEscape(src mem.RO) bool {
	if src.Len() == 0 || src.At(0) != '\\' {
		return false
	} else if src.Len() == 1 {
		return true
	} else if src.At(1) != 'u' || src.Len() > 5 {
		return false
	}
	for i := 2; i < src.Len(); i++ {
		if !isHexDigit(src.At(i)) {
			return false
		}
	}
	return true
}

// firstSpecial returns the offset of the first backslash or control
// character in src, or -1.
func firstSpecial(src mem.RO) int {
	for i := 0; i < src.Len(); i++ {
		if c := src.At(i); c == '\\' || c < ' ' {
			return i
		}
	}
	return -1
}

func parseHex4(data mem.RO) (rune, error) {
	if data.Len() < 4 {
		return 0, fmt.Errorf("incomplete Unicode escape: %w", ErrIncomplete)
	}
	var v rune
	for i := 0; i < 4; i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += rune(b - '0')
		case 'a' <= b && b <= 'f':
			v += rune(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += rune(b - 'A' + 10)
		default:
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}
