// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package decode_test

import (
	"testing"

	"github.com/creachadair/jpart/decode"
	"github.com/google/go-cmp/cmp"
)

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []decode.Token
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []decode.Token{decode.True, decode.False, decode.Null}},

		// Punctuation
		{"{ [ ] } , :", []decode.Token{
			decode.LBrace, decode.LSquare, decode.RSquare, decode.RBrace, decode.Comma, decode.Colon,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []decode.Token{decode.String, decode.String, decode.String}},
		{`"\"\\\/\b\f\n\r\t"`, []decode.Token{decode.String}},
		{`"\u0000\u01fc\uAA9c"`, []decode.Token{decode.String}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100`, []decode.Token{
			decode.Integer, decode.Integer, decode.Integer,
			decode.Number, decode.Number, decode.Number, decode.Number,
		}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []decode.Token{
			decode.LBrace, decode.True, decode.Comma, decode.String, decode.Colon,
			decode.Integer, decode.Null, decode.LSquare, decode.RSquare, decode.RBrace,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []decode.Token{
			decode.LBrace,
			decode.String, decode.Colon, decode.True, decode.Comma,
			decode.String, decode.Colon,
			decode.LSquare,
			decode.Null, decode.Comma, decode.Integer, decode.Comma, decode.Number,
			decode.RSquare,
			decode.RBrace,
		}},
	}

	for _, test := range tests {
		var got []decode.Token
		s := decode.NewScanner(test.input)
		for s.Next() {
			got = append(got, s.Token())
		}
		if s.Err() != nil {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerSpans(t *testing.T) {
	type tokSpan struct {
		Tok  decode.Token
		Text string
		Span decode.Span
	}
	const input = `{"a":  -1.5e3, "b\"": [tru`
	var got []tokSpan
	s := decode.NewScanner(input)
	for s.Next() {
		got = append(got, tokSpan{s.Token(), s.Text(), s.Span()})
	}
	want := []tokSpan{
		{decode.LBrace, "{", decode.Span{Pos: 0, End: 1}},
		{decode.String, `"a"`, decode.Span{Pos: 1, End: 4}},
		{decode.Colon, ":", decode.Span{Pos: 4, End: 5}},
		{decode.Number, "-1.5e3", decode.Span{Pos: 7, End: 13}},
		{decode.Comma, ",", decode.Span{Pos: 13, End: 14}},
		{decode.String, `"b\""`, decode.Span{Pos: 15, End: 20}},
		{decode.Colon, ":", decode.Span{Pos: 20, End: 21}},
		{decode.LSquare, "[", decode.Span{Pos: 22, End: 23}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokens (-want, +got):\n%s", diff)
	}
	if s.Err() == nil {
		t.Error("Scanner should fail on an unknown constant")
	} else {
		t.Logf("Got expected error: %v", s.Err())
	}
}

func TestScannerErrors(t *testing.T) {
	tests := []string{
		`"unterminated`,
		`"bad \q escape"`,
		`"short \u12"`,
		"\"control \x01\"",
		`01`,
		`-`,
		`-x`,
		`1.`,
		`1.e5`,
		`1e`,
		`1e+`,
		`nul`,
		`trueish`,
		`@`,
		`'single'`,
	}
	for _, input := range tests {
		s := decode.NewScanner(input)
		for s.Next() {
		}
		if s.Err() == nil {
			t.Errorf("Scan %#q: got no error, want error", input)
		} else if s.Token() != decode.Invalid {
			t.Errorf("Scan %#q: token is %v after error", input, s.Token())
		}
	}
}

func TestLineCol(t *testing.T) {
	const src = "ab\ncd\n\nef"
	tests := []struct {
		offset int
		want   string
	}{
		{-1, "1:0"},
		{0, "1:0"},
		{2, "1:2"},
		{3, "2:0"},
		{4, "2:1"},
		{6, "3:0"},
		{7, "4:0"},
		{9, "4:2"},
		{100, "4:2"},
	}
	for _, test := range tests {
		if got := decode.LineColOf(src, test.offset).String(); got != test.want {
			t.Errorf("LineColOf(%d): got %s, want %s", test.offset, got, test.want)
		}
	}
}
