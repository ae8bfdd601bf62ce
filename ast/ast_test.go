// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/creachadair/jpart/ast"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null, "null"},

		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},

		{ast.String(""), `""`},
		{ast.String("a \t b"), `"a \t b"`},
		{ast.String(`say "hi"\`), `"say \"hi\"\\"`},

		{ast.Float(-0.00239), `-0.00239`},
		{ast.Float(1e21), `1e+21`},
		{ast.Float(math.Inf(1)), `null`},
		{ast.Float(math.Inf(-1)), `null`},
		{ast.Array{ast.Float(math.Inf(1)), ast.Int(1)}, `[null,1]`},

		{ast.Int(0), `0`},
		{ast.Int(15), `15`},
		{ast.Int(-25), `-25`},

		{ast.Array{}, `[]`},
		{ast.Array{
			ast.Bool(false),
		}, `[false]`},
		{ast.Array{
			ast.Bool(true),
			ast.Int(199),
		}, `[true,199]`},
		{ast.Array{
			ast.String("free"),
			ast.String("your"),
			ast.String("mind"),
		}, `["free","your","mind"]`},

		{ast.Object{}, `{}`},
		{ast.Object{
			ast.Field("xs", ast.Null),
		}, `{"xs":null}`},
		{ast.Object{
			ast.Field("name", ast.String("Dennis")),
			ast.Field("age", ast.Int(37)),
			ast.Field("isOld", ast.Bool(false)),
		}, `{"name":"Dennis","age":37,"isOld":false}`},

		{ast.Object{
			ast.Field("values", ast.Array{
				ast.Int(5),
				ast.Int(10),
				ast.Bool(true),
			}),
			ast.Field("page", ast.Object{
				ast.Field("token", ast.String("xyz-pdq-zvm")),
				ast.Field("count", ast.Int(100)),
			}),
		}, `{"values":[5,10,true],"page":{"token":"xyz-pdq-zvm","count":100}}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
		if !gjson.Valid(got) {
			t.Errorf("Output is not valid JSON: %s", got)
		}
	}
}

func TestObject(t *testing.T) {
	var o ast.Object
	o.Set("a", ast.Int(1))
	o.Set("b", ast.Int(2))
	o.Set("a", ast.Int(3))
	o.Set("c", ast.Null)

	if diff := cmp.Diff([]string{"a", "b", "c"}, o.Keys()); diff != "" {
		t.Errorf("Keys (-want, +got):\n%s", diff)
	}
	if got, want := o.JSON(), `{"a":3,"b":2,"c":null}`; got != want {
		t.Errorf("JSON: got %s, want %s", got, want)
	}
	if m := o.Find("nonesuch"); m != nil {
		t.Errorf("Find(nonesuch): got %+v, want nil", m)
	}
}

func TestBuilder(t *testing.T) {
	// Enough keys to switch the builder to indexed lookup.
	var b ast.Builder
	var want ast.Object
	for i := range 40 {
		key := fmt.Sprintf("k%d", i%25)
		b.Set(key, ast.Int(i))
		want.Set(key, ast.Int(i))
	}
	if b.Len() != 25 {
		t.Errorf("Len: got %d, want 25", b.Len())
	}
	if diff := cmp.Diff(want, b.Object()); diff != "" {
		t.Errorf("Object (-want, +got):\n%s", diff)
	}
	if got := b.Object().Find("k3").Value; got != ast.Int(28) {
		t.Errorf("k3: got %v, want 28", got)
	}

	var empty ast.Builder
	if got := empty.Object(); got == nil || len(got) != 0 {
		t.Errorf("Empty builder: got %#v, want empty object", got)
	}
}

func TestPath(t *testing.T) {
	v := ast.Object{
		ast.Field("list", ast.Array{
			ast.Object{ast.Field("x", ast.Int(1))},
			ast.Object{ast.Field("x", ast.Int(2))},
		}),
		ast.Field("y", ast.Object{ast.Field("hello", ast.String("there"))}),
	}

	tests := []struct {
		name string
		path []any
		want ast.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{11}, v, true},
		{"BadElement", []any{true}, v, true},
		{"ArrayPos", []any{"list", 1}, v[0].Value.(ast.Array)[1], false},
		{"ArrayNeg", []any{"list", -2}, v[0].Value.(ast.Array)[0], false},
		{"ArrayRange", []any{"list", 2}, v, true},
		{"Nested", []any{"list", 0, "x"}, ast.Int(1), false},
		{"Key", []any{"y", "hello"}, ast.String("there"), false},
		{"KeyOfString", []any{"y", "hello", "z"}, v, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ast.Path(v, test.path...)
			if err != nil {
				if !test.fail {
					t.Fatalf("Path: unexpected error: %v", err)
				}
				t.Logf("Path: got expected error: %v", err)
			} else if test.fail {
				t.Fatalf("Path: got %v, want error", got)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("Path (-want, +got):\n%s", diff)
			}
		})
	}

	t.Run("MustPath", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.MustPath(v, "list", 5) })
		if got := ast.MustPath(v, "y", "hello"); got != ast.String("there") {
			t.Errorf("MustPath: got %v, want there", got)
		}
	})
}

func TestToAny(t *testing.T) {
	v := ast.Array{
		ast.Null,
		ast.Bool(true),
		ast.Int(3),
		ast.Float(4.5),
		ast.String("six"),
		ast.Object{ast.Field("seven", ast.Array{})},
	}
	want := []any{nil, true, int64(3), 4.5, "six", map[string]any{"seven": []any{}}}
	if diff := cmp.Diff(want, ast.ToAny(v)); diff != "" {
		t.Errorf("ToAny (-want, +got):\n%s", diff)
	}
}
