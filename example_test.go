// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jpart_test

import (
	"fmt"
	"log"

	"github.com/creachadair/jpart"
	"github.com/creachadair/jpart/ast"
)

func Example() {
	p := jpart.New(nil)
	for _, text := range []string{
		`{"name": "Jo`,
		`{"name": "John", "age": 3`,
		`{"name": "John", "age": 30, "tags": ["a", `,
		`{"name": "John", "age": 30, "tags": ["a", "b"]}`,
	} {
		v, err := p.Parse(text)
		if err != nil {
			log.Fatalf("Parse: %v", err)
		}
		fmt.Println(v.JSON())
	}
	// Output:
	// {"name":"Jo"}
	// {"name":"John","age":3}
	// {"name":"John","age":30,"tags":["a"]}
	// {"name":"John","age":30,"tags":["a","b"]}
}

func ExampleOptions() {
	p := jpart.New(&jpart.Options{
		OnExtraToken: func(input string, v ast.Value, rest string) {
			fmt.Printf("extra text after %s: %q\n", v.JSON(), rest)
		},
	})
	if _, err := p.Parse(`{"key": "value"} extra tokens`); err != nil {
		log.Fatalf("Parse: %v", err)
	}
	// Output:
	// extra text after {"key":"value"}: " extra tokens"
}

func ExampleParser_Decode() {
	p := jpart.New(&jpart.Options{RawStrings: true})
	res, err := p.Decode(`["a\tb", "c\u00`)
	if err != nil {
		log.Fatalf("Decode: %v", err)
	}
	fmt.Println(res.Value.(ast.Array)[1])
	fmt.Println(res.Extra())
	// Output:
	// c\u00
	// false
}
