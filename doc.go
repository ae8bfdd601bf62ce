// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jpart implements a parser for JSON text that may be truncated, such
// as a document being received incrementally from a streaming API.
//
// # Parsing
//
// Construct a Parser and call its Parse method with the text received so far.
// Parse returns the value that can be determined from the available text:
//
//	p := jpart.New(nil)
//	v, err := p.Parse(`{"name": "John", "tags": ["a", "b`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	fmt.Println(v.JSON()) // {"name":"John","tags":["a","b"]}
//
// If the text is a complete JSON document, Parse returns exactly the value
// decoded by the decode package. Otherwise, values are recovered as follows:
//
//	Input       | Recovered as
//	----------- | ----------------------------------------------------
//	array       | the elements parsed so far, without a dangling comma
//	object      | the members parsed so far; a key with no value is null
//	string      | the text so far (see Options.RawStrings)
//	number      | the number so far, without a dangling "." or exponent
//	keyword     | true, false, or null, from its first character
//	(empty)     | an empty object
//
// Input that is not merely truncated, for example a value beginning with an
// unknown character or an object key with no colon, is reported as an error
// of concrete type *jpart.DecodeError.
//
// # Extra input
//
// Parsing stops after the first value. The text following that value is
// available from the Remaining method after Parse returns, and is passed to
// the OnExtraToken function of the Options, if one is set:
//
//	p := jpart.New(&jpart.Options{
//	   OnExtraToken: func(input string, v ast.Value, rest string) {
//	      log.Printf("Extra text after value: %q", rest)
//	   },
//	})
//
// The Decode method returns the value and the remainder together, without
// recording any state in the Parser.
package jpart
