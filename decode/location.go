// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package decode

import (
	"fmt"
	"strings"
)

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// LineColOf returns the line and column of the given byte offset in src.
// Offsets outside src are clamped to its bounds.
func LineColOf(src string, offset int) LineCol {
	offset = max(0, min(offset, len(src)))
	head := src[:offset]
	line := strings.Count(head, "\n")
	col := offset - (strings.LastIndexByte(head, '\n') + 1)
	return LineCol{Line: line + 1, Column: col}
}
