package textutil

import (
	"unicode"

	"golang.org/x/text/width"
)

// DisplayWidth returns the number of columns text occupies when
// rendered by the host with the given tab size.
//
// Per character: '\t' counts tabsize columns; '\n' and '\r' count a
// fixed 2 columns (the host renders them as a wide placeholder, not as
// a break); East Asian Wide characters count 2; Neutral characters
// (which include the non-printable ranges) count 2; everything else
// counts 1. The fold is left to right with no backtracking, so the
// result is never less than the rune count of text.
func DisplayWidth(text string, tabsize int) int {
	w := 0
	for _, r := range text {
		switch r {
		case '\t':
			w += tabsize
		case '\n', '\r':
			w += 2
		default:
			switch width.LookupRune(r).Kind() {
			case width.EastAsianWide, width.Neutral:
				w += 2
			default:
				w += 1
			}
		}
	}
	return w
}

// Indent returns the indentation depth of line in columns, with tabs
// expanded to tabsize. A line that is entirely whitespace (or empty)
// has depth 0.
func Indent(line string, tabsize int) int {
	col := 0
	for _, r := range line {
		if r == '\t' {
			// A non-positive tab size expands tabs to nothing.
			if tabsize > 0 {
				col += tabsize - (col % tabsize)
			}
			continue
		}
		if !unicode.IsSpace(r) {
			return col
		}
		col++
	}
	return 0
}
