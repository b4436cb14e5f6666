// Package operators implements operator and visual-selection helpers:
// querying the marks that bound an operator or visual range, restoring
// a visual selection, and extracting the selected text.
//
// Columns reported by the host are byte offsets into each line's UTF-8
// encoding, so all slicing here is byte-accurate rather than
// rune-indexed. Line-wise selections need no special casing: the host
// reports their end column as a huge sentinel (v:maxcol) and the
// slicing clamps it to the line, which yields whole lines.
package operators

import (
	"runtime"
	"strings"

	"github.com/dshills/nvimkit/nvim"
	"github.com/dshills/nvimkit/textutil"
)

// lineSep is the platform line separator used to join multi-line
// selections.
func lineSep() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Writable reports whether buf can be modified.
func Writable(c nvim.Client, buf nvim.Buffer) (bool, error) {
	v, err := c.BufOption(buf, "modifiable")
	if err != nil {
		return false, err
	}
	modifiable, _ := v.(bool)
	return modifiable, nil
}

// OperatorMarks returns the pair of marks bounding the range an
// operator or visual selection covers: the '[ and '] marks when kind
// is a visual kind, the '< and '> marks otherwise. Positions are
// (1, 0)-indexed: 1-indexed row, 0-indexed byte column.
func OperatorMarks(c nvim.Client, buf nvim.Buffer, kind nvim.VisualKind) (begin, end nvim.Pos, err error) {
	mark1, mark2 := "<", ">"
	if kind != nvim.VisualNone {
		mark1, mark2 = "[", "]"
	}
	begin, err = c.BufMark(buf, mark1)
	if err != nil {
		return nvim.Pos{}, nvim.Pos{}, err
	}
	end, err = c.BufMark(buf, mark2)
	if err != nil {
		return nvim.Pos{}, nvim.Pos{}, err
	}
	return begin, end, nil
}

// SetVisualSelection restores the visual marks '< and '> to the given
// positions. Positions are (1, 0)-indexed like OperatorMarks.
func SetVisualSelection(c nvim.Client, buf nvim.Buffer, begin, end nvim.Pos) error {
	if err := c.SetPos("'<", buf, nvim.Pos{Row: begin.Row, Col: begin.Col + 1}); err != nil {
		return err
	}
	return c.SetPos("'>", buf, nvim.Pos{Row: end.Row, Col: end.Col + 1})
}

// GetSelected returns the text covered by the current operator or
// visual range of kind. The end column is inclusive, per the host's
// mark convention. A single-line range is sliced once; a multi-line
// range joins the head slice, the untouched middle lines, and the tail
// slice with the platform line separator.
func GetSelected(c nvim.Client, buf nvim.Buffer, kind nvim.VisualKind) (string, error) {
	begin, end, err := OperatorMarks(c, buf, kind)
	if err != nil {
		return "", err
	}

	lines, err := c.BufLines(buf, begin.Row-1, end.Row, true)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", nil
	}

	if len(lines) == 1 {
		return textutil.SliceBytes(lines[0], begin.Col, end.Col+1), nil
	}

	parts := make([]string, 0, len(lines))
	parts = append(parts, textutil.SliceBytes(lines[0], begin.Col, -1))
	parts = append(parts, lines[1:len(lines)-1]...)
	parts = append(parts, textutil.SliceBytes(lines[len(lines)-1], 0, end.Col+1))
	return strings.Join(parts, lineSep()), nil
}
