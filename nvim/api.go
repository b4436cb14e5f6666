package nvim

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/nvimkit/textutil"
)

// Linefeed returns buf's line separator per its fileformat option.
func Linefeed(c Client, buf Buffer) (string, error) {
	v, err := c.BufOption(buf, "fileformat")
	if err != nil {
		return "", fmt.Errorf("fileformat of buffer %d: %w", buf, err)
	}
	ff, _ := v.(string)
	return Fileformat(ff).Linefeed(), nil
}

// Filetype returns buf's filetype option.
func Filetype(c Client, buf Buffer) (string, error) {
	v, err := c.BufOption(buf, "filetype")
	if err != nil {
		return "", fmt.Errorf("filetype of buffer %d: %w", buf, err)
	}
	ft, _ := v.(string)
	return ft, nil
}

// CommentStr splits buf's commentstring option around its "%s" slot.
// An empty commentstring yields two empty strings; a commentstring
// without a slot is an error.
func CommentStr(c Client, buf Buffer) (left, right string, err error) {
	v, err := c.BufOption(buf, "commentstring")
	if err != nil {
		return "", "", fmt.Errorf("commentstring of buffer %d: %w", buf, err)
	}
	cs, _ := v.(string)
	if cs == "" {
		return "", "", nil
	}
	left, right, found := strings.Cut(cs, "%s")
	if !found {
		return "", "", fmt.Errorf("commentstring %q has no %%s slot", cs)
	}
	return left, right, nil
}

// BufText returns the text between two 0-indexed row, byte-column
// positions, joined with buf's own line separator. The positions may
// be given in either order; columns are clamped to line bounds.
func BufText(c Client, buf Buffer, begin, end Pos) (string, error) {
	r1, c1, r2, c2 := begin.Row, begin.Col, end.Row, end.Col
	if r1 > r2 {
		r1, c1, r2, c2 = r2, c2, r1, c1
	}
	lines, err := c.BufLines(buf, r1, r2+1, true)
	if err != nil {
		return "", err
	}
	linefeed, err := Linefeed(c, buf)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(lines))
	for i, line := range lines {
		row := r1 + i
		switch {
		case row == r1 && row == r2:
			parts = append(parts, textutil.SliceBytes(line, c1, c2))
		case row == r1:
			parts = append(parts, textutil.SliceBytes(line, c1, -1))
		case row == r2:
			parts = append(parts, textutil.SliceBytes(line, 0, c2))
		default:
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, linefeed), nil
}

// CursorPos returns win's cursor with a 0-indexed row. The column is a
// byte offset.
func CursorPos(c Client, win Window) (Pos, error) {
	pos, err := c.WinCursor(win)
	if err != nil {
		return Pos{}, err
	}
	return Pos{Row: pos.Row - 1, Col: pos.Col}, nil
}

// SetCursorPos moves win's cursor; pos.Row is 0-indexed, pos.Col a
// byte offset.
func SetCursorPos(c Client, win Window, pos Pos) error {
	return c.SetWinCursor(win, Pos{Row: pos.Row + 1, Col: pos.Col})
}

// GetMark returns a named mark of buf with a 0-indexed row and a byte
// column.
func GetMark(c Client, buf Buffer, name string) (Pos, error) {
	pos, err := c.BufMark(buf, name)
	if err != nil {
		return Pos{}, err
	}
	return Pos{Row: pos.Row - 1, Col: pos.Col}, nil
}

// SetMark sets a named mark of buf; pos.Row is 0-indexed, pos.Col a
// byte column.
func SetMark(c Client, buf Buffer, name string, pos Pos) error {
	return c.SetPos("'"+name, buf, Pos{Row: pos.Row + 1, Col: pos.Col + 1})
}

// ScratchOptions selects the lifecycle options of a scratch buffer.
type ScratchOptions struct {
	// Listed makes the buffer appear in the buffer list.
	Listed bool
	// Wipe sets bufhidden=wipe so the buffer vanishes when hidden.
	Wipe bool
	// Nofile sets buftype=nofile.
	Nofile bool
	// Noswap disables the swapfile.
	Noswap bool
}

// CreateScratchBuf creates a scratch buffer with the given options
// applied.
func CreateScratchBuf(c Client, opts ScratchOptions) (Buffer, error) {
	buf, err := c.CreateBuf(opts.Listed, true)
	if err != nil {
		return 0, err
	}
	if opts.Wipe {
		if err := c.SetBufOption(buf, "bufhidden", "wipe"); err != nil {
			return 0, err
		}
	}
	if opts.Nofile {
		if err := c.SetBufOption(buf, "buftype", "nofile"); err != nil {
			return 0, err
		}
	}
	if opts.Noswap {
		if err := c.SetBufOption(buf, "swapfile", false); err != nil {
			return 0, err
		}
	}
	return buf, nil
}

// CloseBuf force-deletes buf, falling back to :bwipeout on hosts
// without nvim_buf_delete.
func CloseBuf(c Client, buf Buffer) error {
	has, err := c.Has("nvim-0.5")
	if err != nil {
		return err
	}
	if has {
		return c.DeleteBuf(buf, true)
	}
	return c.Command(fmt.Sprintf("bwipeout! %d", buf))
}

// Namespace creates or looks up the extmark namespace keyed by id.
// UUID-keyed namespaces let independent plugin components coexist
// without name collisions.
func Namespace(c Client, id uuid.UUID) (int, error) {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return c.CreateNamespace(hex)
}

// ExtmarksText resolves each extmark to the buffer text it covers.
// Marks the host can no longer resolve are skipped.
func ExtmarksText(c Client, buf Buffer, marks []Extmark) (texts []string, kept []Extmark) {
	texts = make([]string, 0, len(marks))
	kept = make([]Extmark, 0, len(marks))
	for _, mark := range marks {
		text, err := BufText(c, buf, mark.Begin, mark.End)
		if err != nil {
			continue
		}
		texts = append(texts, text)
		kept = append(kept, mark)
	}
	return texts, kept
}

// Ask prompts for a line of input. ok is false when the host reports
// an error, e.g. the prompt was aborted.
func Ask(c Client, question, deflt string) (answer string, ok bool) {
	answer, err := c.Input(question, deflt)
	if err != nil {
		return "", false
	}
	return answer, true
}

// AskMC shows a multiple-choice prompt and maps the chosen index
// through key. ok is false when the host reports an error or the
// choice has no mapping.
func AskMC[T any](c Client, question, answers string, key map[int]T) (choice T, ok bool) {
	var zero T
	n, err := c.Confirm(question, answers, 0)
	if err != nil {
		return zero, false
	}
	choice, ok = key[n]
	if !ok {
		return zero, false
	}
	return choice, true
}
