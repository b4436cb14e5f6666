package nvim

// Buffer is a host buffer handle.
type Buffer int

// Window is a host window handle.
type Window int

// Tabpage is a host tabpage handle.
type Tabpage int

// Pos is a position in a buffer. Row is 1-indexed for marks and
// cursor positions unless a method documents otherwise; Col is a byte
// offset into the line's UTF-8 encoding.
type Pos struct {
	Row int
	Col int
}

// VisualKind identifies the kind of a visual selection, or VisualNone
// for a plain character mark range.
type VisualKind int

const (
	// VisualNone means no visual mode: the selection is read from the
	// '< and '> marks.
	VisualNone VisualKind = iota
	// VisualChar is a character-wise visual selection.
	VisualChar
	// VisualLine is a line-wise visual selection.
	VisualLine
	// VisualBlock is a block-wise visual selection.
	VisualBlock
)

// String returns the host's name for the visual kind.
func (k VisualKind) String() string {
	switch k {
	case VisualChar:
		return "char"
	case VisualLine:
		return "line"
	case VisualBlock:
		return "block"
	default:
		return ""
	}
}

// ParseVisualKind maps the host's opfunc argument to a VisualKind.
// Anything unrecognized (including the empty string) is VisualNone.
func ParseVisualKind(s string) VisualKind {
	switch s {
	case "char":
		return VisualChar
	case "line":
		return VisualLine
	case "block":
		return VisualBlock
	default:
		return VisualNone
	}
}

// TextChunk is a piece of a highlighted message for Echo.
type TextChunk struct {
	// Text is the chunk's literal text.
	Text string
	// HLGroup is the highlight group name, empty for the default.
	HLGroup string
}

// Fileformat is a buffer's end-of-line convention.
type Fileformat string

const (
	// FileformatUnix terminates lines with "\n".
	FileformatUnix Fileformat = "unix"
	// FileformatDos terminates lines with "\r\n".
	FileformatDos Fileformat = "dos"
	// FileformatMac terminates lines with "\r".
	FileformatMac Fileformat = "mac"
)

// Linefeed returns the line separator for the fileformat. Unknown
// formats fall back to "\n".
func (f Fileformat) Linefeed() string {
	switch f {
	case FileformatDos:
		return "\r\n"
	case FileformatMac:
		return "\r"
	default:
		return "\n"
	}
}

// Extmark is a host extended mark with its metadata. Extmark rows are
// 0-indexed.
type Extmark struct {
	// ID is the mark's identifier within its namespace.
	ID int
	// Begin is the mark's start position, 0-indexed row.
	Begin Pos
	// End is the mark's end position, 0-indexed row.
	End Pos
	// Meta carries the host's extmark details verbatim.
	Meta map[string]any
}
