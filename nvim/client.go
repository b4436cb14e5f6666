package nvim

// Client is the host editor's automation surface as used by this
// toolkit. Implementations must run every method on the host's single
// thread or be safe to call from it; off-thread callers go through the
// bridge package, using Submit as the loop.
//
// Client's Submit method satisfies bridge.Loop.
type Client interface {
	// Submit queues fn for serialized execution on the host's single
	// thread. Delivery is FIFO; fn always runs, there is no retraction.
	Submit(fn func())

	// Has reports whether the host supports a feature, e.g. "nvim-0.5".
	Has(feature string) (bool, error)
	// Command executes an ex command.
	Command(cmd string) error
	// Echo shows a message built from highlighted chunks. When history
	// is true the message is added to the message history.
	Echo(chunks []TextChunk, history bool) error
	// OutWrite writes msg to the output stream. The host buffers until
	// a trailing newline.
	OutWrite(msg string) error
	// ErrWrite writes msg to the error stream, styled as an error.
	ErrWrite(msg string) error
	// ExecLua evaluates a Lua chunk on the host with the given
	// arguments available as ... and returns the chunk's result.
	ExecLua(code string, args ...any) (any, error)

	// CurrentBuf returns the current buffer.
	CurrentBuf() (Buffer, error)
	// CurrentWin returns the current window.
	CurrentWin() (Window, error)
	// CurrentTab returns the current tabpage.
	CurrentTab() (Tabpage, error)
	// SetCurrentWin makes win the current window.
	SetCurrentWin(win Window) error
	// Bufs lists all buffers.
	Bufs() ([]Buffer, error)
	// Wins lists all windows.
	Wins() ([]Window, error)
	// Tabs lists all tabpages.
	Tabs() ([]Tabpage, error)
	// TabWins lists the windows of a tabpage.
	TabWins(tab Tabpage) ([]Window, error)
	// WinBuf returns the buffer shown in win.
	WinBuf(win Window) (Buffer, error)
	// SetWinBuf sets the buffer shown in win.
	SetWinBuf(win Window, buf Buffer) error
	// WinCursor returns the cursor of win: 1-indexed row, byte column.
	WinCursor(win Window) (Pos, error)
	// SetWinCursor moves the cursor of win: 1-indexed row, byte column.
	SetWinCursor(win Window, pos Pos) error
	// CloseWin closes win.
	CloseWin(win Window, force bool) error

	// CreateBuf creates a new buffer.
	CreateBuf(listed, scratch bool) (Buffer, error)
	// DeleteBuf deletes a buffer.
	DeleteBuf(buf Buffer, force bool) error
	// BufName returns the full name of buf.
	BufName(buf Buffer) (string, error)
	// LineCount returns the number of lines in buf.
	LineCount(buf Buffer) (int, error)
	// BufLines returns the lines of buf in the 0-indexed half-open
	// range [lo, hi). Negative indices count from the end, -1 meaning
	// one past the last line. With strict set, an out-of-bounds range
	// is an error; otherwise it is clamped.
	BufLines(buf Buffer, lo, hi int, strict bool) ([]string, error)
	// SetBufLines replaces the lines of buf in [lo, hi), with the same
	// index conventions as BufLines.
	SetBufLines(buf Buffer, lo, hi int, strict bool, lines []string) error
	// SetBufText replaces the region between two 0-indexed row/byte-col
	// positions.
	SetBufText(buf Buffer, startRow, startCol, endRow, endCol int, lines []string) error
	// BufMark returns a mark of buf: 1-indexed row, 0-indexed byte
	// column. An unset mark is (0, 0).
	BufMark(buf Buffer, name string) (Pos, error)
	// SetPos sets a mark ("'<", "'x", ...) in buf: 1-indexed row,
	// 1-indexed column.
	SetPos(mark string, buf Buffer, pos Pos) error

	// Option returns a global option value.
	Option(name string) (any, error)
	// SetOption sets a global option.
	SetOption(name string, value any) error
	// BufOption returns a buffer-local option value.
	BufOption(buf Buffer, name string) (any, error)
	// SetBufOption sets a buffer-local option.
	SetBufOption(buf Buffer, name string, value any) error
	// WinOption returns a window-local option value.
	WinOption(win Window, name string) (any, error)
	// SetWinOption sets a window-local option.
	SetWinOption(win Window, name string, value any) error
	// BufVar returns a buffer-scoped variable; an error if unset.
	BufVar(buf Buffer, name string) (any, error)
	// SetBufVar sets a buffer-scoped variable.
	SetBufVar(buf Buffer, name string, value any) error
	// WinVar returns a window-scoped variable; an error if unset.
	WinVar(win Window, name string) (any, error)
	// SetWinVar sets a window-scoped variable.
	SetWinVar(win Window, name string, value any) error

	// CreateNamespace creates or looks up a named extmark namespace.
	CreateNamespace(name string) (int, error)
	// ClearNamespace removes namespaced objects from the 0-indexed
	// line range [lo, hi), -1 meaning the end of the buffer.
	ClearNamespace(buf Buffer, nsID, lo, hi int) error
	// BufExtmarks lists the extmarks of a namespace with details.
	BufExtmarks(buf Buffer, nsID int) ([]Extmark, error)
	// SetBufExtmark creates or updates an extmark.
	SetBufExtmark(buf Buffer, nsID int, mark Extmark) error
	// DelBufExtmark removes an extmark by id.
	DelBufExtmark(buf Buffer, nsID, id int) error

	// Input prompts the user, returning the entered text.
	Input(prompt, deflt string) (string, error)
	// Confirm shows a multiple-choice dialog ("&Yes\n&No" style
	// choices) and returns the 1-based chosen index, 0 for none.
	Confirm(msg, choices string, deflt int) (int, error)
	// GetReg returns the contents of a register.
	GetReg(name string) (string, error)
	// CWD returns the host's working directory.
	CWD() (string, error)
	// RuntimePaths lists the host's runtime path entries.
	RuntimePaths() ([]string, error)
}
