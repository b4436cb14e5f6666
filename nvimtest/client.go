package nvimtest

import (
	"fmt"
	"strings"

	"github.com/dshills/nvimkit/nvim"
)

// normRange normalizes a 0-indexed half-open line range over n lines.
// Negative indices count from the end, -1 meaning one past the last
// line. With strict set, out-of-bounds indices are an error; otherwise
// they are clamped.
func normRange(n, lo, hi int, strict bool) (int, int, error) {
	if lo < 0 {
		lo = n + 1 + lo
	}
	if hi < 0 {
		hi = n + 1 + hi
	}
	if strict && (lo < 0 || lo > n || hi < 0 || hi > n) {
		return 0, 0, ErrIndexOutOfBounds
	}
	if lo < 0 {
		lo = 0
	}
	if lo > n {
		lo = n
	}
	if hi < lo {
		hi = lo
	}
	if hi > n {
		hi = n
	}
	return lo, hi, nil
}

// Has reports a scripted feature flag.
func (h *Host) Has(feature string) (bool, error) {
	if err := h.guard(); err != nil {
		return false, err
	}
	defer h.mu.Unlock()
	return h.features[feature], nil
}

// Command accepts and logs ex commands; the fake interprets none.
func (h *Host) Command(cmd string) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	h.log.Debug("command: %s", cmd)
	return nil
}

// Echo captures a chunked message.
func (h *Host) Echo(chunks []nvim.TextChunk, history bool) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	var sb strings.Builder
	isErr := false
	for _, chunk := range chunks {
		sb.WriteString(chunk.Text)
		if chunk.HLGroup == "ErrorMsg" {
			isErr = true
		}
	}
	h.messages = append(h.messages, Message{Text: sb.String(), Error: isErr})
	return nil
}

// OutWrite buffers msg and captures a message per completed line.
func (h *Host) OutWrite(msg string) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	h.outPending.WriteString(msg)
	h.flushPending(&h.outPending, false)
	return nil
}

// ErrWrite buffers msg and captures an error message per completed
// line.
func (h *Host) ErrWrite(msg string) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	h.errPending.WriteString(msg)
	h.flushPending(&h.errPending, true)
	return nil
}

func (h *Host) flushPending(sb *strings.Builder, isErr bool) {
	pending := sb.String()
	for {
		line, rest, found := strings.Cut(pending, "\n")
		if !found {
			break
		}
		h.messages = append(h.messages, Message{Text: line, Error: isErr})
		pending = rest
	}
	sb.Reset()
	sb.WriteString(pending)
}

// CurrentBuf returns the current buffer.
func (h *Host) CurrentBuf() (nvim.Buffer, error) {
	if err := h.guard(); err != nil {
		return 0, err
	}
	defer h.mu.Unlock()
	return h.curBuf, nil
}

// CurrentWin returns the current window.
func (h *Host) CurrentWin() (nvim.Window, error) {
	if err := h.guard(); err != nil {
		return 0, err
	}
	defer h.mu.Unlock()
	return h.curWin, nil
}

// CurrentTab returns the current tabpage.
func (h *Host) CurrentTab() (nvim.Tabpage, error) {
	if err := h.guard(); err != nil {
		return 0, err
	}
	defer h.mu.Unlock()
	return h.curTab, nil
}

// SetCurrentWin makes win current, tracking its buffer too.
func (h *Host) SetCurrentWin(win nvim.Window) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	st, err := h.winState(win)
	if err != nil {
		return err
	}
	h.curWin = win
	h.curBuf = st.buf
	return nil
}

// Bufs lists all buffers.
func (h *Host) Bufs() ([]nvim.Buffer, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	defer h.mu.Unlock()
	out := make([]nvim.Buffer, 0, len(h.bufs))
	for buf := nvim.Buffer(1); buf < h.nextBuf; buf++ {
		if _, ok := h.bufs[buf]; ok {
			out = append(out, buf)
		}
	}
	return out, nil
}

// Wins lists all windows.
func (h *Host) Wins() ([]nvim.Window, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	defer h.mu.Unlock()
	out := make([]nvim.Window, 0, len(h.wins))
	for win := nvim.Window(1000); win < h.nextWin; win++ {
		if _, ok := h.wins[win]; ok {
			out = append(out, win)
		}
	}
	return out, nil
}

// Tabs lists all tabpages.
func (h *Host) Tabs() ([]nvim.Tabpage, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	defer h.mu.Unlock()
	out := make([]nvim.Tabpage, 0, len(h.tabs))
	for tab := nvim.Tabpage(1); int(tab) <= len(h.tabs); tab++ {
		if _, ok := h.tabs[tab]; ok {
			out = append(out, tab)
		}
	}
	return out, nil
}

// TabWins lists the windows of tab.
func (h *Host) TabWins(tab nvim.Tabpage) ([]nvim.Window, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	defer h.mu.Unlock()
	return append([]nvim.Window(nil), h.tabs[tab]...), nil
}

// WinBuf returns the buffer shown in win.
func (h *Host) WinBuf(win nvim.Window) (nvim.Buffer, error) {
	if err := h.guard(); err != nil {
		return 0, err
	}
	defer h.mu.Unlock()
	st, err := h.winState(win)
	if err != nil {
		return 0, err
	}
	return st.buf, nil
}

// SetWinBuf sets the buffer shown in win.
func (h *Host) SetWinBuf(win nvim.Window, buf nvim.Buffer) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	st, err := h.winState(win)
	if err != nil {
		return err
	}
	if _, err := h.bufState(buf); err != nil {
		return err
	}
	st.buf = buf
	if win == h.curWin {
		h.curBuf = buf
	}
	return nil
}

// WinCursor returns win's cursor: 1-indexed row, byte column.
func (h *Host) WinCursor(win nvim.Window) (nvim.Pos, error) {
	if err := h.guard(); err != nil {
		return nvim.Pos{}, err
	}
	defer h.mu.Unlock()
	st, err := h.winState(win)
	if err != nil {
		return nvim.Pos{}, err
	}
	return st.cursor, nil
}

// SetWinCursor moves win's cursor.
func (h *Host) SetWinCursor(win nvim.Window, pos nvim.Pos) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	st, err := h.winState(win)
	if err != nil {
		return err
	}
	bst, err := h.bufState(st.buf)
	if err != nil {
		return err
	}
	if pos.Row < 1 || pos.Row > len(bst.lines) {
		return ErrIndexOutOfBounds
	}
	st.cursor = pos
	return nil
}

// CloseWin removes win.
func (h *Host) CloseWin(win nvim.Window, force bool) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	if _, err := h.winState(win); err != nil {
		return err
	}
	delete(h.wins, win)
	for tab, wins := range h.tabs {
		kept := wins[:0]
		for _, w := range wins {
			if w != win {
				kept = append(kept, w)
			}
		}
		h.tabs[tab] = kept
	}
	return nil
}

// CreateBuf allocates a new buffer.
func (h *Host) CreateBuf(listed, scratch bool) (nvim.Buffer, error) {
	if err := h.guard(); err != nil {
		return 0, err
	}
	defer h.mu.Unlock()
	buf := h.allocBufLocked(listed)
	if scratch {
		st := h.bufs[buf]
		st.opts["buftype"] = "nofile"
		st.opts["swapfile"] = false
	}
	return buf, nil
}

// DeleteBuf removes a buffer.
func (h *Host) DeleteBuf(buf nvim.Buffer, force bool) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	if _, err := h.bufState(buf); err != nil {
		return err
	}
	delete(h.bufs, buf)
	return nil
}

// BufName returns buf's name.
func (h *Host) BufName(buf nvim.Buffer) (string, error) {
	if err := h.guard(); err != nil {
		return "", err
	}
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return "", err
	}
	return st.name, nil
}

// LineCount returns the number of lines in buf.
func (h *Host) LineCount(buf nvim.Buffer) (int, error) {
	if err := h.guard(); err != nil {
		return 0, err
	}
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return 0, err
	}
	return len(st.lines), nil
}

// BufLines returns the lines of buf in [lo, hi).
func (h *Host) BufLines(buf nvim.Buffer, lo, hi int, strict bool) ([]string, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return nil, err
	}
	lo, hi, err = normRange(len(st.lines), lo, hi, strict)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), st.lines[lo:hi]...), nil
}

// SetBufLines replaces the lines of buf in [lo, hi).
func (h *Host) SetBufLines(buf nvim.Buffer, lo, hi int, strict bool, lines []string) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return err
	}
	lo, hi, err = normRange(len(st.lines), lo, hi, strict)
	if err != nil {
		return err
	}
	out := make([]string, 0, len(st.lines)-(hi-lo)+len(lines))
	out = append(out, st.lines[:lo]...)
	out = append(out, lines...)
	out = append(out, st.lines[hi:]...)
	if len(out) == 0 {
		out = []string{""}
	}
	st.lines = out
	return nil
}

// SetBufText replaces the region between two 0-indexed row/byte-col
// positions.
func (h *Host) SetBufText(buf nvim.Buffer, startRow, startCol, endRow, endCol int, lines []string) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return err
	}
	if startRow < 0 || endRow < startRow || endRow >= len(st.lines) {
		return ErrIndexOutOfBounds
	}
	first := st.lines[startRow]
	last := st.lines[endRow]
	if startCol > len(first) || endCol > len(last) {
		return ErrIndexOutOfBounds
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	replaced := make([]string, len(lines))
	copy(replaced, lines)
	replaced[0] = first[:startCol] + replaced[0]
	replaced[len(replaced)-1] += last[endCol:]

	out := make([]string, 0, startRow+len(replaced)+len(st.lines)-endRow-1)
	out = append(out, st.lines[:startRow]...)
	out = append(out, replaced...)
	out = append(out, st.lines[endRow+1:]...)
	st.lines = out
	return nil
}

// BufMark returns a mark: 1-indexed row, 0-indexed byte column; (0,0)
// when unset.
func (h *Host) BufMark(buf nvim.Buffer, name string) (nvim.Pos, error) {
	if err := h.guard(); err != nil {
		return nvim.Pos{}, err
	}
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return nvim.Pos{}, err
	}
	return st.marks[name], nil
}

// SetPos sets a mark. The mark name carries a leading apostrophe
// ("'<"); the stored column converts from setpos's 1-indexed form to
// the 0-indexed mark form.
func (h *Host) SetPos(mark string, buf nvim.Buffer, pos nvim.Pos) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return err
	}
	name := strings.TrimPrefix(mark, "'")
	if name == "" {
		return fmt.Errorf("nvimtest: bad mark %q", mark)
	}
	col := pos.Col - 1
	if col < 0 {
		col = 0
	}
	st.marks[name] = nvim.Pos{Row: pos.Row, Col: col}
	return nil
}

// Option returns a global option.
func (h *Host) Option(name string) (any, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	defer h.mu.Unlock()
	v, ok := h.opts[name]
	if !ok {
		return nil, fmt.Errorf("nvimtest: unknown option %q", name)
	}
	return v, nil
}

// SetOption sets a global option.
func (h *Host) SetOption(name string, value any) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	h.opts[name] = value
	return nil
}

// BufOption returns a buffer-local option.
func (h *Host) BufOption(buf nvim.Buffer, name string) (any, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return nil, err
	}
	v, ok := st.opts[name]
	if !ok {
		return nil, fmt.Errorf("nvimtest: unknown buffer option %q", name)
	}
	return v, nil
}

// SetBufOption sets a buffer-local option.
func (h *Host) SetBufOption(buf nvim.Buffer, name string, value any) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return err
	}
	st.opts[name] = value
	return nil
}

// WinOption returns a window-local option.
func (h *Host) WinOption(win nvim.Window, name string) (any, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	defer h.mu.Unlock()
	st, err := h.winState(win)
	if err != nil {
		return nil, err
	}
	v, ok := st.opts[name]
	if !ok {
		return nil, fmt.Errorf("nvimtest: unknown window option %q", name)
	}
	return v, nil
}

// SetWinOption sets a window-local option.
func (h *Host) SetWinOption(win nvim.Window, name string, value any) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	st, err := h.winState(win)
	if err != nil {
		return err
	}
	st.opts[name] = value
	return nil
}

// BufVar returns a buffer-scoped variable.
func (h *Host) BufVar(buf nvim.Buffer, name string) (any, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return nil, err
	}
	v, ok := st.vars[name]
	if !ok {
		return nil, fmt.Errorf("nvimtest: undefined variable b:%s", name)
	}
	return v, nil
}

// SetBufVar sets a buffer-scoped variable.
func (h *Host) SetBufVar(buf nvim.Buffer, name string, value any) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return err
	}
	st.vars[name] = value
	return nil
}

// WinVar returns a window-scoped variable.
func (h *Host) WinVar(win nvim.Window, name string) (any, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	defer h.mu.Unlock()
	st, err := h.winState(win)
	if err != nil {
		return nil, err
	}
	v, ok := st.vars[name]
	if !ok {
		return nil, fmt.Errorf("nvimtest: undefined variable w:%s", name)
	}
	return v, nil
}

// SetWinVar sets a window-scoped variable.
func (h *Host) SetWinVar(win nvim.Window, name string, value any) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	st, err := h.winState(win)
	if err != nil {
		return err
	}
	st.vars[name] = value
	return nil
}

// CreateNamespace creates or looks up an extmark namespace.
func (h *Host) CreateNamespace(name string) (int, error) {
	if err := h.guard(); err != nil {
		return 0, err
	}
	defer h.mu.Unlock()
	if id, ok := h.namespaces[name]; ok {
		return id, nil
	}
	h.nextNS++
	h.namespaces[name] = h.nextNS
	return h.nextNS, nil
}

// ClearNamespace removes all extmarks of a namespace in the 0-indexed
// line range [lo, hi), -1 meaning the end of the buffer.
func (h *Host) ClearNamespace(buf nvim.Buffer, nsID, lo, hi int) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return err
	}
	if hi < 0 {
		hi = len(st.lines)
	}
	for id, mark := range st.extmarks[nsID] {
		if mark.Begin.Row >= lo && mark.Begin.Row < hi {
			delete(st.extmarks[nsID], id)
		}
	}
	return nil
}

// BufExtmarks lists the extmarks of a namespace in id order.
func (h *Host) BufExtmarks(buf nvim.Buffer, nsID int) ([]nvim.Extmark, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return nil, err
	}
	marks := st.extmarks[nsID]
	ids := make([]int, 0, len(marks))
	for id := range marks {
		ids = append(ids, id)
	}
	// Insertion sort; namespaces stay small in tests.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
	out := make([]nvim.Extmark, 0, len(ids))
	for _, id := range ids {
		out = append(out, marks[id])
	}
	return out, nil
}

// SetBufExtmark creates or updates an extmark.
func (h *Host) SetBufExtmark(buf nvim.Buffer, nsID int, mark nvim.Extmark) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return err
	}
	if st.extmarks[nsID] == nil {
		st.extmarks[nsID] = make(map[int]nvim.Extmark)
	}
	st.extmarks[nsID][mark.ID] = mark
	return nil
}

// DelBufExtmark removes an extmark by id.
func (h *Host) DelBufExtmark(buf nvim.Buffer, nsID, id int) error {
	if err := h.guard(); err != nil {
		return err
	}
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return err
	}
	delete(st.extmarks[nsID], id)
	return nil
}

// Input pops a scripted answer; ErrAborted with none left.
func (h *Host) Input(prompt, deflt string) (string, error) {
	if err := h.guard(); err != nil {
		return "", err
	}
	defer h.mu.Unlock()
	if len(h.inputs) == 0 {
		return "", ErrAborted
	}
	answer := h.inputs[0]
	h.inputs = h.inputs[1:]
	return answer, nil
}

// Confirm pops a scripted choice; 0 with none left, as if dismissed.
func (h *Host) Confirm(msg, choices string, deflt int) (int, error) {
	if err := h.guard(); err != nil {
		return 0, err
	}
	defer h.mu.Unlock()
	if len(h.confirms) == 0 {
		return 0, nil
	}
	choice := h.confirms[0]
	h.confirms = h.confirms[1:]
	return choice, nil
}

// GetReg returns a seeded register, empty when unset.
func (h *Host) GetReg(name string) (string, error) {
	if err := h.guard(); err != nil {
		return "", err
	}
	defer h.mu.Unlock()
	return h.regs[name], nil
}

// CWD returns the fake working directory.
func (h *Host) CWD() (string, error) {
	if err := h.guard(); err != nil {
		return "", err
	}
	defer h.mu.Unlock()
	return h.cwd, nil
}

// RuntimePaths returns the fake runtime path entries.
func (h *Host) RuntimePaths() ([]string, error) {
	if err := h.guard(); err != nil {
		return nil, err
	}
	defer h.mu.Unlock()
	return append([]string(nil), h.rtp...), nil
}
