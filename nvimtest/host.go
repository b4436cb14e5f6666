package nvimtest

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dshills/nvimkit/logging"
	"github.com/dshills/nvimkit/nvim"
)

// Sentinel errors reported by the fake host.
var (
	// ErrOffLoop is returned in strict mode when an API method is
	// invoked from a goroutine other than the loop.
	ErrOffLoop = errors.New("nvimtest: API call outside the host loop")

	// ErrInvalidBuffer is returned for operations on unknown buffers.
	ErrInvalidBuffer = errors.New("nvimtest: invalid buffer")

	// ErrInvalidWindow is returned for operations on unknown windows.
	ErrInvalidWindow = errors.New("nvimtest: invalid window")

	// ErrIndexOutOfBounds is returned by strict line ranges that fall
	// outside the buffer.
	ErrIndexOutOfBounds = errors.New("nvimtest: index out of bounds")

	// ErrAborted is returned when a prompt has no scripted answer.
	ErrAborted = errors.New("nvimtest: prompt aborted")
)

// Message is one captured user-facing message.
type Message struct {
	// Text is the message text without the trailing newline.
	Text string
	// Error marks error-styled messages.
	Error bool
}

type bufState struct {
	name     string
	listed   bool
	lines    []string
	marks    map[string]nvim.Pos
	opts     map[string]any
	vars     map[string]any
	extmarks map[int]map[int]nvim.Extmark
}

func newBufState() *bufState {
	return &bufState{
		lines: []string{""},
		marks: make(map[string]nvim.Pos),
		opts: map[string]any{
			"modifiable":    true,
			"fileformat":    "unix",
			"filetype":      "",
			"commentstring": "",
			"bufhidden":     "",
			"buftype":       "",
			"swapfile":      true,
		},
		vars:     make(map[string]any),
		extmarks: make(map[int]map[int]nvim.Extmark),
	}
}

type winState struct {
	buf    nvim.Buffer
	cursor nvim.Pos
	opts   map[string]any
	vars   map[string]any
}

func newWinState(buf nvim.Buffer) *winState {
	return &winState{
		buf:    buf,
		cursor: nvim.Pos{Row: 1, Col: 0},
		opts:   make(map[string]any),
		vars:   make(map[string]any),
	}
}

// Host is an in-memory nvim.Client backed by a real serialized loop.
// Construct with New and release with Close.
type Host struct {
	loop   *loop
	sync   bool
	strict bool
	log    *logging.Logger

	mu         sync.Mutex
	nextBuf    nvim.Buffer
	nextWin    nvim.Window
	bufs       map[nvim.Buffer]*bufState
	wins       map[nvim.Window]*winState
	tabs       map[nvim.Tabpage][]nvim.Window
	curBuf     nvim.Buffer
	curWin     nvim.Window
	curTab     nvim.Tabpage
	opts       map[string]any
	features   map[string]bool
	namespaces map[string]int
	nextNS     int
	messages   []Message
	outPending strings.Builder
	errPending strings.Builder
	inputs     []string
	confirms   []int
	regs       map[string]string
	cwd        string
	rtp        []string

	luaOnce sync.Once
	lua     *luaRunner
}

// Option configures a Host.
type Option func(*Host)

// WithSyncLoop makes Submit run closures inline in the caller instead
// of on a loop goroutine. Strict mode is meaningless with a sync loop.
func WithSyncLoop() Option {
	return func(h *Host) { h.sync = true }
}

// WithStrict makes API methods fail with ErrOffLoop when called from
// any goroutine other than the loop.
func WithStrict() Option {
	return func(h *Host) { h.strict = true }
}

// WithFeature sets a host feature flag queried through Has.
func WithFeature(name string, have bool) Option {
	return func(h *Host) { h.features[name] = have }
}

// WithLogger sets the logger for host-side tracing.
func WithLogger(log *logging.Logger) Option {
	return func(h *Host) {
		if log != nil {
			h.log = log
		}
	}
}

// New creates a fake host with one empty buffer shown in one window.
func New(opts ...Option) *Host {
	h := &Host{
		nextBuf:    1,
		nextWin:    1000,
		bufs:       make(map[nvim.Buffer]*bufState),
		wins:       make(map[nvim.Window]*winState),
		tabs:       make(map[nvim.Tabpage][]nvim.Window),
		opts:       map[string]any{"tabstop": 8},
		features:   map[string]bool{"nvim-0.5": true},
		namespaces: make(map[string]int),
		regs:       make(map[string]string),
		cwd:        "/",
		log:        logging.NullLogger,
	}
	for _, opt := range opts {
		opt(h)
	}

	buf := h.allocBufLocked(true)
	win := h.nextWin
	h.nextWin++
	h.wins[win] = newWinState(buf)
	h.tabs[1] = []nvim.Window{win}
	h.curBuf = buf
	h.curWin = win
	h.curTab = 1

	if !h.sync {
		h.loop = newLoop()
	}
	return h
}

// Close shuts the loop down, draining pending submissions first.
func (h *Host) Close() {
	if h.loop != nil {
		h.loop.close()
	}
	if h.lua != nil {
		h.lua.close()
	}
}

// Submit implements the serialized callback queue.
func (h *Host) Submit(fn func()) {
	if h.sync {
		fn()
		return
	}
	h.loop.submit(fn)
}

// guard enforces strict mode and takes the state lock.
func (h *Host) guard() error {
	if h.strict && !h.sync && !h.loop.onLoop() {
		return ErrOffLoop
	}
	h.mu.Lock()
	return nil
}

func (h *Host) allocBufLocked(listed bool) nvim.Buffer {
	buf := h.nextBuf
	h.nextBuf++
	st := newBufState()
	st.listed = listed
	h.bufs[buf] = st
	return buf
}

func (h *Host) bufState(buf nvim.Buffer) (*bufState, error) {
	st, ok := h.bufs[buf]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBuffer, buf)
	}
	return st, nil
}

func (h *Host) winState(win nvim.Window) (*winState, error) {
	st, ok := h.wins[win]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, win)
	}
	return st, nil
}

// Messages returns the user-facing messages captured so far.
func (h *Host) Messages() []Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}

// ScriptInput queues answers returned by subsequent Input calls.
func (h *Host) ScriptInput(answers ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.inputs = append(h.inputs, answers...)
}

// ScriptConfirm queues choices returned by subsequent Confirm calls.
func (h *Host) ScriptConfirm(choices ...int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.confirms = append(h.confirms, choices...)
}

// SetReg seeds a register for GetReg.
func (h *Host) SetReg(name, value string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.regs[name] = value
}

// SeedBuffer replaces buf's lines and resets its marks, bypassing the
// strict-mode check. Test setup convenience.
func (h *Host) SeedBuffer(buf nvim.Buffer, lines ...string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	st.lines = append([]string(nil), lines...)
	st.marks = make(map[string]nvim.Pos)
	return nil
}

// SeedMark sets a raw (1, 0)-indexed mark, bypassing the strict-mode
// check. Test setup convenience.
func (h *Host) SeedMark(buf nvim.Buffer, name string, pos nvim.Pos) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	st, err := h.bufState(buf)
	if err != nil {
		return err
	}
	st.marks[name] = pos
	return nil
}
