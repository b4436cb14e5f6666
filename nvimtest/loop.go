package nvimtest

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// gid returns the calling goroutine's id. Test-only introspection for
// strict mode's off-loop detection.
func gid() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	// First line is "goroutine N [state]:".
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// loop is a serialized callback queue: one goroutine draining a
// channel in FIFO order.
type loop struct {
	mu     sync.Mutex
	queue  chan func()
	done   chan struct{}
	closed bool

	gidMu  sync.Mutex
	loopID uint64
}

func newLoop() *loop {
	l := &loop{
		queue: make(chan func(), 256),
		done:  make(chan struct{}),
	}
	go l.run()
	return l
}

func (l *loop) run() {
	l.gidMu.Lock()
	l.loopID = gid()
	l.gidMu.Unlock()

	defer close(l.done)
	for fn := range l.queue {
		fn()
	}
}

// submit queues fn. Submissions after close are dropped.
func (l *loop) submit(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.queue <- fn
}

// close drains the queue and waits for the loop goroutine to exit.
func (l *loop) close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.closed = true
	close(l.queue)
	l.mu.Unlock()
	<-l.done
}

// onLoop reports whether the caller is the loop goroutine.
func (l *loop) onLoop() bool {
	l.gidMu.Lock()
	id := l.loopID
	l.gidMu.Unlock()
	return id != 0 && id == gid()
}
