// Package ssh adapts gliderlabs SSH sessions to tcell screens so each
// connected client can drive its own viewer.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty over an SSH channel. Reads are keyboard input,
// writes are terminal output, and window-change requests become resize
// callbacks.
type Tty struct {
	conn  io.ReadWriteCloser
	winCh <-chan gossh.Window

	mu   sync.Mutex
	size tcell.WindowSize
	cb   func()
	once sync.Once
}

// NewTty wraps conn with the initial window win; winCh delivers later
// window changes and is drained for the lifetime of the session.
func NewTty(conn io.ReadWriteCloser, win gossh.Window, winCh <-chan gossh.Window) *Tty {
	return &Tty{conn: conn, winCh: winCh, size: windowSize(win)}
}

func windowSize(win gossh.Window) tcell.WindowSize {
	return tcell.WindowSize{Width: max(win.Width, 1), Height: max(win.Height, 1)}
}

func (t *Tty) Read(b []byte) (int, error)  { return t.conn.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.conn.Write(b) }
func (t *Tty) Close() error                { return t.conn.Close() }

// Start, Stop and Drain are no-ops: the channel is opened and closed by the
// server handler and writes are not buffered.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the last reported terminal size.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size, nil
}

// NotifyResize registers cb, replacing any earlier callback. The first call
// starts forwarding window changes.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.once.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.size = windowSize(win)
				notify := t.cb
				t.mu.Unlock()
				if notify != nil {
					notify()
				}
			}
		}()
	})
}
