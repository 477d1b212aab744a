package ssh

import (
	"bytes"
	"io"
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

type pipeConn struct {
	in     *bytes.Reader
	out    bytes.Buffer
	closed bool
}

func (c *pipeConn) Read(b []byte) (int, error)  { return c.in.Read(b) }
func (c *pipeConn) Write(b []byte) (int, error) { return c.out.Write(b) }
func (c *pipeConn) Close() error                { c.closed = true; return nil }

func TestTtyPassesBytesThrough(t *testing.T) {
	conn := &pipeConn{in: bytes.NewReader([]byte("wasd"))}
	tty := NewTty(conn, gossh.Window{Width: 80, Height: 24}, nil)

	got, err := io.ReadAll(tty)
	if err != nil || string(got) != "wasd" {
		t.Errorf("read %q, %v; want wasd", got, err)
	}
	if _, err := tty.Write([]byte("\x1b[H")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if conn.out.String() != "\x1b[H" {
		t.Errorf("wrote %q", conn.out.String())
	}
	if err := tty.Close(); err != nil || !conn.closed {
		t.Errorf("close did not reach the channel")
	}
}

func TestTtyWindowSize(t *testing.T) {
	tests := []struct {
		win          gossh.Window
		wantW, wantH int
	}{
		{gossh.Window{Width: 80, Height: 24}, 80, 24},
		{gossh.Window{Width: 0, Height: 0}, 1, 1},
	}
	for _, tt := range tests {
		ws, err := NewTty(&pipeConn{}, tt.win, nil).WindowSize()
		if err != nil {
			t.Fatalf("WindowSize: %v", err)
		}
		if ws.Width != tt.wantW || ws.Height != tt.wantH {
			t.Errorf("window %+v gave %dx%d, want %dx%d", tt.win, ws.Width, ws.Height, tt.wantW, tt.wantH)
		}
	}
}

func TestTtyNotifyResize(t *testing.T) {
	winCh := make(chan gossh.Window)
	tty := NewTty(&pipeConn{}, gossh.Window{Width: 80, Height: 24}, winCh)

	resized := make(chan struct{}, 1)
	tty.NotifyResize(func() { resized <- struct{}{} })
	winCh <- gossh.Window{Width: 120, Height: 40}

	select {
	case <-resized:
	case <-time.After(5 * time.Second):
		t.Fatal("resize callback never ran")
	}
	ws, _ := tty.WindowSize()
	if ws.Width != 120 || ws.Height != 40 {
		t.Errorf("size %dx%d after resize, want 120x40", ws.Width, ws.Height)
	}
	close(winCh)
}

func TestTerm(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		want    string
	}{
		{"allowed", []string{"LANG=C", "TERM=tmux"}, "tmux"},
		{"missing", []string{"LANG=C"}, DefaultTerm},
		{"unknown", []string{"TERM=evil-term"}, DefaultTerm},
		{"path traversal", []string{"TERM=../../../etc/passwd"}, DefaultTerm},
		{"empty", []string{"TERM="}, DefaultTerm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Term(tt.environ); got != tt.want {
				t.Errorf("Term(%q) = %q, want %q", tt.environ, got, tt.want)
			}
		})
	}
}

func TestAllowed(t *testing.T) {
	for term, want := range map[string]bool{
		"xterm-256color":        true,
		"linux":                 true,
		"vt100":                 true,
		"rxvt-unicode-256color": true,
		"xterm-kitty":           false,
		"":                      false,
	} {
		if got := Allowed(term); got != want {
			t.Errorf("Allowed(%q) = %v, want %v", term, got, want)
		}
	}
}
