package ssh

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// DefaultTerm is used when the client does not send TERM.
const DefaultTerm = "xterm-256color"

// ErrNoPTY is returned for sessions opened without a pseudo-terminal.
var ErrNoPTY = errors.New("ssh: session has no pty")

// allowedTerms lists the terminal types a client may request. TERM selects a
// terminfo entry, so anything else falls back to DefaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// Allowed reports whether term is an accepted TERM value.
func Allowed(term string) bool { return allowedTerms[term] }

// Term picks the terminal type from a session environment.
func Term(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok && Allowed(term) {
			return term
		}
	}
	return DefaultTerm
}

// termMu serializes the process-wide TERM swap tcell reads during setup.
var termMu sync.Mutex

// OpenScreen returns an initialized tcell screen drawing to the session's
// pty. The caller must Fini it.
func OpenScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	term := Term(s.Environ())
	if Allowed(pty.Term) {
		term = pty.Term
	}

	tty := NewTty(s, pty.Window, winCh)
	termMu.Lock()
	prev, had := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if had {
		_ = os.Setenv("TERM", prev)
	} else {
		_ = os.Unsetenv("TERM")
	}
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal %s: %w", term, err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}
