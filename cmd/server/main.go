// termcaster-server serves the raycasting viewer over SSH. Every client
// walks its own camera through one shared scene. Build:
//
//	go build -o termcaster-server ./cmd/server
//
// Usage:
//
//	./termcaster-server [--port 2222] [--key server_host_key] [--config scene.yaml]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"cmp"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/spf13/pflag"
	xssh "golang.org/x/crypto/ssh"
	"golang.org/x/sync/semaphore"

	"termcaster/internal/config"
	"termcaster/internal/game"
	internalssh "termcaster/internal/ssh"
)

// maxNameBytes bounds the SSH user name shown in logs.
const maxNameBytes = 16

func main() {
	fs := pflag.NewFlagSet("termcaster-server", pflag.ExitOnError)
	port := fs.Int("port", 2222, "SSH server port")
	keyFile := fs.String("key", "server_host_key", "path to the PEM-encoded host key (generated if absent)")
	maxViewers := fs.Int64("max-viewers", 16, "concurrent SSH viewers")
	config.Flags(fs)
	fs.Parse(os.Args[1:]) //nolint:errcheck

	world, err := loadWorld(fs)
	if err != nil {
		log.Fatalf("scene: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	animator := game.NewAnimator(world.Textures)
	go animator.Run(ctx, world.Frame)

	h := &handler{
		world:    world,
		animator: animator,
		slots:    semaphore.NewWeighted(*maxViewers),
		logger:   slog.Default(),
	}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: the server only shows a scene.
		HostSigners: []gossh.Signer{loadOrCreateHostKey(*keyFile)},
	}
	go func() {
		<-ctx.Done()
		srv.Close() //nolint:errcheck
	}()

	log.Printf("termcaster SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost", *port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		log.Fatal(err)
	}
}

func loadWorld(fs *pflag.FlagSet) (*config.World, error) {
	v, err := config.New(fs)
	if err != nil {
		return nil, err
	}
	scene, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	return scene.Build()
}

// handler serves one viewer per SSH session.
type handler struct {
	world    *config.World
	animator *game.Animator
	slots    *semaphore.Weighted
	logger   *slog.Logger
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// for the duration of the connection so the SSH session stays open.
func (h *handler) handleSession(s gossh.Session) {
	if !h.slots.TryAcquire(1) {
		fmt.Fprintln(s, "The server is full, try again later.")
		return
	}
	defer h.slots.Release(1)

	screen, err := internalssh.OpenScreen(s)
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintln(s, "termcaster needs a terminal. Connect with: ssh -t -p 2222 <host>")
		return
	}
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	var once sync.Once
	fini := func() { once.Do(screen.Fini) }
	defer fini()
	// A dropped connection unblocks the viewer's PollEvent.
	go func() {
		<-s.Context().Done()
		fini()
	}()

	name := cmp.Or(sanitizeName(s.User()), "anonymous")
	log.Printf("%s connected from %s", name, s.RemoteAddr())
	if err := view(screen, h.world, game.Options{Name: name, Animator: h.animator, Logger: h.logger}); err != nil {
		fmt.Fprintf(s, "Viewer failed: %v\n", err)
	}
	log.Printf("%s disconnected", name)
}

func view(screen tcell.Screen, w *config.World, opts game.Options) error {
	v, err := game.NewViewer(screen, w, opts)
	if err != nil {
		return err
	}
	v.Run()
	return nil
}

// sanitizeName drops control characters from an SSH user name and cuts it to
// maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	out := make([]byte, 0, maxNameBytes)
	for _, r := range name {
		if r == utf8.RuneError || unicode.IsControl(r) {
			continue
		}
		if len(out)+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		out = utf8.AppendRune(out, r)
	}
	return string(out)
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	signer, pemBytes, err := newHostKey()
	if err != nil {
		log.Fatalf("host key: %v", err)
	}
	log.Printf("Generated new ed25519 host key → %s", path)
	// Persist for next run (non-fatal if it fails).
	if err := os.WriteFile(path, pemBytes, 0o600); err != nil {
		log.Printf("save host key: %v", err)
	}
	return signer
}

// newHostKey returns a fresh ed25519 signer and its PEM encoding.
func newHostKey() (gossh.Signer, []byte, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "termcaster server")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal: %w", err)
	}
	return signer, pem.EncodeToMemory(block), nil
}
