// termcaster-window shows the same scenes as the terminal viewer in a
// desktop window.
//
//	go build -o termcaster-window ./cmd/window
//	./termcaster-window [--width 320] [--height 200] [--scale 3] [--config scene.yaml]
package main

import (
	"log"
	"os"

	"github.com/spf13/pflag"

	"termcaster/internal/config"
	"termcaster/internal/window"
)

func main() {
	fs := pflag.NewFlagSet("termcaster-window", pflag.ExitOnError)
	width := fs.Int("width", 320, "render width in pixels")
	height := fs.Int("height", 200, "render height in pixels")
	scale := fs.Int("scale", 3, "window pixels per rendered pixel")
	config.Flags(fs)
	fs.Parse(os.Args[1:]) //nolint:errcheck

	v, err := config.New(fs)
	if err != nil {
		log.Fatal(err)
	}
	scene, err := config.Load(v)
	if err != nil {
		log.Fatal(err)
	}
	world, err := scene.Build()
	if err != nil {
		log.Fatalf("scene: %v", err)
	}
	g, err := window.New(world, *width, *height)
	if err != nil {
		log.Fatal(err)
	}
	if err := window.Run(g, "termcaster", max(*scale, 1)); err != nil {
		log.Fatal(err)
	}
}
