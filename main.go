// termcaster renders a textured raycasting view of a grid map in the
// terminal. Two pixels share each character cell through the upper half
// block, so every column of the terminal is one ray.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"termcaster/internal/config"
	"termcaster/internal/game"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("termcaster", pflag.ContinueOnError)
	config.Flags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	load := func() (*config.World, error) {
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
	world, err := load()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	name := os.Getenv("USER")
	v, err := game.NewViewer(screen, world, game.Options{Name: name, Reload: load})
	if err != nil {
		return err
	}
	v.Run()
	return nil
}
