// Command dwm is a dynamic tiling window manager for X11: a direct
// reimplementation of suckless dwm's client/monitor/tag model and five
// layouts, built around the same reparenting-free, border-colored-window
// design and driven by this package's table of key/button bindings
// (config.go).
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/phsym/console-slog"
)

const version = "1.0"

func main() {
	showVersion := flag.Bool("v", false, "print version information")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: dwm [-v]\n")
	}
	flag.Parse()
	if *showVersion {
		fmt.Fprintf(os.Stderr, "dwm-%s\n", version)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{Level: slog.LevelInfo})))

	if err := setupDisplay(); err != nil {
		slog.Error("open display failed", "err", err)
		os.Exit(1)
	}
	if err := becomeTheWM(); err != nil {
		slog.Error("become window manager failed", "err", err)
		os.Exit(1)
	}
	if err := initAtoms(); err != nil {
		slog.Error("intern atoms failed", "err", err)
		os.Exit(1)
	}
	if err := updateGeometry(); err != nil {
		slog.Error("query monitor geometry failed", "err", err)
		os.Exit(1)
	}
	if err := initDrawing(); err != nil {
		slog.Error("initialize drawing failed", "err", err)
		os.Exit(1)
	}
	for m := monStart; m != nil; m = m.next {
		if err := createBar(m); err != nil {
			slog.Error("create bar failed", "err", err)
			os.Exit(1)
		}
		resizeBar(m)
	}
	grabKeys()
	focus(nil)

	if err := scanExisting(); err != nil {
		slog.Warn("scan existing windows failed", "err", err)
	}

	slog.Info("dwm started", "version", version, "monitors", monitorCount())
	run()

	ungrabKeys()
	drawAdapter.Free()
}

func monitorCount() int {
	n := 0
	for m := monStart; m != nil; m = m.next {
		n++
	}
	return n
}
