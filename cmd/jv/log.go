package main

import (
	"log/slog"
	"os"

	"github.com/jvkit/jv/debug"
)

var theLog = debug.NewLogger(os.Stderr, slog.LevelInfo)

// verbose routes the debug output of the jv packages to stderr.
func verbose() {
	theLog = debug.NewLogger(os.Stderr, slog.LevelDebug)
	debug.SetLogger(theLog)
	debug.SetAll(true)
}
