package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/civitrans/ptagen/internal/cli"
	"github.com/civitrans/ptagen/pkg/ptagen"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(ptagen.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(ptagen.ExitCodeForError(err))
	}
}
