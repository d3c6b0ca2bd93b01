package main

import "os"

// isTerminal reports whether stdout is an interactive terminal, so --dump
// can skip ANSI coloring when piped to a file or another process.
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
