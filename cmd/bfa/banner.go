package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	reset           = "\x1b[0m"
	brightWhiteText = "\x1b[38;5;15m"
	blueBackground  = "\x1b[44m"
)

const title = "Brainfuck Assembly interpreter"

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func printBanner(w io.Writer, color bool) {
	fmt.Fprintln(w)
	if color {
		fmt.Fprintln(w, blueBackground+brightWhiteText+title+reset)
	} else {
		fmt.Fprintln(w, title)
	}
	fmt.Fprintln(w)
}
