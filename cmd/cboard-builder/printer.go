// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

func printSuccess(w io.Writer, format string, a ...any) {
	green.Fprintf(w, "✓ "+format+"\n", a...)
}

func printWarning(w io.Writer, format string, a ...any) {
	yellow.Fprintf(w, "! "+format+"\n", a...)
}

func printHeading(w io.Writer, format string, a ...any) {
	cyan.Fprintf(w, format+"\n", a...)
}

// printError reports a fatal command error on stderr.
func printError(err error) {
	red.Fprint(os.Stderr, "Error: ")
	fmt.Fprintln(os.Stderr, err)
}
