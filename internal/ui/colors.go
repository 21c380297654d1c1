// Package ui styles terminal output. Styling is switched off when stdout is
// not a terminal or NO_COLOR is set, so piped CSV and JSON stay clean.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI styles. They are empty strings while colour is disabled.
var (
	ColorReset = "\033[0m"
	ColorBold  = "\033[1m"
	ColorDim   = "\033[2m"

	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
)

var enabled = true

func init() {
	if _, ok := os.LookupEnv("NO_COLOR"); ok || !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		Disable()
	}
}

// Disable turns all styling off for the rest of the process.
func Disable() {
	enabled = false
	ColorReset, ColorBold, ColorDim = "", "", ""
	ColorCyan, ColorGreen, ColorYellow, ColorRed = "", "", "", ""
}

// Enabled reports whether output is styled.
func Enabled() bool { return enabled }

func Bold(s string) string {
	return ColorBold + s + ColorReset
}

func Success(s string) string {
	return ColorGreen + s + ColorReset
}

func Info(s string) string {
	return ColorDim + ColorYellow + s + ColorReset
}

func Warn(s string) string {
	return ColorYellow + s + ColorReset
}

func Error(s string) string {
	return ColorRed + s + ColorReset
}
