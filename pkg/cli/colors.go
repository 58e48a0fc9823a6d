package cli

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// =============================================================================
// Color support detection
// =============================================================================

var (
	colorOnce sync.Once
	colorOn   bool
)

func detectColor() bool {
	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

func useColor() bool {
	colorOnce.Do(func() {
		colorOn = detectColor()
	})
	return colorOn
}

// =============================================================================
// ANSI escape code helpers
// =============================================================================

func ansiWrap(code, s string) string {
	if !useColor() {
		return s
	}
	return code + s + "\x1b[0m"
}

func red(s string) string    { return ansiWrap("\x1b[31m", s) }
func green(s string) string  { return ansiWrap("\x1b[32m", s) }
func yellow(s string) string { return ansiWrap("\x1b[33m", s) }
func dim(s string) string    { return ansiWrap("\x1b[2m", s) }
