// Package tui holds the styles, key names and terminal detection shared by
// virtuallist's Bubble Tea views.
package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how output should be presented.
type OutputMode int

const (
	// OutputModePlain prints unstyled text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints lipgloss-styled text without interaction.
	OutputModeStyled
	// OutputModeInteractive runs a Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// Default terminal dimensions when the size cannot be queried.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// terminal reports the facts DetectOutputMode depends on.
type terminal struct {
	stdoutTTY bool
	stdinTTY  bool
	lookupEnv func(string) (string, bool)
}

// DetectOutputMode picks an output mode for stdout.
// forcePlain and noColor come from flags; ci forces non-interactive output.
func DetectOutputMode(forcePlain, noColor, ci bool) OutputMode {
	return detectOutputMode(forcePlain, noColor, ci, terminal{
		stdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
		stdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		lookupEnv: os.LookupEnv,
	})
}

func detectOutputMode(forcePlain, noColor, ci bool, t terminal) OutputMode {
	if forcePlain || !t.stdoutTTY {
		return OutputModePlain
	}
	if t.lookupEnv != nil {
		if _, ok := t.lookupEnv("NO_COLOR"); ok {
			noColor = true
		}
		if v, ok := t.lookupEnv("TERM"); ok && v == "dumb" {
			return OutputModePlain
		}
		if _, ok := t.lookupEnv("CI"); ok {
			ci = true
		}
	}
	if noColor {
		return OutputModePlain
	}
	if ci || !t.stdinTTY {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// TerminalSize returns the stdout size or the defaults.
func TerminalSize() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return w, h
}
