// Package terminal centralises TTY detection so commands and the TUI layer
// make consistent decisions about colour and interactivity.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Info holds the resolved terminal state for the current process.
type Info struct {
	// IsTerminal is true when stdout is connected to a TTY.
	IsTerminal bool
	// ColorEnabled is true when ANSI colours should be emitted.
	ColorEnabled bool
}

// Detect inspects the environment and returns a populated Info.
// noColor is the user-supplied --no-color flag value; the NO_COLOR
// convention (https://no-color.org/) is honoured as well.
func Detect(noColor bool) Info {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	envNoColor := os.Getenv("NO_COLOR") != ""

	return Info{
		IsTerminal:   isTTY,
		ColorEnabled: isTTY && !noColor && !envNoColor,
	}
}

// IsCI returns true when a well-known CI environment variable is set.
// Spinners and prompts are suppressed in CI.
func IsCI() bool {
	for _, v := range []string{"CI", "GITHUB_ACTIONS", "JENKINS_URL", "GITLAB_CI", "CIRCLECI"} {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}
