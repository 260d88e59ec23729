package tui

import (
	"os"
	"time"

	"github.com/charmbracelet/x/term"
)

const (
	roleUser      = "user"
	roleAssistant = "assistant"
	roleError     = "error"
)

const (
	// server model timeout plus headroom
	chatRequestTimeout = 45 * time.Second
	pingTimeout        = 5 * time.Second

	defaultWrapWidth = 80
	minWrapWidth     = 20
)

// picks the wrap width: explicit flag first, then the terminal, then a default
func resolveWrapWidth(flagWidth int) int {
	if flagWidth > 0 {
		return max(flagWidth, minWrapWidth)
	}

	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return max(w-6, minWrapWidth)
	}

	return defaultWrapWidth
}
