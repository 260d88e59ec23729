package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/vaidya/server/internal/config"
	"codeberg.org/vaidya/server/internal/tui"
)

func main() {
	flags := config.ParseTUIFlags()

	app := tui.NewApp(flags)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running vaidya: %v\n", err)
		os.Exit(1)
	}
}
