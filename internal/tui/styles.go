package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorLeaf      = lipgloss.Color("#6FAF6B")
	colorSaffron   = lipgloss.Color("#F4A300")
	colorRed       = lipgloss.Color("#E05A47")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorLeaf).
			Align(lipgloss.Center).
			MarginTop(1).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Align(lipgloss.Center).
			MarginBottom(2)

	titleBarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	commandStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	commandDescStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				PaddingLeft(1)

	inputStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorGray)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(colorSaffron).
			Bold(true)

	botLabelStyle = lipgloss.NewStyle().
			Foreground(colorLeaf).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true)
)

const logo = `
  ██╗   ██╗ █████╗ ██╗██████╗ ██╗   ██╗ █████╗
  ██║   ██║██╔══██╗██║██╔══██╗╚██╗ ██╔╝██╔══██╗
  ██║   ██║███████║██║██║  ██║ ╚████╔╝ ███████║
  ╚██╗ ██╔╝██╔══██║██║██║  ██║  ╚██╔╝  ██╔══██║
   ╚████╔╝ ██║  ██║██║██████╔╝   ██║   ██║  ██║
    ╚═══╝  ╚═╝  ╚═╝╚═╝╚═════╝    ╚═╝   ╚═╝  ╚═╝
`
