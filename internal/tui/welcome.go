package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// returns a new welcome screen
func NewWelcome(endpoint string) *Welcome {
	return &Welcome{
		endpoint: endpoint,
		commands: []Command{
			{Name: "chat", Description: "talk to the wellness assistant"},
			{Name: "ping", Description: "check that the server is up"},
			{Name: "quit", Description: "exit vaidya"},
		},
	}
}

func (m *Welcome) Update(msg tea.Msg, client *ChatClient) (*Welcome, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			cmd := m.executeCommand(client)
			m.input = ""
			return m, cmd
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.input += msg.String()
			}
		}

	case PingResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("server unreachable: %v", msg.err)
		} else {
			m.status = "server status: " + msg.status
		}
	}

	return m, nil
}

func (m *Welcome) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("ayurvedic wellness guidance"))
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("server: " + m.endpoint))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("commands:"))
	b.WriteString("\n\n")

	for _, cmd := range m.commands {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			commandStyle.Render(cmd.Name),
			commandDescStyle.Render("- "+cmd.Description),
		))
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("> ") + inputStyle.Render(m.input+"_"))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(infoStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("type a command and press enter. press ctrl+c to quit."))

	return b.String()
}

func (m *Welcome) executeCommand(client *ChatClient) tea.Cmd {
	cmd := strings.TrimSpace(m.input)

	switch cmd {
	case "quit":
		return tea.Quit

	case "ping":
		m.status = "pinging..."
		return client.PingCmd()

	case "chat":
		return func() tea.Msg {
			return EnterChatMsg{}
		}

	default:
		if cmd != "" {
			m.status = fmt.Sprintf("unknown command: %s", cmd)
		}
		return nil
	}
}
