package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/vaidya/server/internal/config"
)

func NewApp(flags config.Flags) *Model {
	client := NewChatClient(flags.Endpoint)

	return &Model{
		state:   StateWelcome,
		client:  client,
		welcome: NewWelcome(client.Endpoint()),
		chat:    NewChatModel(client, resolveWrapWidth(flags.Width)),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// quit from welcome, step back from chat
			if m.state == StateWelcome {
				return m, tea.Quit
			}
			m.state = StateWelcome
			return m, nil
		}

		if m.err != nil {
			m.err = nil
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// the chat viewport tracks size even while hidden
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	case ErrorMsg:
		m.err = msg.err
		return m, nil

	case EnterChatMsg:
		m.state = StateChat
		return m, m.chat.Init()

	case ReplyMsg, ReplyErrorMsg:
		// replies land in the chat even if the user stepped back
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	}

	switch m.state {
	case StateWelcome:
		var cmd tea.Cmd
		m.welcome, cmd = m.welcome.Update(msg, m.client)
		return m, cmd

	case StateChat:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	if m.err != nil {
		return errorView(m.err)
	}

	switch m.state {
	case StateWelcome:
		return m.welcome.View()

	case StateChat:
		return m.chat.View()

	default:
		return "Unknown state"
	}
}

func errorView(err error) string {
	return fmt.Sprintf("\n  Error: %v\n\n  Press any key to continue, Ctrl+C to exit\n", err)
}
