package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// header, input box and status line
const chatChromeHeight = 7

// returns a new chat screen
func NewChatModel(client *ChatClient, wrapWidth int) *ChatModel {
	ti := textinput.New()
	ti.Placeholder = "describe your wellness concern..."
	ti.Focus()
	ti.CharLimit = 2000
	ti.Width = wrapWidth
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.TextStyle = inputStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorSaffron)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		// fall back to plain text
		renderer = nil
	}

	return &ChatModel{
		input:     ti,
		spinner:   sp,
		renderer:  renderer,
		client:    client,
		wrapWidth: wrapWidth,
	}
}

func (m *ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ChatModel) Update(msg tea.Msg) (*ChatModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-10, minWrapWidth)

		vpHeight := max(msg.Height-chatChromeHeight, 3)
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = vpHeight
		}
		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.isFetching {
				return m, nil
			}

			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}

			m.input.SetValue("")
			m.isFetching = true
			m.messages = append(m.messages, ChatMessage{Role: roleUser, Content: query})
			m.shouldScrollBottom = true
			m.refreshViewport()

			return m, tea.Batch(m.client.SendCmd(query), m.spinner.Tick)

		case "ctrl+l":
			m.messages = nil
			m.refreshViewport()
			return m, nil

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case ReplyMsg:
		m.isFetching = false
		m.messages = append(m.messages, ChatMessage{Role: roleAssistant, Content: msg.reply})
		m.shouldScrollBottom = true
		m.refreshViewport()
		m.input.Focus()
		return m, nil

	case ReplyErrorMsg:
		m.isFetching = false
		m.messages = append(m.messages, ChatMessage{Role: roleError, Content: msg.err.Error()})
		m.shouldScrollBottom = true
		m.refreshViewport()
		m.input.Focus()
		return m, nil

	case spinner.TickMsg:
		if m.isFetching {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *ChatModel) refreshViewport() {
	if !m.ready {
		return
	}

	m.viewport.SetContent(m.renderMessages())

	if m.shouldScrollBottom {
		m.viewport.GotoBottom()
		m.shouldScrollBottom = false
	}
}

func (m *ChatModel) renderMessages() string {
	if len(m.messages) == 0 {
		return infoStyle.Render("namaste! ask about diet, sleep, digestion or daily routine.")
	}

	var b strings.Builder

	for _, msg := range m.messages {
		switch msg.Role {
		case roleUser:
			b.WriteString(userLabelStyle.Render("you"))
			b.WriteString("\n")
			b.WriteString(msg.Content)
			b.WriteString("\n\n")

		case roleAssistant:
			b.WriteString(botLabelStyle.Render("vaidya"))
			b.WriteString("\n")
			b.WriteString(m.renderMarkdown(msg.Content))
			b.WriteString("\n")

		case roleError:
			b.WriteString(errorStyle.Render("error: " + msg.Content))
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func (m *ChatModel) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content + "\n"
	}

	out, err := m.renderer.Render(content)
	if err != nil {
		return content + "\n"
	}

	return out
}

func (m *ChatModel) View() string {
	var b strings.Builder

	header := titleBarStyle.Render("VAIDYA")
	help := helpStyle.Render("[Enter: Send] [Ctrl+L: Clear] [PgUp/PgDn: Scroll] [Ctrl+C: Back]")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left,
		header,
		strings.Repeat(" ", max(0, m.width-lipgloss.Width(header)-lipgloss.Width(help)-2)),
		help,
	))
	b.WriteString("\n\n")

	if m.ready {
		b.WriteString(borderStyle.Width(m.width - 4).Render(m.viewport.View()))
	} else {
		b.WriteString(m.renderMessages())
	}
	b.WriteString("\n")

	b.WriteString(borderStyle.Width(m.width - 4).Padding(0, 1).Render(m.input.View()))
	b.WriteString("\n")

	if m.isFetching {
		b.WriteString(infoStyle.Render(fmt.Sprintf("%s asking vaidya...", m.spinner.View())))
	}

	return b.String()
}

// returns a copy of the on-screen conversation
func (m *ChatModel) Messages() []ChatMessage {
	out := make([]ChatMessage, len(m.messages))
	copy(out, m.messages)
	return out
}
