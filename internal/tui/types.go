package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateChat
)

// main TUI application model
type Model struct {
	state   AppState
	width   int
	height  int
	err     error
	client  *ChatClient
	welcome *Welcome
	chat    *ChatModel
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to transition to the chat state
type EnterChatMsg struct{}

// one line of the conversation as shown on screen
type ChatMessage struct {
	Role    string
	Content string
}

// chat screen
type ChatModel struct {
	input              textinput.Model
	viewport           viewport.Model
	spinner            spinner.Model
	renderer           *glamour.TermRenderer
	client             *ChatClient
	messages           []ChatMessage
	width              int
	height             int
	wrapWidth          int
	ready              bool
	isFetching         bool
	shouldScrollBottom bool
}

// sent when the server replies
type ReplyMsg struct {
	userMsg string
	reply   string
}

// sent when the request could not be completed
type ReplyErrorMsg struct {
	userMsg string
	err     error
}

// sent after a health probe
type PingResultMsg struct {
	status string
	err    error
}

// welcome screen model
type Welcome struct {
	endpoint string
	input    string
	status   string
	commands []Command
}

// represents an available TUI command
type Command struct {
	Name        string
	Description string
}
