package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// talks to the chat REST API; the cookie jar keeps one server session across messages
type ChatClient struct {
	endpoint   string
	httpClient *http.Client
}

// creates a new chat client for the given server base URL
func NewChatClient(endpoint string) *ChatClient {
	jar, _ := cookiejar.New(nil) //nolint:errcheck // nil options never fail

	return &ChatClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: chatRequestTimeout,
			Jar:     jar,
		},
	}
}

func (c *ChatClient) Endpoint() string {
	return c.endpoint
}

// sends one message and returns the assistant's reply
func (c *ChatClient) Send(ctx context.Context, message string) (string, error) {
	payloadBytes, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/chat", bytes.NewReader(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	// handle error responses
	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return "", fmt.Errorf("server error %d: %s", resp.StatusCode, errResp.Error)
		}
		return "", fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return result.Reply, nil
}

// checks the server health endpoint
func (c *ChatClient) Ping(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/health", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	var result healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return result.Status, nil
}

// returns a tea.Cmd that sends a chat message
func (c *ChatClient) SendCmd(message string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chatRequestTimeout)
		defer cancel()

		reply, err := c.Send(ctx, message)
		if err != nil {
			return ReplyErrorMsg{userMsg: message, err: err}
		}

		return ReplyMsg{userMsg: message, reply: reply}
	}
}

// returns a tea.Cmd that probes server health
func (c *ChatClient) PingCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()

		status, err := c.Ping(ctx)
		return PingResultMsg{status: status, err: err}
	}
}

// REST API request/response types

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
