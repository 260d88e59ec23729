package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"codeberg.org/vaidya/server/internal/llm"
)

const defaultTimeout = 30 * time.Second

func New(generator llm.TextGenerator, persona *Persona, timeout time.Duration) *Agent {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Agent{
		generator: generator,
		persona:   persona,
		timeout:   timeout,
	}
}

// reports token usage of every successful call to observer
func (a *Agent) WithUsageObserver(observer UsageObserver) *Agent {
	a.usage = observer
	return a
}

func (a *Agent) Persona() *Persona {
	return a.persona
}

func (a *Agent) Model() string {
	return a.generator.Model()
}

// returns the model's reply to userInput. With no history the templated prompt is sent
// alone; otherwise history is replayed and the templated prompt is the next user turn.
// Every upstream failure, including timeouts and safety blocks, wraps ErrUpstream.
func (a *Agent) Reply(ctx context.Context, userInput string, history []llm.Message) (string, error) {
	prompt, err := a.persona.Render(userInput)
	if err != nil {
		return "", err
	}

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: prompt})

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.generator.GenerateText(ctx, llm.TextGenerationRequest{Messages: messages})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	if a.usage != nil {
		a.usage.ObserveTokens(a.generator.Model(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
	}

	reply := strings.TrimSpace(resp.Text)
	if reply == "" {
		return "", fmt.Errorf("%w: %w", ErrUpstream, llm.ErrEmptyResponse)
	}

	return reply, nil
}
