package chat

import (
	"context"

	"codeberg.org/vaidya/server/internal/agent"
	"codeberg.org/vaidya/server/internal/llm"
)

// model gateway as seen by the chat handler
type Replier interface {
	Reply(ctx context.Context, userInput string, history []llm.Message) (string, error)
	Persona() *agent.Persona
	Model() string
}

// request payload for a chat message
type Request struct {
	Message string `json:"message"`
}

// response payload for a chat message
type Response struct {
	Reply string `json:"reply"`
}
