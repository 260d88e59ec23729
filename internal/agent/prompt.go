package agent

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed persona.yaml
var defaultPersona []byte

// sentinel used to check that a prompt template actually places the user's message
const userInputSentinel = "\x00user-input-sentinel\x00"

// the assistant's voice: prompt template plus the canned replies handlers fall back to
type Persona struct {
	Name              string `yaml:"name"`
	WordLimit         int    `yaml:"word_limit"`
	SystemPrompt      string `yaml:"system_prompt"`
	FallbackReply     string `yaml:"fallback_reply"`
	EmptyMessageReply string `yaml:"empty_message_reply"`

	tmpl *template.Template
}

type promptData struct {
	UserInput string
	WordLimit int
}

// loads a persona from a YAML file, or the embedded default when path is empty
func LoadPersona(path string) (*Persona, error) {
	if path == "" {
		return ParsePersona(defaultPersona)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("failed to read persona file: %w", err)
	}

	return ParsePersona(data)
}

// parses and validates persona YAML
func ParsePersona(data []byte) (*Persona, error) {
	var p Persona
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse persona: %w", err)
	}

	if strings.TrimSpace(p.SystemPrompt) == "" {
		return nil, fmt.Errorf("persona system_prompt is required")
	}

	if strings.TrimSpace(p.FallbackReply) == "" {
		return nil, fmt.Errorf("persona fallback_reply is required")
	}

	if p.WordLimit <= 0 {
		return nil, fmt.Errorf("persona word_limit must be positive")
	}

	if p.EmptyMessageReply == "" {
		p.EmptyMessageReply = "Please share your wellness concern."
	}

	tmpl, err := template.New("system_prompt").Option("missingkey=error").Parse(p.SystemPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse system_prompt template: %w", err)
	}
	p.tmpl = tmpl

	rendered, err := p.Render(userInputSentinel)
	if err != nil {
		return nil, err
	}

	if !strings.Contains(rendered, userInputSentinel) {
		return nil, fmt.Errorf("system_prompt must contain {{.UserInput}}")
	}

	return &p, nil
}

// substitutes the user's message into the system prompt
func (p *Persona) Render(userInput string) (string, error) {
	var builder strings.Builder

	if err := p.tmpl.Execute(&builder, promptData{UserInput: userInput, WordLimit: p.WordLimit}); err != nil {
		return "", fmt.Errorf("failed to render system prompt: %w", err)
	}

	return strings.TrimSpace(builder.String()), nil
}
