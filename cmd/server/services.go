package main

import (
	"fmt"

	"codeberg.org/vaidya/server/internal/agent"
	"codeberg.org/vaidya/server/internal/config"
	"codeberg.org/vaidya/server/internal/llm"
	"codeberg.org/vaidya/server/internal/metrics"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config, m *metrics.Metrics) (*Services, error) {
	generator, err := llm.NewTextGenerator(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create text generator: %w", err)
	}

	persona, err := agent.LoadPersona(cfg.PersonaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load persona: %w", err)
	}

	return &Services{
		Agent: agent.New(generator, persona, cfg.ModelTimeout).WithUsageObserver(m),
	}, nil
}
