package llm

import (
	"fmt"
)

// creates a text generator for the configured provider
func NewTextGenerator(config *Config) (TextGenerator, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiGenerator(GeminiConfig{
			APIKey:     config.APIKey,
			Model:      config.Model,
			BaseURL:    config.BaseURL,
			Generation: config.Generation,
		}), nil
	case ProviderAnthropic:
		return NewAnthropicGenerator(AnthropicConfig{
			APIKey:     config.APIKey,
			Model:      config.Model,
			BaseURL:    config.BaseURL,
			Generation: config.Generation,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", config.Provider)
	}
}
