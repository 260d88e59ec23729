package llm

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultGeminiModel     = "gemini-2.0-flash"
	defaultAnthropicModel  = "claude-3-5-haiku-latest"
	defaultMaxOutputTokens = 300
	defaultTemperature     = 0.7
	defaultTopP            = 0.8
	defaultTopK            = 40
)

// returns the sampling and safety parameters used for every wellness reply
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     defaultTemperature,
		TopP:            defaultTopP,
		TopK:            defaultTopK,
		MaxOutputTokens: defaultMaxOutputTokens,
		SafetySettings: []SafetySetting{
			{Category: HarmCategoryHarassment, Threshold: BlockMediumAndAbove},
			{Category: HarmCategoryHateSpeech, Threshold: BlockMediumAndAbove},
			{Category: HarmCategorySexuallyExplicit, Threshold: BlockMediumAndAbove},
			{Category: HarmCategoryDangerousContent, Threshold: BlockMediumAndAbove},
		},
	}
}

// loads LLM configuration from environment variables
func LoadConfig() (*Config, error) {
	provider := Provider(os.Getenv("GENERATOR_PROVIDER"))
	if provider == "" {
		provider = ProviderGemini // default
	}

	var apiKey, model string

	switch provider {
	case ProviderGemini:
		apiKey = os.Getenv("GOOGLE_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is required")
		}
		model = defaultGeminiModel
	case ProviderAnthropic:
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}
		model = defaultAnthropicModel
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", provider)
	}

	if override := os.Getenv("GENERATOR_MODEL"); override != "" {
		model = override
	}

	generation := DefaultGenerationConfig()

	if maxTokensStr := os.Getenv("GENERATOR_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil && val > 0 {
			generation.MaxOutputTokens = val
		}
	}

	if tempStr := os.Getenv("GENERATOR_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			generation.Temperature = float32(val)
		}
	}

	return &Config{
		Provider:   provider,
		APIKey:     apiKey,
		Model:      model,
		BaseURL:    os.Getenv("GENERATOR_BASE_URL"),
		Generation: generation,
	}, nil
}
