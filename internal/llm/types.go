package llm

import (
	"context"
	"errors"
)

// represents different LLM providers
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
)

// conversation roles as the generation APIs expect them
const (
	RoleUser  = "user"
	RoleModel = "model"
)

var (
	ErrBlocked       = errors.New("response blocked by safety filters")
	ErrEmptyResponse = errors.New("no content in response")
)

// generates text from a prompt and optional prior turns
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error)
	Model() string
}

// represents a single conversation turn
type Message struct {
	Role    string `json:"role"`    // "user" or "model"
	Content string `json:"content"` // message content
}

type TextGenerationRequest struct {
	Messages []Message // prior turns followed by the new user turn
}

type TextGenerationResponse struct {
	Text  string
	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

type HarmCategory string

const (
	HarmCategoryHarassment       HarmCategory = "HARM_CATEGORY_HARASSMENT"
	HarmCategoryHateSpeech       HarmCategory = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategorySexuallyExplicit HarmCategory = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategoryDangerousContent HarmCategory = "HARM_CATEGORY_DANGEROUS_CONTENT"
)

type HarmBlockThreshold string

const (
	BlockLowAndAbove    HarmBlockThreshold = "BLOCK_LOW_AND_ABOVE"
	BlockMediumAndAbove HarmBlockThreshold = "BLOCK_MEDIUM_AND_ABOVE"
	BlockOnlyHigh       HarmBlockThreshold = "BLOCK_ONLY_HIGH"
)

type SafetySetting struct {
	Category  HarmCategory
	Threshold HarmBlockThreshold
}

// fixed sampling and safety parameters, built once at startup
type GenerationConfig struct {
	Temperature     float32
	TopP            float32
	TopK            int
	MaxOutputTokens int
	SafetySettings  []SafetySetting
}

// holds configuration for LLM initialization
type Config struct {
	Provider   Provider
	APIKey     string
	Model      string // e.g., "gemini-2.0-flash"
	BaseURL    string // optional endpoint override
	Generation GenerationConfig
}
