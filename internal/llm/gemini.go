package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

const (
	geminiBaseURL       = "https://generativelanguage.googleapis.com/v1beta"
	finishReasonSafety  = "SAFETY"
	finishReasonBlocked = "BLOCKLIST"
)

// shared HTTP client for Gemini API calls
var geminiHTTPClient = newHTTPClient()

// rate limiter for Gemini API calls (15 requests/second with burst capacity of 5)
var geminiRateLimiter = rate.NewLimiter(15, 5)

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
	SafetySettings   []geminiSafetySetting  `json:"safetySettings,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float32 `json:"temperature"`
	TopP            float32 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiSafetySetting struct {
	Category  HarmCategory       `json:"category"`
	Threshold HarmBlockThreshold `json:"threshold"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
}

type GeminiConfig struct {
	APIKey     string
	Model      string // e.g., "gemini-2.0-flash"
	BaseURL    string // defaults to the public generative language endpoint
	Generation GenerationConfig
}

type GeminiGenerator struct {
	config     GeminiConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewGeminiGenerator(config GeminiConfig) *GeminiGenerator {
	if config.Model == "" {
		config.Model = defaultGeminiModel
	}

	if config.BaseURL == "" {
		config.BaseURL = geminiBaseURL
	}

	if config.Generation.MaxOutputTokens == 0 {
		config.Generation = DefaultGenerationConfig()
	}

	return &GeminiGenerator{
		config:     config,
		httpClient: geminiHTTPClient,
		limiter:    geminiRateLimiter,
	}
}

func (g *GeminiGenerator) Model() string {
	return g.config.Model
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error) {
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("at least one message is required")
	}

	contents := make([]geminiContent, 0, len(req.Messages))
	for _, msg := range req.Messages {
		contents = append(contents, geminiContent{
			Role:  msg.Role,
			Parts: []geminiPart{{Text: msg.Content}},
		})
	}

	safety := make([]geminiSafetySetting, 0, len(g.config.Generation.SafetySettings))
	for _, setting := range g.config.Generation.SafetySettings {
		safety = append(safety, geminiSafetySetting(setting))
	}

	reqBody := geminiRequest{
		Contents: contents,
		GenerationConfig: geminiGenerationConfig{
			Temperature:     g.config.Generation.Temperature,
			TopP:            g.config.Generation.TopP,
			TopK:            g.config.Generation.TopK,
			MaxOutputTokens: g.config.Generation.MaxOutputTokens,
		},
		SafetySettings: safety,
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.config.BaseURL, g.config.Model)
	headers := map[string]string{"x-goog-api-key": g.config.APIKey}

	var apiResp geminiResponse
	if err := postJSON(ctx, g.httpClient, g.limiter, url, headers, reqBody, &apiResp); err != nil {
		return nil, err
	}

	if apiResp.PromptFeedback != nil && apiResp.PromptFeedback.BlockReason != "" {
		return nil, fmt.Errorf("%w: prompt blocked (%s)", ErrBlocked, apiResp.PromptFeedback.BlockReason)
	}

	if len(apiResp.Candidates) == 0 {
		return nil, ErrEmptyResponse
	}

	candidate := apiResp.Candidates[0]

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		text.WriteString(part.Text)
	}

	reply := strings.TrimSpace(text.String())
	if reply == "" {
		if candidate.FinishReason == finishReasonSafety || candidate.FinishReason == finishReasonBlocked {
			return nil, fmt.Errorf("%w: finish reason %s", ErrBlocked, candidate.FinishReason)
		}
		return nil, ErrEmptyResponse
	}

	return &TextGenerationResponse{
		Text: reply,
		Usage: Usage{
			InputTokens:  apiResp.UsageMetadata.PromptTokenCount,
			OutputTokens: apiResp.UsageMetadata.CandidatesTokenCount,
		},
	}, nil
}
