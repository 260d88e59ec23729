package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicGenerateText_MapsModelRole(t *testing.T) {
	var captured anthropicRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Write([]byte(`{"content": [{"type": "text", "text": " Namaste. "}], "stop_reason": "end_turn", "usage": {"input_tokens": 3, "output_tokens": 2}}`)) //nolint:errcheck
	}))
	defer server.Close()

	a := NewAnthropicGenerator(AnthropicConfig{APIKey: "test-key", BaseURL: server.URL})
	a.httpClient = server.Client()

	resp, err := a.GenerateText(context.Background(), TextGenerationRequest{
		Messages: []Message{
			{Role: RoleUser, Content: "hi"},
			{Role: RoleModel, Content: "hello"},
			{Role: RoleUser, Content: "help"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Namaste.", resp.Text)
	assert.Equal(t, 3, resp.Usage.InputTokens)
	assert.Equal(t, 2, resp.Usage.OutputTokens)
	assert.Equal(t, 300, captured.MaxTokens)
	require.Len(t, captured.Messages, 3)
	assert.Equal(t, "assistant", captured.Messages[1].Role)
	assert.Equal(t, "user", captured.Messages[2].Role)
}

func TestNewTextGenerator(t *testing.T) {
	gen, err := NewTextGenerator(&Config{Provider: ProviderGemini, APIKey: "k", Model: "gemini-x"})
	require.NoError(t, err)
	assert.Equal(t, "gemini-x", gen.Model())

	gen, err = NewTextGenerator(&Config{Provider: ProviderAnthropic, APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, defaultAnthropicModel, gen.Model())

	_, err = NewTextGenerator(&Config{Provider: "unknown"})
	assert.Error(t, err)

	_, err = NewTextGenerator(nil)
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("GENERATOR_PROVIDER", "")
	t.Setenv("GOOGLE_API_KEY", "google-key")
	t.Setenv("GENERATOR_MODEL", "")
	t.Setenv("GENERATOR_MAX_TOKENS", "500")
	t.Setenv("GENERATOR_TEMPERATURE", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "google-key", cfg.APIKey)
	assert.Equal(t, defaultGeminiModel, cfg.Model)
	assert.Equal(t, 500, cfg.Generation.MaxOutputTokens)
	assert.Len(t, cfg.Generation.SafetySettings, 4)
}

func TestLoadConfig_AnthropicRequiresKey(t *testing.T) {
	t.Setenv("GENERATOR_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}
