package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/vaidya/server/internal/config"
	"codeberg.org/vaidya/server/internal/llm"
)

func testConfig(t *testing.T, geminiURL string) *config.Config {
	t.Helper()

	catalogPath := filepath.Join(t.TempDir(), "medicines.json")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`[{"medicine_name": "Tulsi Drops", "price": "₹120"}]`), 0o600))

	llmCfg := &llm.Config{
		Provider:   llm.ProviderGemini,
		APIKey:     "test-key",
		Model:      "gemini-2.0-flash",
		BaseURL:    geminiURL,
		Generation: llm.DefaultGenerationConfig(),
	}

	return &config.Config{
		Environment:    "development",
		Port:           "0",
		BaseURL:        "http://localhost:8080",
		SessionSecret:  "test-secret",
		CatalogPath:    catalogPath,
		AllowedOrigins: []string{"*"},
		ModelTimeout:   5 * time.Second,
		LLM:            llmCfg,
	}
}

func geminiStub(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body)) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)

	return srv
}

func do(t *testing.T, srv *Server, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	return rec
}

func TestServer_ChatAndCartFlow(t *testing.T) {
	gemini := geminiStub(t, http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"Namaste. Sip warm water."}]},"finishReason":"STOP"}],"usageMetadata":{"promptTokenCount":42,"candidatesTokenCount":7}}`)

	srv, err := NewServer(testConfig(t, gemini.URL))
	require.NoError(t, err)
	defer srv.Close()

	rec := do(t, srv, http.MethodPost, "/api/chat", `{"message": "I feel cold"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reply": "Namaste. Sip warm water."}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec = do(t, srv, http.MethodPost, "/api/add-to-cart", `{"name": "Tulsi Drops"}`, cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodGet, "/cart", "", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Total: ₹120")

	rec = do(t, srv, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `vaidya_chat_requests_total{outcome="reply"} 1`)
	assert.Contains(t, rec.Body.String(), `vaidya_model_tokens_total{direction="input",model="gemini-2.0-flash"} 42`)
}

func TestServer_UpstreamFailureFallsBack(t *testing.T) {
	gemini := geminiStub(t, http.StatusInternalServerError, `{"error":{"message":"overloaded"}}`)

	srv, err := NewServer(testConfig(t, gemini.URL))
	require.NoError(t, err)
	defer srv.Close()

	rec := do(t, srv, http.MethodPost, "/api/chat", `{"message": "hello"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["reply"], "I am not a medical professional")
}

func TestServer_RedisBackedStores(t *testing.T) {
	mr := miniredis.RunT(t)
	gemini := geminiStub(t, http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`)

	cfg := testConfig(t, gemini.URL)
	cfg.RedisURL = "redis://" + mr.Addr()

	srv, err := NewServer(cfg)
	require.NoError(t, err)
	defer srv.Close()

	rec := do(t, srv, http.MethodPost, "/api/chat", `{"message": "hello"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Contains(t, keys[0], "chat:history:")
}

func TestServer_Pages(t *testing.T) {
	gemini := geminiStub(t, http.StatusOK, `{}`)

	srv, err := NewServer(testConfig(t, gemini.URL))
	require.NoError(t, err)
	defer srv.Close()

	for _, path := range []string{"/", "/ayurvedic-bot", "/marketplace", "/cart", "/about-team", "/library", "/health", "/api/ping", "/static/style.css"} {
		rec := do(t, srv, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func preflight(srv *Server, path, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, path, nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	srv.router.ServeHTTP(rec, req)

	return rec
}

func TestServer_WildcardCORSOmitsCredentials(t *testing.T) {
	gemini := geminiStub(t, http.StatusOK, `{}`)

	srv, err := NewServer(testConfig(t, gemini.URL))
	require.NoError(t, err)
	defer srv.Close()

	rec := preflight(srv, "/api/place-order", "https://evil.example")

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_ExplicitOriginsAllowCredentials(t *testing.T) {
	gemini := geminiStub(t, http.StatusOK, `{}`)

	cfg := testConfig(t, gemini.URL)
	cfg.AllowedOrigins = []string{"https://vaidya.example"}

	srv, err := NewServer(cfg)
	require.NoError(t, err)
	defer srv.Close()

	rec := preflight(srv, "/api/chat", "https://vaidya.example")
	assert.Equal(t, "https://vaidya.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	rec = preflight(srv, "/api/chat", "https://evil.example")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}
