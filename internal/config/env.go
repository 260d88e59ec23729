package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"codeberg.org/vaidya/server/internal/llm"
	"codeberg.org/vaidya/server/internal/logger"
)

const (
	defaultPort         = "8080"
	defaultBaseURL      = "http://localhost:8080"
	defaultCatalogPath  = "data/medicines.json"
	defaultModelTimeout = 30 * time.Second
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	llmConfig, err := llm.LoadConfig()
	if err != nil {
		return nil, err
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	catalogPath := os.Getenv("CATALOG_PATH")
	if catalogPath == "" {
		catalogPath = defaultCatalogPath
	}

	modelTimeout := defaultModelTimeout
	if raw := os.Getenv("MODEL_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("MODEL_TIMEOUT must be a positive duration, got %q", raw)
		}
		modelTimeout = parsed
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret, err = randomSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}

		// cookies signed with this key do not survive a restart
		logger.Warn("SESSION_SECRET not set, using a random per-process key")
	}

	return &Config{
		Environment:    environment,
		Port:           port,
		BaseURL:        baseURL,
		SessionSecret:  sessionSecret,
		RedisURL:       os.Getenv("REDIS_URL"),
		CatalogPath:    catalogPath,
		PersonaPath:    os.Getenv("PERSONA_PATH"),
		AllowedOrigins: parseOrigins(os.Getenv("ALLOWED_ORIGINS")),
		ModelTimeout:   modelTimeout,
		LLM:            llmConfig,
	}, nil
}

func parseOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{"*"}
	}

	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins
}

func randomSecret() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	return hex.EncodeToString(bytes), nil
}
