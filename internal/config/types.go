package config

import (
	"time"

	"codeberg.org/vaidya/server/internal/llm"
)

type Config struct {
	Environment    string
	Port           string
	BaseURL        string
	SessionSecret  string
	RedisURL       string
	CatalogPath    string
	PersonaPath    string
	AllowedOrigins []string
	ModelTimeout   time.Duration
	LLM            *llm.Config
}

// reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

type Flags struct {
	Endpoint string
	Width    int
}
