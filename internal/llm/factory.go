package llm

import (
	"fmt"
	"strings"
)

// NewClient creates a reasoning-service client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "gemini", "":
		return newGeminiClient(cfg)
	case "openai":
		return newOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported prediction provider: %s", cfg.Provider)
	}
}
