package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/ovumlab/ovumsort/internal/llm"
)

// createPredictionClient creates a reasoning-service client from configuration.
// Shared by the analyze and calculate commands.
func createPredictionClient() (llm.Client, error) {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = "gemini"
	}

	cfg := llm.Config{
		Provider:    provider,
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
		MaxRetries:  viper.GetInt("llm.max_retries"),
	}

	// API key: config first, then the provider's conventional env var.
	switch provider {
	case "gemini":
		apiKey := viper.GetString("llm.gemini_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("gemini API key not found in config or GEMINI_API_KEY environment variable")
		}
		cfg.APIKey = apiKey

	case "openai":
		apiKey := viper.GetString("llm.openai_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("OpenAI API key not found in config or OPENAI_API_KEY environment variable")
		}
		cfg.APIKey = apiKey

	default:
		return nil, fmt.Errorf("unsupported prediction provider: %s", provider)
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction client: %w", err)
	}

	return client, nil
}
