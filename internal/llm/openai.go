package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ovumlab/ovumsort/internal/common"
	"github.com/ovumlab/ovumsort/internal/model"
)

// openAIClient implements the Client interface for the OpenAI API.
type openAIClient struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	maxRetries  int
}

// newOpenAIClient creates a new OpenAI API client.
func newOpenAIClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 300
	}

	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = 3
	}

	return &openAIClient{
		apiKey:      cfg.APIKey,
		model:       modelName,
		temperature: temperature,
		maxTokens:   maxTokens,
		maxRetries:  maxRetries,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// PredictFromImage sends a candled egg image to OpenAI as a data URL.
func (c *openAIClient) PredictFromImage(ctx context.Context, image model.ImageInput) (model.Prediction, error) {
	if len(image.Data) == 0 {
		return model.Prediction{}, common.ErrEmptyImage
	}

	mimeType := image.MIMEType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image.Data))

	userContent := []map[string]any{
		{"type": "text", "text": imagePrompt},
		{"type": "image_url", "image_url": map[string]string{"url": dataURL}},
	}

	return c.complete(ctx, userContent)
}

// PredictFromMeasurements sends raw egg measurements to OpenAI.
func (c *openAIClient) PredictFromMeasurements(ctx context.Context, longAxisMm, shortAxisMm, weightG float64) (model.Prediction, error) {
	userContent := []map[string]any{
		{"type": "text", "text": measurementPrompt(longAxisMm, shortAxisMm, weightG)},
	}

	return c.complete(ctx, userContent)
}

// complete sends one chat completion request and parses the prediction.
func (c *openAIClient) complete(ctx context.Context, userContent []map[string]any) (model.Prediction, error) {
	requestBody := map[string]any{
		"model": c.model,
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userContent},
		},
		"temperature": c.temperature,
		"max_tokens":  c.maxTokens,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return model.Prediction{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	var content string
	operation := func() error {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.openai.com/v1/chat/completions", strings.NewReader(string(jsonBody)))
		if reqErr != nil {
			return &common.RetryableError{Err: reqErr, Retryable: false}
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, doErr := c.httpClient.Do(req)
		if doErr != nil {
			return fmt.Errorf("request failed: %w", doErr)
		}
		defer func() { _ = resp.Body.Close() }()

		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("failed to read response: %w", readErr)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			return common.ErrRateLimit
		}
		if resp.StatusCode >= 500 {
			return fmt.Errorf("OpenAI API error (status %d): %s", resp.StatusCode, string(body))
		}
		if resp.StatusCode != http.StatusOK {
			return &common.RetryableError{
				Err:       fmt.Errorf("OpenAI API error (status %d): %s", resp.StatusCode, string(body)),
				Retryable: false,
			}
		}

		var response openAIResponse
		if unmarshalErr := json.Unmarshal(body, &response); unmarshalErr != nil {
			return &common.RetryableError{
				Err:       fmt.Errorf("failed to parse response: %w", unmarshalErr),
				Retryable: false,
			}
		}

		if len(response.Choices) == 0 {
			return &common.RetryableError{Err: common.ErrEmptyResponse, Retryable: false}
		}

		content = response.Choices[0].Message.Content
		return nil
	}

	opts := common.RetryOptions{MaxAttempts: c.maxRetries, MaxDelay: 5 * time.Second}
	if err := common.WithRetry(ctx, operation, opts); err != nil {
		return model.Prediction{}, fmt.Errorf("openai request failed: %w", err)
	}

	return parsePrediction(content)
}

// openAIResponse represents the OpenAI chat completion response structure.
type openAIResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}
