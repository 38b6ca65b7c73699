package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/ovumlab/ovumsort/internal/common"
	"github.com/ovumlab/ovumsort/internal/model"
)

// geminiClient implements the Client interface using the Gemini API.
type geminiClient struct {
	apiKey      string
	model       string
	temperature float32
	maxRetries  int
}

// newGeminiClient creates a new Gemini client.
func newGeminiClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	modelName := cfg.Model
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	temperature := float32(cfg.Temperature)
	if temperature == 0 {
		temperature = 0.2
	}

	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = 3
	}

	return &geminiClient{
		apiKey:      strings.TrimSpace(cfg.APIKey),
		model:       strings.TrimSpace(modelName),
		temperature: temperature,
		maxRetries:  maxRetries,
	}, nil
}

// PredictFromImage sends a candled egg image to Gemini.
func (c *geminiClient) PredictFromImage(ctx context.Context, image model.ImageInput) (model.Prediction, error) {
	if len(image.Data) == 0 {
		return model.Prediction{}, common.ErrEmptyImage
	}

	mimeType := image.MIMEType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	return c.generate(ctx,
		genai.Text(imagePrompt),
		&genai.Blob{MIMEType: mimeType, Data: image.Data},
	)
}

// PredictFromMeasurements sends raw egg measurements to Gemini.
func (c *geminiClient) PredictFromMeasurements(ctx context.Context, longAxisMm, shortAxisMm, weightG float64) (model.Prediction, error) {
	return c.generate(ctx, genai.Text(measurementPrompt(longAxisMm, shortAxisMm, weightG)))
}

// generate runs one prediction request with strict-JSON output and retries
// on transient service failures.
func (c *geminiClient) generate(ctx context.Context, parts ...genai.Part) (model.Prediction, error) {
	cl, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return model.Prediction{}, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer func() { _ = cl.Close() }()

	m := cl.GenerativeModel(c.model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(c.temperature),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}

	var content string
	operation := func() error {
		resp, genErr := m.GenerateContent(ctx, parts...)
		if genErr != nil {
			return genErr
		}
		text := firstText(resp)
		if text == "" {
			// An empty candidate list never improves on retry.
			return &common.RetryableError{Err: common.ErrEmptyResponse, Retryable: false}
		}
		content = text
		return nil
	}

	if err := common.WithRetry(ctx, operation, common.RetryOptions{MaxAttempts: c.maxRetries}); err != nil {
		return model.Prediction{}, fmt.Errorf("gemini request failed: %w", err)
	}

	return parsePrediction(content)
}

// firstText returns the first text part of the first candidate.
func firstText(resp *genai.GenerateContentResponse) string {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				return string(text)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
