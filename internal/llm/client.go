// Package llm provides clients for the external egg sexing reasoning service.
//
// The rest of the application treats prediction as an opaque call with its
// own latency and failure profile: one input goes in, one Prediction comes
// back, or the call errors. Retry behavior for transient service failures
// lives inside the clients here; callers never retry.
package llm

import (
	"context"

	"github.com/ovumlab/ovumsort/internal/model"
)

// Client defines the interface for reasoning-service providers.
type Client interface {
	// PredictFromImage asks the service to sex an egg from a candled image.
	// Callers must never pass empty or undecodable image data.
	PredictFromImage(ctx context.Context, image model.ImageInput) (model.Prediction, error)

	// PredictFromMeasurements asks the service to sex an egg from its raw
	// measurements. The service is free to derive the shape index itself.
	PredictFromMeasurements(ctx context.Context, longAxisMm, shortAxisMm, weightG float64) (model.Prediction, error)
}

// Config holds provider configuration.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	MaxRetries  int
}
