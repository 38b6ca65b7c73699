package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/ovumlab/ovumsort/internal/model"
)

// MockPredictor is a test implementation of the Predictor interface.
// Outcomes are scripted per input ID; unscripted inputs succeed with a
// default prediction. Every call is counted so tests can assert that
// validation failures dispatch nothing.
type MockPredictor struct {
	// FailIDs lists input IDs whose calls return an error.
	FailIDs map[string]bool
	// GenderByID overrides the predicted gender for specific input IDs.
	GenderByID map[string]model.Gender
	// Default is returned for inputs with no scripted outcome.
	Default model.Prediction

	mu         sync.Mutex
	imageCalls int
	measCalls  int
}

// NewMockPredictor creates a mock that predicts a confident female by default.
func NewMockPredictor() *MockPredictor {
	return &MockPredictor{
		FailIDs:    make(map[string]bool),
		GenderByID: make(map[string]model.Gender),
		Default: model.Prediction{
			Gender:     model.GenderFemale,
			Confidence: model.ConfidenceHigh,
			Reasoning:  "Rounded shell profile suggests a female embryo.",
		},
	}
}

// PredictFromImage returns the scripted outcome for the image's ID.
func (m *MockPredictor) PredictFromImage(_ context.Context, image model.ImageInput) (model.Prediction, error) {
	m.mu.Lock()
	m.imageCalls++
	m.mu.Unlock()

	return m.outcome(image.ID)
}

// PredictFromMeasurements returns the scripted outcome keyed by the
// measurement row the coordinator dispatched. Since the interface passes raw
// values, the mock keys failures on the long axis formatted as an ID when no
// explicit match exists.
func (m *MockPredictor) PredictFromMeasurements(_ context.Context, longAxisMm, _, _ float64) (model.Prediction, error) {
	m.mu.Lock()
	m.measCalls++
	m.mu.Unlock()

	return m.outcome(fmt.Sprintf("%g", longAxisMm))
}

func (m *MockPredictor) outcome(id string) (model.Prediction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailIDs[id] {
		return model.Prediction{}, fmt.Errorf("simulated prediction failure for %s", id)
	}

	pred := m.Default
	if gender, ok := m.GenderByID[id]; ok {
		pred.Gender = gender
		if gender == model.GenderUncertain {
			pred.Confidence = model.ConfidenceLow
			pred.Reasoning = "Features are ambiguous."
		}
	}
	return pred, nil
}

// Calls returns the total number of prediction calls issued.
func (m *MockPredictor) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.imageCalls + m.measCalls
}

// ImageCalls returns the number of image prediction calls issued.
func (m *MockPredictor) ImageCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.imageCalls
}

// MeasurementCalls returns the number of measurement prediction calls issued.
func (m *MockPredictor) MeasurementCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.measCalls
}
