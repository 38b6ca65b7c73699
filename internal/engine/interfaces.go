package engine

import (
	"context"

	"github.com/ovumlab/ovumsort/internal/model"
)

// Predictor is the contract the coordinator needs from the reasoning service.
// Either call may fail; the coordinator records the failure and keeps going.
type Predictor interface {
	PredictFromImage(ctx context.Context, image model.ImageInput) (model.Prediction, error)
	PredictFromMeasurements(ctx context.Context, longAxisMm, shortAxisMm, weightG float64) (model.Prediction, error)
}

// RecordAppender is the slice of the record store the coordinator uses.
// Appending is a one-way transfer: once a record is appended the coordinator
// keeps no reference to it.
type RecordAppender interface {
	Append(ctx context.Context, record *model.AnalysisRecord) error
}
