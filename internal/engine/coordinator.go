// Package engine implements the batch analysis coordinator that fans out
// prediction requests and folds the settled outcomes into analysis records.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/ovumlab/ovumsort/internal/common"
	"github.com/ovumlab/ovumsort/internal/model"
)

// Coordinator owns the transient working set of one batch submission:
// validate everything up front, dispatch one prediction call per input,
// wait for every call to settle, then publish the eligible records.
type Coordinator struct {
	store        RecordAppender
	predictor    Predictor
	showProgress bool
}

// Config holds configuration options for the coordinator.
type Config struct {
	// ShowProgress renders a per-item progress bar while calls settle.
	ShowProgress bool
}

// New creates a coordinator with default configuration.
func New(store RecordAppender, predictor Predictor) *Coordinator {
	return NewWithConfig(store, predictor, Config{})
}

// NewWithConfig creates a coordinator with custom configuration.
func NewWithConfig(store RecordAppender, predictor Predictor, cfg Config) *Coordinator {
	return &Coordinator{
		store:        store,
		predictor:    predictor,
		showProgress: cfg.ShowProgress,
	}
}

// Input is one pending batch item. Exactly one of Image or Measurement is
// set, matching the batch's analysis type.
type Input struct {
	Image       *model.ImageInput
	Measurement *model.MeasurementInput
}

// ID names the input for error reporting.
func (in Input) ID() string {
	switch {
	case in.Image != nil:
		return in.Image.ID
	case in.Measurement != nil:
		return in.Measurement.ID
	default:
		return "?"
	}
}

// BatchSummary is the outcome of one batch submission.
type BatchSummary struct {
	// Succeeded holds every record built from a successful prediction, in
	// completion order, for display. It can be longer than StoredCount:
	// measurement-variant Uncertain results are shown but never stored.
	Succeeded []model.AnalysisRecord
	// FailedCount is the number of items whose prediction call failed.
	FailedCount int
	// StoredCount is the number of records actually appended to the store.
	StoredCount int
	// Duration covers dispatch through publication.
	Duration time.Duration
}

// itemOutcome is one settled prediction call.
type itemOutcome struct {
	err   error
	input Input
	pred  model.Prediction
}

// RunBatch analyzes all inputs under one batch number and analysis type.
//
// Validation is all-or-nothing: any malformed input rejects the whole
// submission before a single prediction call is issued. Execution is the
// opposite: per-item failures are counted and absorbed, never propagated.
// No record is published until every call has settled.
func (c *Coordinator) RunBatch(ctx context.Context, batchNumber string, analysisType model.AnalysisType, inputs []Input) (*BatchSummary, error) {
	batchNumber = strings.TrimSpace(batchNumber)
	if err := validateSubmission(batchNumber, analysisType, inputs); err != nil {
		return nil, err
	}

	start := time.Now()
	slog.Info("Starting batch analysis",
		"batch", batchNumber,
		"type", analysisType,
		"items", len(inputs))

	outcomes := make(chan itemOutcome, len(inputs))

	var wg sync.WaitGroup
	wg.Add(len(inputs))
	for _, in := range inputs {
		go func(in Input) {
			defer wg.Done()
			pred, err := c.predict(ctx, analysisType, in)
			outcomes <- itemOutcome{input: in, pred: pred, err: err}
		}(in)
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	var bar *progressbar.ProgressBar
	if c.showProgress {
		bar = progressbar.Default(int64(len(inputs)), "analyzing")
	}

	// Collect every settled call before publishing anything: a slow egg must
	// not block its siblings, but the store never sees a half-done batch.
	settled := make([]itemOutcome, 0, len(inputs))
	for outcome := range outcomes {
		if bar != nil {
			_ = bar.Add(1)
		}
		settled = append(settled, outcome)
	}

	summary := &BatchSummary{}
	for _, outcome := range settled {
		if outcome.err != nil {
			summary.FailedCount++
			slog.Warn("Item prediction failed",
				"batch", batchNumber,
				"item", outcome.input.ID(),
				"error", outcome.err)
			continue
		}

		record := buildRecord(batchNumber, analysisType, outcome)
		summary.Succeeded = append(summary.Succeeded, record)

		// Measurement-derived "Uncertain" results are shown to the user but
		// considered too weak to count as a batch outcome. Image and live
		// camera results are stored regardless of gender.
		if analysisType == model.TypeCalculator && record.Gender == model.GenderUncertain {
			slog.Debug("Skipping uncertain measurement result",
				"batch", batchNumber,
				"item", outcome.input.ID())
			continue
		}

		if err := c.store.Append(ctx, &record); err != nil {
			slog.Error("Failed to store analysis record",
				"batch", batchNumber,
				"item", outcome.input.ID(),
				"error", err)
			continue
		}
		summary.StoredCount++
	}

	summary.Duration = time.Since(start)

	slog.Info("Batch analysis complete",
		"batch", batchNumber,
		"succeeded", len(summary.Succeeded),
		"failed", summary.FailedCount,
		"stored", summary.StoredCount,
		"duration", summary.Duration.Round(time.Millisecond))

	return summary, nil
}

// predict issues the prediction call matching the batch's analysis type.
func (c *Coordinator) predict(ctx context.Context, analysisType model.AnalysisType, in Input) (model.Prediction, error) {
	if analysisType == model.TypeCalculator {
		m := in.Measurement
		return c.predictor.PredictFromMeasurements(ctx, m.LongAxisMm, m.ShortAxisMm, m.WeightG)
	}
	return c.predictor.PredictFromImage(ctx, *in.Image)
}

// buildRecord stamps a settled prediction into an immutable analysis record.
// The timestamp is record-creation time, not submission time.
func buildRecord(batchNumber string, analysisType model.AnalysisType, outcome itemOutcome) model.AnalysisRecord {
	reasoning := outcome.pred.Reasoning
	if analysisType == model.TypeCalculator {
		reasoning = fmt.Sprintf("Shape Index: %.2f. %s", outcome.input.Measurement.ShapeIndex(), reasoning)
	}

	return model.AnalysisRecord{
		Timestamp:    time.Now(),
		BatchNumber:  batchNumber,
		AnalysisType: analysisType,
		Gender:       outcome.pred.Gender,
		Confidence:   outcome.pred.Confidence,
		Reasoning:    reasoning,
	}
}

// validateSubmission checks the whole submission before anything is
// dispatched, accumulating a message per offending input so the caller can
// report exactly which items are invalid.
func validateSubmission(batchNumber string, analysisType model.AnalysisType, inputs []Input) error {
	var errs []error

	if batchNumber == "" {
		errs = append(errs, common.ErrEmptyBatchNumber)
	}

	switch analysisType {
	case model.TypeImage, model.TypeLiveCamera, model.TypeCalculator:
	default:
		errs = append(errs, fmt.Errorf("unknown analysis type %q", analysisType))
	}

	if len(inputs) == 0 {
		errs = append(errs, common.ErrNoInputs)
	}

	for i, in := range inputs {
		switch analysisType {
		case model.TypeCalculator:
			if in.Measurement == nil {
				errs = append(errs, fmt.Errorf("input %d: missing measurement", i+1))
				continue
			}
			if err := in.Measurement.Validate(); err != nil {
				errs = append(errs, err)
			}
		case model.TypeImage, model.TypeLiveCamera:
			if in.Image == nil || len(in.Image.Data) == 0 {
				errs = append(errs, fmt.Errorf("input %d: %w", i+1, common.ErrEmptyImage))
			}
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
