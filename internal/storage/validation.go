package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ovumlab/ovumsort/internal/model"
)

// Validation errors.
var (
	ErrNilRecord     = errors.New("record must not be nil")
	ErrInvalidRecord = errors.New("invalid record")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context must not be nil")
	}
	return ctx.Err()
}

func validateString(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s must not be empty", name)
	}
	return nil
}

func validateRecord(record *model.AnalysisRecord) error {
	if record == nil {
		return ErrNilRecord
	}
	if record.Timestamp.IsZero() {
		return fmt.Errorf("%w: timestamp is not set", ErrInvalidRecord)
	}
	if strings.TrimSpace(record.BatchNumber) == "" {
		return fmt.Errorf("%w: batch number is empty", ErrInvalidRecord)
	}
	switch record.AnalysisType {
	case model.TypeImage, model.TypeLiveCamera, model.TypeCalculator:
	default:
		return fmt.Errorf("%w: unknown analysis type %q", ErrInvalidRecord, record.AnalysisType)
	}
	switch record.Gender {
	case model.GenderMale, model.GenderFemale, model.GenderUncertain:
	default:
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidRecord, record.Gender)
	}
	return nil
}
