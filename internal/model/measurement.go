package model

import "fmt"

// MeasurementInput is one egg measurement row submitted for analysis.
// All three values must be strictly positive and the short axis must be
// smaller than the long axis; Validate enforces this before any dispatch.
type MeasurementInput struct {
	ID          string
	LongAxisMm  float64
	ShortAxisMm float64
	WeightG     float64
}

// Validate reports why this measurement cannot be submitted, naming the
// offending row so the caller can surface it to the user.
func (m MeasurementInput) Validate() error {
	if m.LongAxisMm <= 0 {
		return fmt.Errorf("measurement %s: long axis must be a positive number, got %g", m.ID, m.LongAxisMm)
	}
	if m.ShortAxisMm <= 0 {
		return fmt.Errorf("measurement %s: short axis must be a positive number, got %g", m.ID, m.ShortAxisMm)
	}
	if m.WeightG <= 0 {
		return fmt.Errorf("measurement %s: weight must be a positive number, got %g", m.ID, m.WeightG)
	}
	if m.ShortAxisMm >= m.LongAxisMm {
		return fmt.Errorf("measurement %s: short axis (%.2f mm) must be less than long axis (%.2f mm)", m.ID, m.ShortAxisMm, m.LongAxisMm)
	}
	return nil
}

// ShapeIndex computes the egg shape index: short axis over long axis as a
// percentage. No rounding is applied; formatting is a display concern.
// Callers are responsible for validating the axes first.
func ShapeIndex(longAxisMm, shortAxisMm float64) float64 {
	return shortAxisMm / longAxisMm * 100
}

// ShapeIndex returns the shape index derived from this measurement. It is
// always recomputed from the stored axes rather than cached, so it can never
// go stale relative to the measurement it came from.
func (m MeasurementInput) ShapeIndex() float64 {
	return ShapeIndex(m.LongAxisMm, m.ShortAxisMm)
}
