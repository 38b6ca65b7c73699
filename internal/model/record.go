// Package model defines the core domain models used throughout the application.
package model

import "time"

// Gender is the predicted sex of the embryo in an egg.
type Gender string

// Gender constants. The reasoning service answers with exactly one of these.
const (
	GenderMale      Gender = "Male"
	GenderFemale    Gender = "Female"
	GenderUncertain Gender = "Uncertain"
)

// Confidence labels how strongly the reasoning service stands behind a prediction.
type Confidence string

// Confidence constants.
const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// AnalysisType identifies which submission path produced a record.
type AnalysisType string

// Analysis type constants.
const (
	TypeImage      AnalysisType = "Image"
	TypeLiveCamera AnalysisType = "LiveCamera"
	TypeCalculator AnalysisType = "Calculator"
)

// Prediction is the reasoning service's verdict for a single input.
// It is produced only by the prediction client and never modified afterward.
type Prediction struct {
	Gender     Gender
	Confidence Confidence
	Reasoning  string
}

// AnalysisRecord is one completed analysis outcome. The timestamp is assigned
// when the record is built from a settled prediction, not when the batch was
// submitted. Records are immutable once appended to a store; only the store
// as a whole can be cleared.
type AnalysisRecord struct {
	Timestamp    time.Time
	BatchNumber  string
	AnalysisType AnalysisType
	Gender       Gender
	Confidence   Confidence
	Reasoning    string
}
