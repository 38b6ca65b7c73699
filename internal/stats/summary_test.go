package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ovumlab/ovumsort/internal/model"
)

func record(batch string, gender model.Gender) model.AnalysisRecord {
	return model.AnalysisRecord{
		Timestamp:    time.Now(),
		BatchNumber:  batch,
		AnalysisType: model.TypeImage,
		Gender:       gender,
		Confidence:   model.ConfidenceHigh,
		Reasoning:    "test",
	}
}

func TestSummarize(t *testing.T) {
	records := []model.AnalysisRecord{
		record("B-1", model.GenderMale),
		record("B-1", model.GenderMale),
		record("B-1", model.GenderFemale),
		record("B-1", model.GenderUncertain),
	}

	s := Summarize(records, FilterAll)

	assert.Equal(t, 2, s.MaleCount)
	assert.Equal(t, 1, s.FemaleCount)
	// Uncertain is excluded from the denominator, not counted as a third bucket.
	assert.Equal(t, 3, s.Total)
	assert.InDelta(t, 66.67, s.MalePct, 0.01)
	assert.InDelta(t, 33.33, s.FemalePct, 0.01)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, FilterAll)

	assert.Equal(t, 0, s.MaleCount)
	assert.Equal(t, 0, s.FemaleCount)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0.0, s.MalePct)
	assert.Equal(t, 0.0, s.FemalePct)
}

func TestSummarize_OnlyUncertain(t *testing.T) {
	records := []model.AnalysisRecord{
		record("B-1", model.GenderUncertain),
		record("B-1", model.GenderUncertain),
	}

	s := Summarize(records, FilterAll)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0.0, s.MalePct)
	assert.Equal(t, 0.0, s.FemalePct)
}

func TestSummarize_BatchFilter(t *testing.T) {
	records := []model.AnalysisRecord{
		record("B-1", model.GenderMale),
		record("B-1", model.GenderFemale),
		record("B-2", model.GenderFemale),
		record("B-2", model.GenderFemale),
	}

	tests := []struct {
		name       string
		filter     string
		wantMale   int
		wantFemale int
	}{
		{"all keyword", FilterAll, 1, 3},
		{"empty filter matches everything", "", 1, 3},
		{"single batch", "B-2", 0, 2},
		{"unknown batch", "B-99", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(records, tt.filter)
			assert.Equal(t, tt.wantMale, s.MaleCount)
			assert.Equal(t, tt.wantFemale, s.FemaleCount)
			assert.Equal(t, tt.wantMale+tt.wantFemale, s.Total)
		})
	}
}

func TestSummarize_Recomputes(t *testing.T) {
	records := []model.AnalysisRecord{record("B-1", model.GenderMale)}

	first := Summarize(records, FilterAll)
	records = append(records, record("B-1", model.GenderFemale))
	second := Summarize(records, FilterAll)

	assert.Equal(t, 1, first.Total)
	assert.Equal(t, 2, second.Total)
}

func TestBatches(t *testing.T) {
	records := []model.AnalysisRecord{
		record("B-2", model.GenderMale),
		record("B-1", model.GenderFemale),
		record("B-2", model.GenderFemale),
		record("B-3", model.GenderMale),
	}

	assert.Equal(t, []string{"B-2", "B-1", "B-3"}, Batches(records))
	assert.Nil(t, Batches(nil))
}
