package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovumlab/ovumsort/internal/model"
)

func TestRender(t *testing.T) {
	ts1 := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	ts2 := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	records := []model.AnalysisRecord{
		{
			Timestamp:    ts1,
			BatchNumber:  "B-1",
			AnalysisType: model.TypeImage,
			Gender:       model.GenderFemale,
			Confidence:   model.ConfidenceHigh,
			Reasoning:    "Rounded blunt end with even shell texture.",
		},
		{
			Timestamp:    ts2,
			BatchNumber:  "B-1",
			AnalysisType: model.TypeCalculator,
			Gender:       model.GenderMale,
			Confidence:   model.ConfidenceMedium,
			Reasoning:    "Shape Index: 74.07. Elongated profile.",
		},
	}

	lines := strings.Split(strings.TrimRight(string(Render(records)), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Timestamp, Batch Number, Analysis Type, Predicted Gender, Confidence, AI Reasoning", lines[0])
	assert.Equal(t, `"2026-03-14T09:26:53Z","B-1","Image","Female","High","Rounded blunt end with even shell texture."`, lines[1])
	assert.Equal(t, `"2026-03-14T09:30:00Z","B-1","Calculator","Male","Medium","Shape Index: 74.07. Elongated profile."`, lines[2])
}

func TestRender_Empty(t *testing.T) {
	out := string(Render(nil))
	assert.Equal(t, "Timestamp, Batch Number, Analysis Type, Predicted Gender, Confidence, AI Reasoning\n", out)
}

func TestRender_QuotesAndCommasInReasoning(t *testing.T) {
	records := []model.AnalysisRecord{
		{
			Timestamp:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			BatchNumber:  "B-2",
			AnalysisType: model.TypeImage,
			Gender:       model.GenderMale,
			Confidence:   model.ConfidenceLow,
			Reasoning:    `Shell shows a "double ring", slightly uneven.`,
		},
	}

	lines := strings.Split(strings.TrimRight(string(Render(records)), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"2026-01-02T03:04:05Z","B-2","Image","Male","Low","Shell shows a ""double ring"", slightly uneven."`, lines[1])
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 25, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "ovumsort_report_2026-08-25.csv", Filename(now))
}
