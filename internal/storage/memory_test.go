package storage

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovumlab/ovumsort/internal/model"
)

func testRecord(batch string, gender model.Gender) *model.AnalysisRecord {
	return &model.AnalysisRecord{
		Timestamp:    time.Now(),
		BatchNumber:  batch,
		AnalysisType: model.TypeImage,
		Gender:       gender,
		Confidence:   model.ConfidenceHigh,
		Reasoning:    "test reasoning",
	}
}

func TestMemoryStore_AppendAndAll(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Append(ctx, testRecord("B-1", model.GenderMale)))
	require.NoError(t, store.Append(ctx, testRecord("B-1", model.GenderFemale)))
	require.NoError(t, store.Append(ctx, testRecord("B-2", model.GenderUncertain)))

	records, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, model.GenderMale, records[0].Gender)
	assert.Equal(t, model.GenderFemale, records[1].Gender)
	assert.Equal(t, model.GenderUncertain, records[2].Gender)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMemoryStore_AllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Append(ctx, testRecord("B-1", model.GenderMale)))

	records, err := store.All(ctx)
	require.NoError(t, err)
	records[0].Gender = model.GenderFemale

	fresh, err := store.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.GenderMale, fresh[0].Gender)
}

func TestMemoryStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Append(ctx, testRecord("B-1", model.GenderMale)))

	require.NoError(t, store.Clear(ctx))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMemoryStore_RejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	tests := []struct {
		name   string
		record *model.AnalysisRecord
	}{
		{"nil record", nil},
		{"zero timestamp", &model.AnalysisRecord{
			BatchNumber:  "B-1",
			AnalysisType: model.TypeImage,
			Gender:       model.GenderMale,
		}},
		{"empty batch number", &model.AnalysisRecord{
			Timestamp:    time.Now(),
			AnalysisType: model.TypeImage,
			Gender:       model.GenderMale,
		}},
		{"unknown analysis type", &model.AnalysisRecord{
			Timestamp:    time.Now(),
			BatchNumber:  "B-1",
			AnalysisType: "Telepathy",
			Gender:       model.GenderMale,
		}},
		{"unknown gender", &model.AnalysisRecord{
			Timestamp:    time.Now(),
			BatchNumber:  "B-1",
			AnalysisType: model.TypeImage,
			Gender:       "Rooster",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, store.Append(ctx, tt.record))
		})
	}

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	store := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, store.Append(ctx, testRecord("B-1", model.GenderMale)))
	_, err := store.All(ctx)
	assert.Error(t, err)
}

func TestMemoryStore_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Append(ctx, testRecord(fmt.Sprintf("B-%d", i), model.GenderMale))
		}(i)
	}
	wg.Wait()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, count)
}
