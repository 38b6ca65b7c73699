package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovumlab/ovumsort/internal/model"
)

func newTestSQLite(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestSQLiteStorage_AppendAndAll(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t)

	r1 := testRecord("B-1", model.GenderFemale)
	r2 := testRecord("B-2", model.GenderMale)
	require.NoError(t, store.Append(ctx, r1))
	require.NoError(t, store.Append(ctx, r2))

	records, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "B-1", records[0].BatchNumber)
	assert.Equal(t, model.GenderFemale, records[0].Gender)
	assert.Equal(t, model.ConfidenceHigh, records[0].Confidence)
	assert.Equal(t, "test reasoning", records[0].Reasoning)
	assert.WithinDuration(t, r1.Timestamp, records[0].Timestamp, time.Second)

	assert.Equal(t, "B-2", records[1].BatchNumber)
	assert.Equal(t, model.GenderMale, records[1].Gender)
}

func TestSQLiteStorage_CountAndClear(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Append(ctx, testRecord("B-1", model.GenderMale)))
	}

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, store.Clear(ctx))

	count, err = store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSQLiteStorage_RejectsInvalidRecord(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t)

	err := store.Append(ctx, &model.AnalysisRecord{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("   ")
	assert.Error(t, err)
}

func TestSQLiteStorage_MigrateIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLite(t)

	// Running migrations again must be a no-op.
	require.NoError(t, store.Migrate(ctx))

	var version int
	err := store.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_versions`).Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestSQLiteStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Append(ctx, testRecord("B-1", model.GenderFemale)))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	require.NoError(t, reopened.Migrate(ctx))

	records, err := reopened.All(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "B-1", records[0].BatchNumber)
}
