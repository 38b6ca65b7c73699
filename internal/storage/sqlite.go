package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ovumlab/ovumsort/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage implements the Store interface using SQLite, giving analysis
// history that survives the session.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists (skipped for :memory: databases)
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Append inserts a record. Records are never updated in place.
func (s *SQLiteStorage) Append(ctx context.Context, record *model.AnalysisRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecord(record); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analysis_records (
			timestamp, batch_number, analysis_type, gender, confidence, reasoning
		) VALUES (?, ?, ?, ?, ?, ?)
	`,
		record.Timestamp,
		record.BatchNumber,
		string(record.AnalysisType),
		string(record.Gender),
		string(record.Confidence),
		record.Reasoning,
	)

	if err != nil {
		return fmt.Errorf("failed to save analysis record: %w", err)
	}

	return nil
}

// All returns every record in insertion order.
func (s *SQLiteStorage) All(ctx context.Context) ([]model.AnalysisRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT timestamp, batch_number, analysis_type, gender, confidence, reasoning
		FROM analysis_records
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.AnalysisRecord
	for rows.Next() {
		var r model.AnalysisRecord
		var analysisType, gender, confidence string
		var reasoning sql.NullString

		if err := rows.Scan(&r.Timestamp, &r.BatchNumber, &analysisType, &gender, &confidence, &reasoning); err != nil {
			return nil, fmt.Errorf("failed to scan analysis record: %w", err)
		}

		r.AnalysisType = model.AnalysisType(analysisType)
		r.Gender = model.Gender(gender)
		r.Confidence = model.Confidence(confidence)
		if reasoning.Valid {
			r.Reasoning = reasoning.String
		}

		records = append(records, r)
	}

	return records, rows.Err()
}

// Count returns the number of stored records.
func (s *SQLiteStorage) Count(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analysis_records`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count analysis records: %w", err)
	}
	return count, nil
}

// Clear deletes every record. This is a user-level reset, never part of the
// batch flow.
func (s *SQLiteStorage) Clear(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM analysis_records`); err != nil {
		return fmt.Errorf("failed to clear analysis records: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
