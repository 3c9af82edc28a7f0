// Package sqlite provides a SQLite implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/SantiagoB07/murphy-go/internal/glucose"
	"github.com/SantiagoB07/murphy-go/internal/score"
	"github.com/SantiagoB07/murphy-go/internal/storage"
	"github.com/SantiagoB07/murphy-go/internal/wellness"
)

// Store is a SQLite implementation of storage.Store.
type Store struct {
	db *sql.DB
}

// NewMemoryStore creates an in-memory SQLite store.
func NewMemoryStore() (*Store, error) {
	return newStore(":memory:")
}

// NewFileStore creates a file-based SQLite store.
func NewFileStore(path string) (*Store, error) {
	return newStore(path)
}

func newStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Glucose record methods

func (s *Store) SaveGlucoseRecord(ctx context.Context, record *glucose.Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO glucose_records (id, value, recorded_at, slot, notes)
		VALUES (?, ?, ?, ?, ?)
	`, record.ID, record.Value, record.RecordedAt, string(record.Slot), record.Notes)
	return err
}

func (s *Store) GetGlucoseRecord(ctx context.Context, id string) (*glucose.Record, error) {
	var record glucose.Record
	var slot string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, value, recorded_at, slot, notes FROM glucose_records WHERE id = ?
	`, id).Scan(&record.ID, &record.Value, &record.RecordedAt, &slot, &record.Notes)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound{Resource: "glucose_record", ID: id}
	}
	if err != nil {
		return nil, err
	}
	record.Slot = glucose.Slot(slot)
	return &record, nil
}

func (s *Store) ListGlucoseRecords(ctx context.Context) ([]glucose.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, value, recorded_at, slot, notes FROM glucose_records
		ORDER BY recorded_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGlucoseRecords(rows)
}

func (s *Store) QueryGlucoseRecords(ctx context.Context, since, until time.Time) ([]glucose.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, value, recorded_at, slot, notes FROM glucose_records
		WHERE recorded_at >= ? AND recorded_at <= ?
		ORDER BY recorded_at ASC
	`, since, until)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGlucoseRecords(rows)
}

func scanGlucoseRecords(rows *sql.Rows) ([]glucose.Record, error) {
	var records []glucose.Record
	for rows.Next() {
		var record glucose.Record
		var slot string
		if err := rows.Scan(&record.ID, &record.Value, &record.RecordedAt, &slot, &record.Notes); err != nil {
			return nil, err
		}
		record.Slot = glucose.Slot(slot)
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *Store) DeleteGlucoseRecord(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM glucose_records WHERE id = ?", id)
	return err
}

// Wellness log methods

func (s *Store) SaveWellnessLog(ctx context.Context, log *wellness.Log) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO wellness_logs (id, kind, value, recorded_at, notes)
		VALUES (?, ?, ?, ?, ?)
	`, log.ID, string(log.Kind), log.Value, log.RecordedAt, log.Notes)
	return err
}

func (s *Store) ListWellnessLogs(ctx context.Context, since, until time.Time) ([]wellness.Log, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, value, recorded_at, notes FROM wellness_logs
		WHERE recorded_at >= ? AND recorded_at <= ?
		ORDER BY recorded_at ASC
	`, since, until)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []wellness.Log
	for rows.Next() {
		var log wellness.Log
		var kind string
		if err := rows.Scan(&log.ID, &kind, &log.Value, &log.RecordedAt, &log.Notes); err != nil {
			return nil, err
		}
		log.Kind = wellness.Kind(kind)
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

// Score state methods

func (s *Store) GetScoreState(ctx context.Context) (*score.State, error) {
	var state score.State
	var lastScored sql.NullTime
	err := s.db.QueryRowContext(ctx, `
		SELECT streak_days, longest_streak, total_xp, last_scored_day
		FROM score_state WHERE id = 1
	`).Scan(&state.StreakDays, &state.LongestStreak, &state.TotalXP, &lastScored)
	if err == sql.ErrNoRows {
		// Never scored: starting state, not an error.
		return &score.State{}, nil
	}
	if err != nil {
		return nil, err
	}
	if lastScored.Valid {
		state.LastScoredDay = lastScored.Time
	}
	return &state, nil
}

func (s *Store) SaveScoreState(ctx context.Context, state *score.State) error {
	var lastScored any
	if !state.LastScoredDay.IsZero() {
		lastScored = state.LastScoredDay
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO score_state (id, streak_days, longest_streak, total_xp, last_scored_day)
		VALUES (1, ?, ?, ?, ?)
	`, state.StreakDays, state.LongestStreak, state.TotalXP, lastScored)
	return err
}

// Config methods

func (s *Store) GetConfig(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM config WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", storage.ErrNotFound{Resource: "config", ID: key}
	}
	return value, err
}

func (s *Store) SetConfig(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO config (key, value, updated_at)
		VALUES (?, ?, ?)
	`, key, value, time.Now())
	return err
}

func (s *Store) DeleteConfig(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM config WHERE key = ?", key)
	return err
}

// Verify interface compliance
var _ storage.Store = (*Store)(nil)
