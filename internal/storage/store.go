// Package storage provides the record store the telemetry core reads from.
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/SantiagoB07/murphy-go/internal/glucose"
	"github.com/SantiagoB07/murphy-go/internal/score"
	"github.com/SantiagoB07/murphy-go/internal/wellness"
)

// Store is the interface for persistent storage. The aggregation core never
// touches it directly; callers list records here and hand them to the pure
// functions in glucose, stats, and score.
type Store interface {
	// Glucose records
	SaveGlucoseRecord(ctx context.Context, record *glucose.Record) error
	GetGlucoseRecord(ctx context.Context, id string) (*glucose.Record, error)
	ListGlucoseRecords(ctx context.Context) ([]glucose.Record, error)
	QueryGlucoseRecords(ctx context.Context, since, until time.Time) ([]glucose.Record, error)
	DeleteGlucoseRecord(ctx context.Context, id string) error

	// Wellness logs
	SaveWellnessLog(ctx context.Context, log *wellness.Log) error
	ListWellnessLogs(ctx context.Context, since, until time.Time) ([]wellness.Log, error)

	// Streak and XP state
	GetScoreState(ctx context.Context) (*score.State, error)
	SaveScoreState(ctx context.Context, state *score.State) error

	// Configuration
	GetConfig(ctx context.Context, key string) (string, error)
	SetConfig(ctx context.Context, key, value string) error
	DeleteConfig(ctx context.Context, key string) error

	// Lifecycle
	Close() error
}

// NewGlucoseRecord creates a glucose record with a fresh ID.
func NewGlucoseRecord(value int, recordedAt time.Time, slot glucose.Slot, notes string) *glucose.Record {
	return &glucose.Record{
		ID:         uuid.NewString(),
		Value:      value,
		RecordedAt: recordedAt,
		Slot:       slot,
		Notes:      notes,
	}
}

// NewWellnessLog creates a wellness log with a fresh ID.
func NewWellnessLog(kind wellness.Kind, value float64, recordedAt time.Time, notes string) *wellness.Log {
	return &wellness.Log{
		ID:         uuid.NewString(),
		Kind:       kind,
		Value:      value,
		RecordedAt: recordedAt,
		Notes:      notes,
	}
}

// ErrNotFound is returned when a record is not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e ErrNotFound) Error() string {
	return e.Resource + " not found: " + e.ID
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	_, ok := err.(ErrNotFound)
	return ok
}
