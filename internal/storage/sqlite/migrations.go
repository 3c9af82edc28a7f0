package sqlite

// schema contains the database schema DDL.
const schema = `
-- Glucose readings
CREATE TABLE IF NOT EXISTS glucose_records (
    id TEXT PRIMARY KEY,
    value INTEGER NOT NULL,
    recorded_at DATETIME NOT NULL,
    slot TEXT NOT NULL,
    notes TEXT DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_glucose_recorded_at ON glucose_records(recorded_at);

-- Wellness logs (sleep, stress)
CREATE TABLE IF NOT EXISTS wellness_logs (
    id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    value REAL DEFAULT 0,
    recorded_at DATETIME NOT NULL,
    notes TEXT DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_wellness_recorded_at ON wellness_logs(kind, recorded_at);

-- Streak and XP state (single row)
CREATE TABLE IF NOT EXISTS score_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    streak_days INTEGER NOT NULL DEFAULT 0,
    longest_streak INTEGER NOT NULL DEFAULT 0,
    total_xp INTEGER NOT NULL DEFAULT 0,
    last_scored_day DATETIME
);

-- Configuration
CREATE TABLE IF NOT EXISTS config (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`
