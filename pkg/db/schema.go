package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Runs: one row per analyze invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    file_path TEXT NOT NULL,
    file_hash TEXT NOT NULL,           -- sha256 of the input, path-independent identity
    file_size_bytes INTEGER,
    element_spec TEXT                  -- comma-joined element types analyzed
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_hash ON runs(file_hash);

-- Per-element summary within a run
CREATE TABLE IF NOT EXISTS run_elements (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    element_type TEXT NOT NULL,
    occurrences INTEGER NOT NULL,
    always_count INTEGER DEFAULT 0,
    sometimes_count INTEGER DEFAULT 0,
    rarely_count INTEGER DEFAULT 0,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, element_type)
);

CREATE INDEX IF NOT EXISTS idx_run_elements_run ON run_elements(run_id);

-- Per-field statistics within a run
CREATE TABLE IF NOT EXISTS run_fields (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    element_type TEXT NOT NULL,
    field TEXT NOT NULL,
    present INTEGER NOT NULL,
    non_empty INTEGER NOT NULL,
    non_empty_pct REAL NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, element_type, field)
);

CREATE INDEX IF NOT EXISTS idx_run_fields_run ON run_fields(run_id);
CREATE INDEX IF NOT EXISTS idx_run_fields_field ON run_fields(field);
`
