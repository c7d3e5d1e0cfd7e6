package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS usage_snapshots (
    id                   INTEGER PRIMARY KEY CHECK (id = 1),
    fetched_at           TEXT NOT NULL,
    start_time           TEXT,
    reset_time           TEXT,
    total_tokens         INTEGER NOT NULL,
    cost_usd             REAL NOT NULL,
    tokens_per_minute    REAL NOT NULL,
    entries              INTEGER NOT NULL
);
`
