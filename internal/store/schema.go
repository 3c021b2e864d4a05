package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    id                     TEXT PRIMARY KEY,
    name                   TEXT NOT NULL,
    saved_at               TEXT NOT NULL,
    current_year           INTEGER NOT NULL,
    last_year              INTEGER NOT NULL,
    monthly_deposit        REAL NOT NULL,
    deposit_growth_rate    REAL NOT NULL,
    market_rate            REAL NOT NULL,
    retirement_start_year  INTEGER NOT NULL,
    retirement_growth_rate REAL NOT NULL,
    retirement_duration    INTEGER NOT NULL,
    initial_capital        REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    id                     TEXT PRIMARY KEY,
    user_id                TEXT,
    booking_date           TEXT NOT NULL,
    side                   TEXT NOT NULL,
    amount                 TEXT NOT NULL,
    currency               TEXT,
    type                   TEXT,
    mcc                    TEXT,
    description            TEXT,
    imported_at            TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snapshots_saved ON snapshots(saved_at);
CREATE INDEX IF NOT EXISTS idx_transactions_booking ON transactions(booking_date);
`
