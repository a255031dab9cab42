package store

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    date TIMESTAMPTZ NOT NULL,
    location TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'upcoming',
    CONSTRAINT valid_event_status CHECK (status IN ('upcoming', 'completed', 'cancelled'))
);

CREATE TABLE IF NOT EXISTS fights (
    id TEXT PRIMARY KEY,
    event_id TEXT NOT NULL REFERENCES events(id),
    fighter1_id TEXT NOT NULL,
    fighter2_id TEXT NOT NULL,
    weight_class TEXT NOT NULL DEFAULT '',
    rounds INTEGER NOT NULL DEFAULT 3,
    is_title_fight BOOLEAN NOT NULL DEFAULT FALSE,
    odds_fighter1 INTEGER NOT NULL DEFAULT 0,
    odds_fighter2 INTEGER NOT NULL DEFAULT 0,
    card TEXT NOT NULL DEFAULT 'main',
    start_time TIMESTAMPTZ NOT NULL,
    status TEXT NOT NULL DEFAULT 'upcoming',
    winner_id TEXT,
    method TEXT,
    result_time TEXT,
    CONSTRAINT valid_rounds CHECK (rounds IN (1, 3, 5)),
    CONSTRAINT valid_card CHECK (card IN ('main', 'prelim')),
    CONSTRAINT valid_fight_status CHECK (status IN ('upcoming', 'completed', 'cancelled'))
);

CREATE INDEX IF NOT EXISTS idx_fights_event_id ON fights(event_id);

CREATE TABLE IF NOT EXISTS predictions (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id),
    event_id TEXT NOT NULL REFERENCES events(id),
    fight_id TEXT NOT NULL REFERENCES fights(id),
    selected_fighter_id TEXT NOT NULL,
    method TEXT NOT NULL,
    round INTEGER,
    predicted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    is_correct BOOLEAN,
    points INTEGER,
    CONSTRAINT one_pick_per_fight UNIQUE (user_id, fight_id),
    CONSTRAINT valid_round CHECK (round IS NULL OR round >= 1)
);

CREATE INDEX IF NOT EXISTS idx_predictions_user_id ON predictions(user_id);
CREATE INDEX IF NOT EXISTS idx_predictions_fight_id ON predictions(fight_id);
`

// EnsureSchema applies the DDL. Statements are idempotent so running it on
// every startup is safe.
func EnsureSchema(ctx context.Context, pg PgPool) error {
	if _, err := pg.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
