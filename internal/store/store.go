// Package store implements the prediction store boundary on PostgreSQL.
// Any keyed store with filter/order queries would satisfy the interface;
// the rest of the system treats it as an opaque document collection.
package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fightpicks/picks-api/internal/models"
)

// ErrNotFound is returned when a referenced event, fight, prediction or user
// does not exist. It is surfaced to the caller and never retried silently.
var ErrNotFound = errors.New("store: not found")

// PgPool defines the interface for a PostgreSQL connection pool.
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PredictionStore is the persistence boundary the service layer depends on.
type PredictionStore interface {
	// UpsertPrediction creates or replaces the prediction keyed by
	// (UserID, FightID).
	UpsertPrediction(ctx context.Context, p *models.Prediction) error

	// PredictionsByUser returns the user's full prediction history,
	// ordered by predicted_at ascending.
	PredictionsByUser(ctx context.Context, userID string) ([]models.Prediction, error)

	// PredictionsByFight returns every prediction on one fight.
	PredictionsByFight(ctx context.Context, fightID string) ([]models.Prediction, error)

	// ResolvePrediction writes the resolved fields exactly once. A second
	// resolution of the same prediction is a no-op.
	ResolvePrediction(ctx context.Context, predictionID string, isCorrect bool, points int) error

	// GetFight returns one fight or ErrNotFound.
	GetFight(ctx context.Context, fightID string) (*models.Fight, error)

	// FightsByIDs returns a lookup table for the given fight ids. Missing
	// ids are simply absent from the map.
	FightsByIDs(ctx context.Context, fightIDs []string) (map[string]models.Fight, error)

	// GetEvent returns an event with its fights partitioned into main and
	// preliminary cards, or ErrNotFound.
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)

	// UpcomingEvents returns events not yet completed or cancelled.
	UpcomingEvents(ctx context.Context) ([]models.Event, error)

	// SaveFightResult marks the fight completed and records the outcome.
	SaveFightResult(ctx context.Context, fightID string, result *models.FightResult) error

	// ListUsers returns every user known to the game.
	ListUsers(ctx context.Context) ([]models.User, error)
}
