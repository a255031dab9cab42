package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fightpicks/picks-api/internal/models"
)

type postgresStore struct {
	pg PgPool
}

// NewPostgres creates a PredictionStore over the given pool.
func NewPostgres(pg PgPool) PredictionStore {
	return &postgresStore{pg: pg}
}

func (s *postgresStore) UpsertPrediction(ctx context.Context, p *models.Prediction) error {
	_, err := s.pg.Exec(ctx, `
		INSERT INTO predictions (id, user_id, event_id, fight_id, selected_fighter_id, method, round, predicted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, fight_id) DO UPDATE SET
			selected_fighter_id = EXCLUDED.selected_fighter_id,
			method = EXCLUDED.method,
			round = EXCLUDED.round,
			predicted_at = EXCLUDED.predicted_at
	`, p.ID, p.UserID, p.EventID, p.FightID, p.SelectedFighterID, string(p.Method), nullableRound(p.Round), p.PredictedAt)
	if err != nil {
		return fmt.Errorf("upsert prediction: %w", err)
	}
	return nil
}

func (s *postgresStore) PredictionsByUser(ctx context.Context, userID string) ([]models.Prediction, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT id, user_id, event_id, fight_id, selected_fighter_id, method, round, predicted_at, is_correct, points
		FROM predictions
		WHERE user_id = $1
		ORDER BY predicted_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query predictions by user: %w", err)
	}
	defer rows.Close()
	return scanPredictions(rows)
}

func (s *postgresStore) PredictionsByFight(ctx context.Context, fightID string) ([]models.Prediction, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT id, user_id, event_id, fight_id, selected_fighter_id, method, round, predicted_at, is_correct, points
		FROM predictions
		WHERE fight_id = $1
		ORDER BY predicted_at ASC
	`, fightID)
	if err != nil {
		return nil, fmt.Errorf("query predictions by fight: %w", err)
	}
	defer rows.Close()
	return scanPredictions(rows)
}

func (s *postgresStore) ResolvePrediction(ctx context.Context, predictionID string, isCorrect bool, points int) error {
	// The is_correct IS NULL guard makes the resolved fields write-once:
	// a repeated resolution (or one after an odds revision) cannot alter
	// already-stored points.
	_, err := s.pg.Exec(ctx, `
		UPDATE predictions
		SET is_correct = $2, points = $3
		WHERE id = $1 AND is_correct IS NULL
	`, predictionID, isCorrect, points)
	if err != nil {
		return fmt.Errorf("resolve prediction: %w", err)
	}
	return nil
}

func (s *postgresStore) GetFight(ctx context.Context, fightID string) (*models.Fight, error) {
	row := s.pg.QueryRow(ctx, `
		SELECT id, event_id, fighter1_id, fighter2_id, weight_class, rounds, is_title_fight,
		       odds_fighter1, odds_fighter2, card, start_time, status, winner_id, method, result_time
		FROM fights
		WHERE id = $1
	`, fightID)

	f, err := scanFight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("fight %s: %w", fightID, ErrNotFound)
		}
		return nil, fmt.Errorf("get fight: %w", err)
	}
	return f, nil
}

func (s *postgresStore) FightsByIDs(ctx context.Context, fightIDs []string) (map[string]models.Fight, error) {
	lookup := make(map[string]models.Fight, len(fightIDs))
	if len(fightIDs) == 0 {
		return lookup, nil
	}

	rows, err := s.pg.Query(ctx, `
		SELECT id, event_id, fighter1_id, fighter2_id, weight_class, rounds, is_title_fight,
		       odds_fighter1, odds_fighter2, card, start_time, status, winner_id, method, result_time
		FROM fights
		WHERE id = ANY($1)
	`, fightIDs)
	if err != nil {
		return nil, fmt.Errorf("query fights by ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		f, err := scanFight(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fight: %w", err)
		}
		lookup[f.ID] = *f
	}
	return lookup, rows.Err()
}

func (s *postgresStore) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	var ev models.Event
	err := s.pg.QueryRow(ctx, `
		SELECT id, name, date, location, status
		FROM events
		WHERE id = $1
	`, eventID).Scan(&ev.ID, &ev.Name, &ev.Date, &ev.Location, &ev.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("event %s: %w", eventID, ErrNotFound)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	if err := s.fillCards(ctx, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *postgresStore) UpcomingEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := s.pg.Query(ctx, `
		SELECT id, name, date, location, status
		FROM events
		WHERE status = 'upcoming'
		ORDER BY date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query upcoming events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var ev models.Event
		if err := rows.Scan(&ev.ID, &ev.Name, &ev.Date, &ev.Location, &ev.Status); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range events {
		if err := s.fillCards(ctx, &events[i]); err != nil {
			return nil, err
		}
	}
	return events, nil
}

func (s *postgresStore) fillCards(ctx context.Context, ev *models.Event) error {
	rows, err := s.pg.Query(ctx, `
		SELECT id, event_id, fighter1_id, fighter2_id, weight_class, rounds, is_title_fight,
		       odds_fighter1, odds_fighter2, card, start_time, status, winner_id, method, result_time
		FROM fights
		WHERE event_id = $1
		ORDER BY start_time ASC
	`, ev.ID)
	if err != nil {
		return fmt.Errorf("query event fights: %w", err)
	}
	defer rows.Close()

	ev.MainCard = ev.MainCard[:0]
	ev.Prelims = ev.Prelims[:0]
	for rows.Next() {
		f, err := scanFight(rows)
		if err != nil {
			return fmt.Errorf("scan fight: %w", err)
		}
		if f.Card == models.MainCard {
			ev.MainCard = append(ev.MainCard, *f)
		} else {
			ev.Prelims = append(ev.Prelims, *f)
		}
	}
	return rows.Err()
}

func (s *postgresStore) SaveFightResult(ctx context.Context, fightID string, result *models.FightResult) error {
	tag, err := s.pg.Exec(ctx, `
		UPDATE fights
		SET status = 'completed', winner_id = $2, method = $3, result_time = $4
		WHERE id = $1 AND status = 'upcoming'
	`, fightID, result.WinnerID, string(result.Method), nullableString(result.Time))
	if err != nil {
		return fmt.Errorf("save fight result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("fight %s not upcoming: %w", fightID, ErrNotFound)
	}
	return nil
}

func (s *postgresStore) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.pg.Query(ctx, `SELECT id, username FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// scanFight reads one fight row; works for both pgx.Row and pgx.Rows.
func scanFight(row pgx.Row) (*models.Fight, error) {
	var f models.Fight
	var method, resultTime *string
	err := row.Scan(
		&f.ID, &f.EventID, &f.Fighter1ID, &f.Fighter2ID, &f.WeightClass,
		&f.Rounds, &f.IsTitleFight, &f.Odds.Fighter1, &f.Odds.Fighter2,
		&f.Card, &f.StartTime, &f.Status, &f.WinnerID, &method, &resultTime,
	)
	if err != nil {
		return nil, err
	}
	if method != nil {
		m := models.Method(*method)
		f.Method = &m
	}
	f.Time = resultTime
	return &f, nil
}

func scanPredictions(rows pgx.Rows) ([]models.Prediction, error) {
	var preds []models.Prediction
	for rows.Next() {
		var p models.Prediction
		var round *int
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.EventID, &p.FightID, &p.SelectedFighterID,
			&p.Method, &round, &p.PredictedAt, &p.IsCorrect, &p.Points,
		); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		if round != nil {
			p.Round = *round
		}
		preds = append(preds, p)
	}
	return preds, rows.Err()
}

func nullableRound(round int) *int {
	if round <= 0 {
		return nil
	}
	return &round
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
