// Seeder inserts a sample fight card so the API can be exercised locally:
// one upcoming event with a main and a preliminary card, a handful of users,
// and a few predictions on the prelim opener.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fightpicks/picks-api/internal/store"
)

type seedFight struct {
	id        string
	fighter1  string
	fighter2  string
	weight    string
	rounds    int
	title     bool
	odds1     int
	odds2     int
	card      string
	startOffs time.Duration
}

func main() {
	ctx := context.Background()

	url := os.Getenv("POSTGRES_URL")
	if url == "" {
		log.Fatal("POSTGRES_URL is required")
	}

	pg, err := pgxpool.New(ctx, url)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pg.Close()

	if err := store.EnsureSchema(ctx, pg); err != nil {
		log.Fatalf("schema: %v", err)
	}

	eventID := "evt-seed-001"
	now := time.Now()

	if _, err := pg.Exec(ctx, `
		INSERT INTO events (id, name, date, location, status)
		VALUES ($1, $2, $3, $4, 'upcoming')
		ON CONFLICT (id) DO NOTHING
	`, eventID, "Fight Night: Seed Card", now.Add(2*time.Hour), "Las Vegas, NV"); err != nil {
		log.Fatalf("insert event: %v", err)
	}

	fights := []seedFight{
		{"fgt-seed-001", "ftr-silva", "ftr-jones", "Lightweight", 3, false, +150, -180, "prelim", 2 * time.Hour},
		{"fgt-seed-002", "ftr-garcia", "ftr-smith", "Welterweight", 3, false, -120, +100, "prelim", 2*time.Hour + 30*time.Minute},
		{"fgt-seed-003", "ftr-petrov", "ftr-diaz", "Middleweight", 3, false, +220, -260, "main", 5 * time.Hour},
		{"fgt-seed-004", "ftr-oliveira", "ftr-khan", "Heavyweight", 5, true, -150, +130, "main", 6 * time.Hour},
	}

	for _, f := range fights {
		if _, err := pg.Exec(ctx, `
			INSERT INTO fights (id, event_id, fighter1_id, fighter2_id, weight_class, rounds,
			                    is_title_fight, odds_fighter1, odds_fighter2, card, start_time, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'upcoming')
			ON CONFLICT (id) DO NOTHING
		`, f.id, eventID, f.fighter1, f.fighter2, f.weight, f.rounds,
			f.title, f.odds1, f.odds2, f.card, now.Add(f.startOffs)); err != nil {
			log.Fatalf("insert fight %s: %v", f.id, err)
		}
	}

	users := map[string]string{
		"usr-seed-001": "heavy_hands",
		"usr-seed-002": "submission_sue",
		"usr-seed-003": "decision_dan",
	}
	for id, name := range users {
		if _, err := pg.Exec(ctx, `
			INSERT INTO users (id, username) VALUES ($1, $2)
			ON CONFLICT (id) DO NOTHING
		`, id, name); err != nil {
			log.Fatalf("insert user %s: %v", id, err)
		}
	}

	picks := []struct {
		user    string
		fighter string
		method  string
		round   any
	}{
		{"usr-seed-001", "ftr-silva", "KO/TKO", 2},
		{"usr-seed-002", "ftr-jones", "Submission", 1},
		{"usr-seed-003", "ftr-silva", "Decision", nil},
	}
	for _, p := range picks {
		if _, err := pg.Exec(ctx, `
			INSERT INTO predictions (id, user_id, event_id, fight_id, selected_fighter_id, method, round, predicted_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
			ON CONFLICT (user_id, fight_id) DO NOTHING
		`, uuid.New().String(), p.user, eventID, "fgt-seed-001", p.fighter, p.method, p.round); err != nil {
			log.Fatalf("insert prediction for %s: %v", p.user, err)
		}
	}

	log.Printf("seeded event %s with %d fights, %d users", eventID, len(fights), len(users))
}
