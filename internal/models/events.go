package models

import "time"

// FightStatus tracks the lifecycle of a fight.
type FightStatus string

const (
	FightUpcoming  FightStatus = "upcoming"
	FightCompleted FightStatus = "completed"
	FightCancelled FightStatus = "cancelled"
)

// EventStatus tracks the lifecycle of an event.
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// CardSegment partitions an event's fights into the two broadcast cards.
type CardSegment string

const (
	MainCard   CardSegment = "main"
	PrelimCard CardSegment = "prelim"
)

// Odds holds the American-odds line for both fighters. Positive numbers mark
// the underdog, negative the favorite.
type Odds struct {
	Fighter1 int `json:"fighter1"`
	Fighter2 int `json:"fighter2"`
}

// Fight is one bout on an event card.
type Fight struct {
	ID           string      `json:"id"`
	EventID      string      `json:"event_id"`
	Fighter1ID   string      `json:"fighter1_id"`
	Fighter2ID   string      `json:"fighter2_id"`
	WeightClass  string      `json:"weight_class"`
	Rounds       int         `json:"rounds"` // 1, 3 or 5
	IsTitleFight bool        `json:"is_title_fight"`
	Odds         Odds        `json:"odds"`
	Card         CardSegment `json:"card"`
	StartTime    time.Time   `json:"start_time"`
	Status       FightStatus `json:"status"`

	// Result fields, set when Status becomes completed.
	WinnerID *string `json:"winner_id,omitempty"`
	Method   *Method `json:"method,omitempty"`
	Time     *string `json:"time,omitempty"`
}

// OddsFor returns the American odds line for the given fighter. The second
// return is false when the fighter is not part of this fight.
func (f *Fight) OddsFor(fighterID string) (int, bool) {
	switch fighterID {
	case f.Fighter1ID:
		return f.Odds.Fighter1, true
	case f.Fighter2ID:
		return f.Odds.Fighter2, true
	}
	return 0, false
}

// HasFighter reports whether fighterID is one of the two fighters.
func (f *Fight) HasFighter(fighterID string) bool {
	return fighterID == f.Fighter1ID || fighterID == f.Fighter2ID
}

// Event is a fight card: an ordered set of fights partitioned into the main
// and preliminary cards. The earliest start time within each partition gates
// that partition's prediction lock.
type Event struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Date     time.Time   `json:"date"`
	Location string      `json:"location"`
	Status   EventStatus `json:"status"`
	MainCard []Fight     `json:"main_card"`
	Prelims  []Fight     `json:"prelims"`
}

// FightResult carries the outcome posted for a completed fight.
type FightResult struct {
	WinnerID string `json:"winner_id"`
	Method   Method `json:"method"`
	Round    int    `json:"round,omitempty"`
	Time     string `json:"time,omitempty"`
}

// User is the minimal identity the leaderboard needs.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
