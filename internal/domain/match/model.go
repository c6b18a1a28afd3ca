package match

import "time"

// Match is one logged game for a team. RawStats holds the canonicalized
// as-entered values (the merge target on updates); Computed holds the derived
// metrics. Both are persisted as opaque JSON blobs keyed by the match id.
type Match struct {
	ID        string
	TeamID    string
	Opponent  string
	PlayedAt  time.Time
	Location  string
	Notes     string
	RawStats  map[string]any
	Computed  map[string]float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
