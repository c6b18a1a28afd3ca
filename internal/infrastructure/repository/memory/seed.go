package memory

import (
	"time"

	"github.com/touchlinehq/touchline/internal/domain/match"
	"github.com/touchlinehq/touchline/internal/domain/matchstats"
	"github.com/touchlinehq/touchline/internal/domain/team"
)

const (
	TeamIDRavensU12 = "ravens-u12-2026"
	TeamIDRavensU14 = "ravens-u14-2026"
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDRavensU12, Name: "Riverside Ravens U12", AgeGroup: "U12", Season: "2026"},
		{ID: TeamIDRavensU14, Name: "Riverside Ravens U14", AgeGroup: "U14", Season: "2026"},
	}
}

func SeedMatches() []match.Match {
	playedAt := time.Date(2026, 3, 7, 9, 30, 0, 0, time.UTC)

	raw := map[string]any{
		"goalsFor1stHalf":   float64(2),
		"goalsFor2ndHalf":   float64(1),
		"shotsFor1stHalf":   float64(6),
		"shotsFor2ndHalf":   float64(8),
		"goalsAgainst":      float64(1),
		"shotsAgainst":      float64(5),
		"passesFor":         float64(380),
		"passesAgainst":     float64(290),
		"possessionMins":    float64(47.5),
		"matchDuration":     float64(71),
		"insideBoxAttempts": float64(60),
		"3-pass string":     float64(14),
		"4-pass string":     float64(7),
		"5-pass string":     float64(4),
		"6-pass string":     float64(2),
	}

	return []match.Match{
		{
			ID:        "seed-match-0001",
			TeamID:    TeamIDRavensU12,
			Opponent:  "Harbor FC U12",
			PlayedAt:  playedAt,
			Location:  "Riverside Park Field 2",
			RawStats:  raw,
			Computed:  matchstats.Compute(raw),
			CreatedAt: playedAt,
			UpdatedAt: playedAt,
		},
	}
}
