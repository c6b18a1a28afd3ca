package match

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, item Match) error
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]Match, error)
	ListAll(ctx context.Context) ([]Match, error)
	UpdateStats(ctx context.Context, matchID string, raw map[string]any, computed map[string]float64, updatedAt time.Time) error
	Delete(ctx context.Context, matchID string) error
}
