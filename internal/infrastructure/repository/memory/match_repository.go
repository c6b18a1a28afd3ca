package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/touchlinehq/touchline/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	items  map[string]match.Match
	orders []string
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make(map[string]match.Match, len(matches))
	orders := make([]string, 0, len(matches))

	for _, m := range matches {
		items[m.ID] = m
		orders = append(orders, m.ID)
	}

	return &MatchRepository{
		items:  items,
		orders: orders,
	}
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("match %s already exists", item.ID)
	}
	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)

	return nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return m, true, nil
}

func (r *MatchRepository) ListByTeam(_ context.Context, teamID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.orders))
	for _, id := range r.orders {
		if m := r.items[id]; m.TeamID == teamID {
			out = append(out, m)
		}
	}

	return out, nil
}

func (r *MatchRepository) ListAll(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *MatchRepository) UpdateStats(_ context.Context, matchID string, raw map[string]any, computed map[string]float64, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[matchID]
	if !ok {
		return fmt.Errorf("match %s not found", matchID)
	}
	m.RawStats = raw
	m.Computed = computed
	m.UpdatedAt = updatedAt
	r.items[matchID] = m

	return nil
}

func (r *MatchRepository) Delete(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[matchID]; !ok {
		return nil
	}
	delete(r.items, matchID)
	for i, id := range r.orders {
		if id == matchID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}
