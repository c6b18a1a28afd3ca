// Package cache wraps repositories with a read-through TTL cache. Teams
// change rarely compared to how often match recording looks them up, so the
// team repository is the one worth fronting.
package cache

import (
	"context"

	"github.com/touchlinehq/touchline/internal/domain/team"
	basecache "github.com/touchlinehq/touchline/internal/platform/cache"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	key := "team:id:" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "team:")
	return nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}
