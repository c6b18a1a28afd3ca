package cache

import (
	"context"
	"testing"
	"time"

	"github.com/touchlinehq/touchline/internal/domain/team"
	basecache "github.com/touchlinehq/touchline/internal/platform/cache"
)

type countingTeamRepository struct {
	items     map[string]team.Team
	listCalls int
	getCalls  int
}

func (r *countingTeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.listCalls++
	out := make([]team.Team, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *countingTeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.getCalls++
	item, ok := r.items[teamID]
	return item, ok, nil
}

func (r *countingTeamRepository) Create(_ context.Context, item team.Team) error {
	r.items[item.ID] = item
	return nil
}

func TestTeamRepository_GetByID_ServesSecondReadFromCache(t *testing.T) {
	t.Parallel()

	next := &countingTeamRepository{items: map[string]team.Team{
		"ravens-u12-2026": {ID: "ravens-u12-2026", Name: "Ravens U12"},
	}}
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	for i := 0; i < 2; i++ {
		got, exists, err := repo.GetByID(context.Background(), "ravens-u12-2026")
		if err != nil {
			t.Fatalf("get by id: %v", err)
		}
		if !exists || got.Name != "Ravens U12" {
			t.Fatalf("unexpected result: exists=%v team=%+v", exists, got)
		}
	}

	if next.getCalls != 1 {
		t.Fatalf("expected one backing read, got %d", next.getCalls)
	}
}

func TestTeamRepository_GetByID_CachesMisses(t *testing.T) {
	t.Parallel()

	next := &countingTeamRepository{items: map[string]team.Team{}}
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	for i := 0; i < 2; i++ {
		_, exists, err := repo.GetByID(context.Background(), "ghost-team")
		if err != nil {
			t.Fatalf("get by id: %v", err)
		}
		if exists {
			t.Fatalf("expected miss")
		}
	}

	if next.getCalls != 1 {
		t.Fatalf("expected one backing read, got %d", next.getCalls)
	}
}

func TestTeamRepository_Create_InvalidatesCachedReads(t *testing.T) {
	t.Parallel()

	next := &countingTeamRepository{items: map[string]team.Team{}}
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	if items, err := repo.List(context.Background()); err != nil || len(items) != 0 {
		t.Fatalf("unexpected initial list: items=%d err=%v", len(items), err)
	}

	err := repo.Create(context.Background(), team.Team{ID: "hawks-u14-2026", Name: "Hawks U14"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list after create: %v", err)
	}
	if len(items) != 1 || items[0].ID != "hawks-u14-2026" {
		t.Fatalf("expected created team visible, got %+v", items)
	}
	if next.listCalls != 2 {
		t.Fatalf("expected cache invalidation to force a reload, got %d backing reads", next.listCalls)
	}
}
