package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/touchlinehq/touchline/internal/domain/team"
)

func newTeamServiceForTest(teamRepo *stubTeamRepository) *TeamService {
	service := NewTeamService(teamRepo, &sequenceIDGenerator{})
	service.now = func() time.Time {
		return time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)
	}
	return service
}

func TestTeamService_CreateTeam(t *testing.T) {
	t.Parallel()

	teamRepo := &stubTeamRepository{}
	service := newTeamServiceForTest(teamRepo)

	got, err := service.CreateTeam(context.Background(), CreateTeamInput{
		Name:     "  Ravens U12  ",
		AgeGroup: "U12",
		Season:   "2026",
	})
	if err != nil {
		t.Fatalf("CreateTeam error: %v", err)
	}

	if got.ID == "" {
		t.Fatalf("expected generated team id")
	}
	if got.Name != "Ravens U12" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}
	if len(teamRepo.created) != 1 {
		t.Fatalf("expected 1 created team, got %d", len(teamRepo.created))
	}
}

func TestTeamService_CreateTeam_RequiresName(t *testing.T) {
	t.Parallel()

	service := newTeamServiceForTest(&stubTeamRepository{})

	_, err := service.CreateTeam(context.Background(), CreateTeamInput{AgeGroup: "U12"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamService_GetTeam_NotFound(t *testing.T) {
	t.Parallel()

	service := newTeamServiceForTest(&stubTeamRepository{})

	_, err := service.GetTeam(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamService_ListTeams(t *testing.T) {
	t.Parallel()

	service := newTeamServiceForTest(&stubTeamRepository{
		byID: map[string]team.Team{
			"t1": {ID: "t1", Name: "Ravens U12"},
			"t2": {ID: "t2", Name: "Ravens U13"},
		},
	})

	got, err := service.ListTeams(context.Background())
	if err != nil {
		t.Fatalf("ListTeams error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(got))
	}
}
