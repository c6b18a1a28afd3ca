package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/touchlinehq/touchline/internal/domain/match"
	"github.com/touchlinehq/touchline/internal/domain/team"
	matchmock "github.com/touchlinehq/touchline/internal/mocks/domain/match"
	teammock "github.com/touchlinehq/touchline/internal/mocks/domain/team"
)

func TestMatchService_ListMatchesByTeam_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewMatchService(matchRepo, teamRepo, &sequenceIDGenerator{})
	teamID := "ravens-u12-2026"
	expected := []match.Match{
		{ID: "m-1", TeamID: teamID, Opponent: "Harbor United", PlayedAt: time.Date(2026, time.April, 4, 9, 0, 0, 0, time.UTC)},
		{ID: "m-2", TeamID: teamID, Opponent: "Eastside FC", PlayedAt: time.Date(2026, time.April, 11, 9, 0, 0, 0, time.UTC)},
	}

	teamRepo.
		On("GetByID", mock.Anything, teamID).
		Return(team.Team{ID: teamID, Name: "Ravens U12"}, true, nil).
		Once()
	matchRepo.
		On("ListByTeam", mock.Anything, teamID).
		Return(expected, nil).
		Once()

	got, err := service.ListMatchesByTeam(ctx, teamID)
	if err != nil {
		t.Fatalf("list matches by team: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("unexpected match count: got=%d want=%d", len(got), len(expected))
	}
	if got[0].ID != expected[0].ID {
		t.Fatalf("unexpected match id: got=%s want=%s", got[0].ID, expected[0].ID)
	}
}

func TestMatchService_ListMatchesByTeam_TeamNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	matchRepo := matchmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewMatchService(matchRepo, teamRepo, &sequenceIDGenerator{})
	teamID := "missing-team"

	teamRepo.
		On("GetByID", mock.Anything, teamID).
		Return(team.Team{}, false, nil).
		Once()

	_, err := service.ListMatchesByTeam(context.Background(), teamID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_DeleteMatch_RepoErrorUsingMockery(t *testing.T) {
	t.Parallel()

	matchRepo := matchmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)

	service := NewMatchService(matchRepo, teamRepo, &sequenceIDGenerator{})
	repoErr := errors.New("connection reset")

	matchRepo.
		On("GetByID", mock.Anything, "m-9").
		Return(match.Match{ID: "m-9"}, true, nil).
		Once()
	matchRepo.
		On("Delete", mock.Anything, "m-9").
		Return(repoErr).
		Once()

	err := service.DeleteMatch(context.Background(), "m-9")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error, got %v", err)
	}
}
