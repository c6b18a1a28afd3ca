package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/touchlinehq/touchline/internal/domain/team"
	"github.com/touchlinehq/touchline/internal/platform/id"
)

type CreateTeamInput struct {
	Name     string
	AgeGroup string
	Season   string
}

type TeamService struct {
	teamRepo team.Repository
	idGen    id.Generator
	now      func() time.Time
}

func NewTeamService(teamRepo team.Repository, idGen id.Generator) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		idGen:    idGen,
		now:      time.Now,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	item := team.Team{
		ID:        teamID,
		Name:      strings.TrimSpace(input.Name),
		AgeGroup:  strings.TrimSpace(input.AgeGroup),
		Season:    strings.TrimSpace(input.Season),
		CreatedAt: s.now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return item, nil
}
