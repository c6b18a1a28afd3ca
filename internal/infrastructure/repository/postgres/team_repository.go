package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/touchlinehq/touchline/internal/domain/team"
	qb "github.com/touchlinehq/touchline/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.IsNull("deleted_at")).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromTableModel(row))
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by id: %w", err)
	}

	return teamFromTableModel(row), true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	insertModel := teamInsertModel{
		PublicID:  item.ID,
		Name:      item.Name,
		AgeGroup:  item.AgeGroup,
		Season:    item.Season,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.CreatedAt,
	}

	query, args, err := qb.InsertModel("teams", insertModel)
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert team id=%s: %w", item.ID, err)
	}

	return nil
}

func teamFromTableModel(row teamTableModel) team.Team {
	return team.Team{
		ID:        row.PublicID,
		Name:      row.Name,
		AgeGroup:  row.AgeGroup,
		Season:    row.Season,
		CreatedAt: row.CreatedAt,
	}
}
