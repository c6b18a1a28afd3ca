package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/touchlinehq/touchline/internal/domain/match"
	qb "github.com/touchlinehq/touchline/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	rawJSON, computedJSON, err := marshalMatchStats(item.RawStats, item.Computed)
	if err != nil {
		return err
	}

	insertModel := matchInsertModel{
		PublicID:  item.ID,
		TeamID:    item.TeamID,
		Opponent:  item.Opponent,
		PlayedAt:  item.PlayedAt,
		Location:  item.Location,
		Notes:     item.Notes,
		RawStats:  rawJSON,
		Computed:  computedJSON,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}

	query, args, err := qb.InsertModel("matches", insertModel)
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match id=%s: %w", item.ID, err)
	}

	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match by id: %w", err)
	}

	item, err := matchFromTableModel(row)
	if err != nil {
		return match.Match{}, false, err
	}
	return item, true, nil
}

func (r *MatchRepository) ListByTeam(ctx context.Context, teamID string) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("played_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by team query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) ListAll(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) UpdateStats(ctx context.Context, matchID string, raw map[string]any, computed map[string]float64, updatedAt time.Time) error {
	rawJSON, computedJSON, err := marshalMatchStats(raw, computed)
	if err != nil {
		return err
	}

	query, args, err := qb.Update("matches").
		Set("raw_stats", rawJSON).
		Set("computed_stats", computedJSON).
		Set("updated_at", updatedAt).
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match stats query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match stats id=%s: %w", matchID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update match stats rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("match %s not found", matchID)
	}

	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, matchID string) error {
	query, args, err := qb.Update("matches").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete match id=%s: %w", matchID, err)
	}

	return nil
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item, err := matchFromTableModel(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func matchFromTableModel(row matchTableModel) (match.Match, error) {
	item := match.Match{
		ID:        row.PublicID,
		TeamID:    row.TeamID,
		Opponent:  row.Opponent,
		PlayedAt:  row.PlayedAt,
		Location:  row.Location,
		Notes:     row.Notes,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.RawStats != "" {
		if err := sonic.UnmarshalString(row.RawStats, &item.RawStats); err != nil {
			return match.Match{}, fmt.Errorf("decode raw stats match=%s: %w", row.PublicID, err)
		}
	}
	if row.Computed != "" {
		if err := sonic.UnmarshalString(row.Computed, &item.Computed); err != nil {
			return match.Match{}, fmt.Errorf("decode computed stats match=%s: %w", row.PublicID, err)
		}
	}

	return item, nil
}

func marshalMatchStats(raw map[string]any, computed map[string]float64) (string, string, error) {
	if raw == nil {
		raw = map[string]any{}
	}
	if computed == nil {
		computed = map[string]float64{}
	}

	rawJSON, err := sonic.MarshalString(raw)
	if err != nil {
		return "", "", fmt.Errorf("encode raw stats: %w", err)
	}
	computedJSON, err := sonic.MarshalString(computed)
	if err != nil {
		return "", "", fmt.Errorf("encode computed stats: %w", err)
	}

	return rawJSON, computedJSON, nil
}
