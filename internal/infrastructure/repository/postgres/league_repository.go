package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/courtdesk/basketref/internal/domain/league"
	qb "github.com/courtdesk/basketref/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("id_lea", "league_id", "name", "country", "level").From("league").
		OrderBy("name ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []struct {
		ID      int64  `db:"id_lea"`
		Code    string `db:"league_id"`
		Name    string `db:"name"`
		Country string `db:"country"`
		Level   string `db:"level"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.League{
			ID:      row.ID,
			Code:    row.Code,
			Name:    row.Name,
			Country: row.Country,
			Level:   row.Level,
		})
	}

	return out, nil
}

func (r *LeagueRepository) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := qb.Select("id_lea", "name").From("league").
		Where(qb.In("id_lea", int64SliceToAny(ids))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select league names query: %w", err)
	}

	var rows []struct {
		ID   int64  `db:"id_lea"`
		Name string `db:"name"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select league names: %w", err)
	}

	for _, row := range rows {
		out[row.ID] = row.Name
	}

	return out, nil
}

func (r *LeagueRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(id_lea) FROM league"); err != nil {
		return 0, fmt.Errorf("count leagues: %w", err)
	}
	return count, nil
}
