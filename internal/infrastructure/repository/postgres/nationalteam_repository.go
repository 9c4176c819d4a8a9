package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	qb "github.com/courtdesk/basketref/internal/platform/querybuilder"
)

type NationalTeamRepository struct {
	db *sqlx.DB
}

func NewNationalTeamRepository(db *sqlx.DB) *NationalTeamRepository {
	return &NationalTeamRepository{db: db}
}

func (r *NationalTeamRepository) CountriesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := qb.Select("id_nat", "country").From("national_team").
		Where(qb.In("id_nat", int64SliceToAny(ids))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select national team countries query: %w", err)
	}

	var rows []struct {
		ID      int64  `db:"id_nat"`
		Country string `db:"country"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select national team countries: %w", err)
	}

	for _, row := range rows {
		out[row.ID] = row.Country
	}

	return out, nil
}

func (r *NationalTeamRepository) DistinctConfederations(ctx context.Context) ([]string, error) {
	query, args, err := qb.Select("DISTINCT confederation").From("national_team").
		Where(
			qb.Expr("confederation IS NOT NULL"),
			qb.Expr("confederation <> ''"),
		).
		OrderBy("confederation ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select distinct confederations query: %w", err)
	}

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select distinct confederations: %w", err)
	}

	return out, nil
}
