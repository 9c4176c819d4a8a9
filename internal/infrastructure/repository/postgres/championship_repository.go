package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	qb "github.com/courtdesk/basketref/internal/platform/querybuilder"
)

type ChampionshipRepository struct {
	db *sqlx.DB
}

func NewChampionshipRepository(db *sqlx.DB) *ChampionshipRepository {
	return &ChampionshipRepository{db: db}
}

func (r *ChampionshipRepository) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := qb.Select("id_cha", "name").From("championship").
		Where(qb.In("id_cha", int64SliceToAny(ids))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select championship names query: %w", err)
	}

	var rows []struct {
		ID   int64  `db:"id_cha"`
		Name string `db:"name"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select championship names: %w", err)
	}

	for _, row := range rows {
		out[row.ID] = row.Name
	}

	return out, nil
}
