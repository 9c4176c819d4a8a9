package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/courtdesk/basketref/internal/domain/club"
	qb "github.com/courtdesk/basketref/internal/platform/querybuilder"
)

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) List(ctx context.Context) ([]club.Club, error) {
	query, args, err := qb.Select("id_clu", "club_id", "name", "city").From("clubs").
		OrderBy("name ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select clubs query: %w", err)
	}

	var rows []struct {
		ID   int64  `db:"id_clu"`
		Code string `db:"club_id"`
		Name string `db:"name"`
		City string `db:"city"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select clubs: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, club.Club{ID: row.ID, Code: row.Code, Name: row.Name, City: row.City})
	}

	return out, nil
}

func (r *ClubRepository) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := qb.Select("id_clu", "name").From("clubs").
		Where(qb.In("id_clu", int64SliceToAny(ids))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select club names query: %w", err)
	}

	var rows []struct {
		ID   int64  `db:"id_clu"`
		Name string `db:"name"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select club names: %w", err)
	}

	for _, row := range rows {
		out[row.ID] = row.Name
	}

	return out, nil
}

func (r *ClubRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(id_clu) FROM clubs"); err != nil {
		return 0, fmt.Errorf("count clubs: %w", err)
	}
	return count, nil
}
