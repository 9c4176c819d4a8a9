package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/courtdesk/basketref/internal/domain/player"
	qb "github.com/courtdesk/basketref/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id_pla",
	"player_id",
	"name",
	"date_of_birth",
	"height",
	"citizenship",
	"current_club_id",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	builder := qb.Select(playerSelectColumns...).From("player").
		OrderBy("name ASC").
		Limit(player.ListCap)

	if filter.NameContains != "" {
		builder = builder.Where(qb.ILike("name", filter.NameContains))
	}
	if filter.ClubID != nil {
		builder = builder.Where(qb.Eq("current_club_id", *filter.ClubID))
	}
	if filter.Citizenship != "" {
		builder = builder.Where(qb.Eq("citizenship", filter.Citizenship))
	}
	if filter.Confederation != "" {
		builder = builder.Where(qb.Expr(
			"citizenship IN (SELECT country FROM national_team WHERE confederation = ?)",
			filter.Confederation,
		))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromTableModel(row))
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("player").
		Where(qb.Eq("id_pla", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player %d: %w", id, err)
	}

	return playerFromTableModel(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (int64, error) {
	query, args, err := qb.InsertInto("player").
		Columns("player_id", "name", "date_of_birth", "height", "citizenship", "current_club_id").
		Values(p.Code, p.Name, p.DateOfBirth, nullableFloat(p.Height), nullableString(p.Citizenship), nullableInt(p.ClubID)).
		Suffix("RETURNING id_pla").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert player query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert player: %w", err)
	}

	return id, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	query, args, err := qb.Update("player").
		Set("player_id", p.Code).
		Set("name", p.Name).
		Set("date_of_birth", p.DateOfBirth).
		Set("height", nullableFloat(p.Height)).
		Set("citizenship", nullableString(p.Citizenship)).
		Set("current_club_id", nullableInt(p.ClubID)).
		Where(qb.Eq("id_pla", p.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player %d: %w", p.ID, err)
	}

	return nil
}

func (r *PlayerRepository) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := qb.Select("id_pla", "name").From("player").
		Where(qb.In("id_pla", int64SliceToAny(ids))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player names query: %w", err)
	}

	var rows []struct {
		ID   int64  `db:"id_pla"`
		Name string `db:"name"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player names: %w", err)
	}

	for _, row := range rows {
		out[row.ID] = row.Name
	}

	return out, nil
}

func (r *PlayerRepository) DistinctCitizenships(ctx context.Context) ([]string, error) {
	query, args, err := qb.Select("DISTINCT citizenship").From("player").
		Where(
			qb.Expr("citizenship IS NOT NULL"),
			qb.Expr("citizenship <> ''"),
		).
		OrderBy("citizenship ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select distinct citizenships query: %w", err)
	}

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select distinct citizenships: %w", err)
	}

	return out, nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(id_pla) FROM player"); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return count, nil
}

func playerFromTableModel(row playerTableModel) player.Player {
	p := player.Player{
		ID:          row.ID,
		Code:        row.Code,
		Name:        row.Name,
		DateOfBirth: row.DateOfBirth,
		Citizenship: row.Citizenship.String,
	}
	if row.Height.Valid {
		height := row.Height.Float64
		p.Height = &height
	}
	if row.ClubID.Valid {
		clubID := row.ClubID.Int64
		p.ClubID = &clubID
	}
	return p
}

func nullableFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullableString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

func nullableInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
