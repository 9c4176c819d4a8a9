package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/courtdesk/basketref/internal/domain/stats"
	qb "github.com/courtdesk/basketref/internal/platform/querybuilder"
)

// pointsExpr is the single scoring rule: made shots only, attempts never
// contribute.
const pointsExpr = "points_2pts_made * 2 + points_3pts_made * 3 + free_throws_made"

type StatsRepository struct {
	db *sqlx.DB
}

var statLineSelectColumns = []string{
	"id_gam",
	"id_pla",
	"points_2pts_made",
	"points_2pts_attempted",
	"points_3pts_made",
	"points_3pts_attempted",
	"free_throws_made",
	"free_throws_attempted",
	"assists",
	"rebounds",
	"blocks",
}

type statLineTableModel struct {
	GameID   int64 `db:"id_gam"`
	PlayerID int64 `db:"id_pla"`
	Made2Pt  int   `db:"points_2pts_made"`
	Att2Pt   int   `db:"points_2pts_attempted"`
	Made3Pt  int   `db:"points_3pts_made"`
	Att3Pt   int   `db:"points_3pts_attempted"`
	MadeFT   int   `db:"free_throws_made"`
	AttFT    int   `db:"free_throws_attempted"`
	Assists  int   `db:"assists"`
	Rebounds int   `db:"rebounds"`
	Blocks   int   `db:"blocks"`
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) ListByPlayer(ctx context.Context, playerID int64) ([]stats.Line, error) {
	query, args, err := qb.Select(statLineSelectColumns...).From("player_game_stats").
		Where(qb.Eq("id_pla", playerID)).
		OrderBy("id_gam ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select stat lines by player query: %w", err)
	}

	return r.selectLines(ctx, query, args)
}

func (r *StatsRepository) ListByGame(ctx context.Context, gameID int64) ([]stats.Line, error) {
	query, args, err := qb.Select(statLineSelectColumns...).From("player_game_stats").
		Where(qb.Eq("id_gam", gameID)).
		OrderBy("id_pla ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select stat lines by game query: %w", err)
	}

	return r.selectLines(ctx, query, args)
}

// Leaderboard groups every stat line by player and sums derived points in
// SQL. Equal totals order by player name ascending, a deliberate explicit
// tie-break.
func (r *StatsRepository) Leaderboard(ctx context.Context, limit int) ([]stats.LeaderboardEntry, error) {
	query, args, err := qb.Select(
		"player.id_pla",
		"player.name",
		"COALESCE(SUM("+pointsExpr+"), 0) AS total_points",
	).From("player_game_stats JOIN player ON player.id_pla = player_game_stats.id_pla").
		GroupBy("player.id_pla", "player.name").
		OrderBy("total_points DESC", "player.name ASC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build leaderboard query: %w", err)
	}

	var rows []struct {
		PlayerID    int64  `db:"id_pla"`
		PlayerName  string `db:"name"`
		TotalPoints int    `db:"total_points"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leaderboard: %w", err)
	}

	out := make([]stats.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.LeaderboardEntry{
			PlayerID:    row.PlayerID,
			PlayerName:  row.PlayerName,
			TotalPoints: row.TotalPoints,
		})
	}

	return out, nil
}

// CitizenshipDistribution counts players per citizenship, dropping rows with
// no citizenship recorded.
func (r *StatsRepository) CitizenshipDistribution(ctx context.Context) ([]stats.CategoryCount, error) {
	query, args, err := qb.Select(
		"citizenship",
		"COUNT(id_pla) AS total",
	).From("player").
		Where(
			qb.Expr("citizenship IS NOT NULL"),
			qb.Expr("citizenship <> ''"),
		).
		GroupBy("citizenship").
		OrderBy("total DESC", "citizenship ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build citizenship distribution query: %w", err)
	}

	var rows []struct {
		Citizenship string `db:"citizenship"`
		Total       int    `db:"total"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select citizenship distribution: %w", err)
	}

	out := make([]stats.CategoryCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.CategoryCount{Category: row.Citizenship, Count: row.Total})
	}

	return out, nil
}

func (r *StatsRepository) selectLines(ctx context.Context, query string, args []any) ([]stats.Line, error) {
	var rows []statLineTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select stat lines: %w", err)
	}

	out := make([]stats.Line, 0, len(rows))
	for _, row := range rows {
		out = append(out, stats.Line{
			GameID:   row.GameID,
			PlayerID: row.PlayerID,
			Made2Pt:  row.Made2Pt,
			Att2Pt:   row.Att2Pt,
			Made3Pt:  row.Made3Pt,
			Att3Pt:   row.Att3Pt,
			MadeFT:   row.MadeFT,
			AttFT:    row.AttFT,
			Assists:  row.Assists,
			Rebounds: row.Rebounds,
			Blocks:   row.Blocks,
		})
	}

	return out, nil
}
