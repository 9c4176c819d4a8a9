package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/courtdesk/basketref/internal/domain/game"
	qb "github.com/courtdesk/basketref/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

var gameSelectColumns = []string{
	"id_gam",
	"game_id",
	"game_date",
	"location",
	"game_type",
	"season",
	"id_lea",
	"id_cha",
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) List(ctx context.Context, filter game.Filter) ([]game.Game, error) {
	builder := qb.Select(gameSelectColumns...).From("game").
		OrderBy("game_date DESC").
		Limit(game.ListCap)

	if filter.SeasonContains != "" {
		builder = builder.Where(qb.ILike("season", filter.SeasonContains))
	}
	if filter.TypeContains != "" {
		builder = builder.Where(qb.ILike("game_type", filter.TypeContains))
	}
	if filter.LeagueID != nil {
		builder = builder.Where(qb.Eq("id_lea", *filter.LeagueID))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games query: %w", err)
	}

	return r.selectGames(ctx, query, args)
}

func (r *GameRepository) GetByID(ctx context.Context, id int64) (game.Game, bool, error) {
	query, args, err := qb.Select(gameSelectColumns...).From("game").
		Where(qb.Eq("id_gam", id)).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build select game query: %w", err)
	}

	games, err := r.selectGames(ctx, query, args)
	if err != nil {
		return game.Game{}, false, err
	}
	if len(games) == 0 {
		return game.Game{}, false, nil
	}

	return games[0], true, nil
}

func (r *GameRepository) Upcoming(ctx context.Context, from time.Time, limit int) ([]game.Game, error) {
	query, args, err := qb.Select(gameSelectColumns...).From("game").
		Where(qb.Gte("game_date", from)).
		OrderBy("game_date ASC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select upcoming games query: %w", err)
	}

	return r.selectGames(ctx, query, args)
}

func (r *GameRepository) DistinctSeasons(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "season")
}

func (r *GameRepository) DistinctTypes(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "game_type")
}

func (r *GameRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(id_gam) FROM game"); err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	return count, nil
}

func (r *GameRepository) distinctColumn(ctx context.Context, column string) ([]string, error) {
	query, args, err := qb.Select("DISTINCT "+column).From("game").
		Where(
			qb.Expr(column+" IS NOT NULL"),
			qb.Expr(column+" <> ''"),
		).
		OrderBy(column + " ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select distinct %s query: %w", column, err)
	}

	var out []string
	if err := r.db.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("select distinct %s: %w", column, err)
	}

	return out, nil
}

// selectGames loads the game page and then attaches participants for the
// whole page with a single IN query.
func (r *GameRepository) selectGames(ctx context.Context, query string, args []any) ([]game.Game, error) {
	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}
	if len(rows) == 0 {
		return []game.Game{}, nil
	}

	gameIDs := make([]int64, 0, len(rows))
	out := make([]game.Game, 0, len(rows))
	indexByID := make(map[int64]int, len(rows))
	for i, row := range rows {
		gameIDs = append(gameIDs, row.ID)
		indexByID[row.ID] = i

		g := game.Game{
			ID:       row.ID,
			Code:     row.Code,
			Date:     row.Date,
			Location: row.Location,
			Type:     row.Type,
			Season:   row.Season.String,
		}
		if row.LeagueID.Valid {
			leagueID := row.LeagueID.Int64
			g.LeagueID = &leagueID
		}
		if row.ChampionshipID.Valid {
			championshipID := row.ChampionshipID.Int64
			g.ChampionshipID = &championshipID
		}
		out = append(out, g)
	}

	participantsQuery, participantsArgs, err := qb.Select(
		"id_gam", "participant_id", "participant_type", "score", "role",
	).From("game_participant").
		Where(qb.In("id_gam", int64SliceToAny(gameIDs))).
		OrderBy("id_gam", "role ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select game participants query: %w", err)
	}

	var participantRows []gameParticipantTableModel
	if err := r.db.SelectContext(ctx, &participantRows, participantsQuery, participantsArgs...); err != nil {
		return nil, fmt.Errorf("select game participants: %w", err)
	}

	for _, row := range participantRows {
		idx, ok := indexByID[row.GameID]
		if !ok {
			continue
		}
		out[idx].Participants = append(out[idx].Participants, game.Participant{
			Ref: game.ParticipantRef{
				Kind: game.ParseParticipantKind(row.ParticipantType),
				ID:   row.ParticipantID,
			},
			Score: int(row.Score.Int64),
			Role:  row.Role.String,
		})
	}

	return out, nil
}
