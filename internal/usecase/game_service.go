package usecase

import (
	"context"
	"fmt"

	"github.com/courtdesk/basketref/internal/domain/championship"
	"github.com/courtdesk/basketref/internal/domain/club"
	"github.com/courtdesk/basketref/internal/domain/game"
	"github.com/courtdesk/basketref/internal/domain/league"
	"github.com/courtdesk/basketref/internal/domain/nationalteam"
	"github.com/courtdesk/basketref/internal/domain/stats"
)

type GameService struct {
	gameRepo         game.Repository
	clubRepo         club.Repository
	teamRepo         nationalteam.Repository
	leagueRepo       league.Repository
	championshipRepo championship.Repository
	playerRepo       playerNameResolver
	statsRepo        stats.Repository
}

// playerNameResolver is the slice of the player repository game pages need.
type playerNameResolver interface {
	NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}

func NewGameService(
	gameRepo game.Repository,
	clubRepo club.Repository,
	teamRepo nationalteam.Repository,
	leagueRepo league.Repository,
	championshipRepo championship.Repository,
	playerRepo playerNameResolver,
	statsRepo stats.Repository,
) *GameService {
	return &GameService{
		gameRepo:         gameRepo,
		clubRepo:         clubRepo,
		teamRepo:         teamRepo,
		leagueRepo:       leagueRepo,
		championshipRepo: championshipRepo,
		playerRepo:       playerRepo,
		statsRepo:        statsRepo,
	}
}

// GameListing carries the filtered page plus distinct filter values.
type GameListing struct {
	Games   []game.Game
	Leagues []league.League
	Seasons []string
	Types   []string
}

// GameDetail is a game page: the annotated game plus its per-player lines
// with derived points.
type GameDetail struct {
	Game  game.Game
	Lines []GameLine
}

func (s *GameService) List(ctx context.Context, filter game.Filter) (GameListing, error) {
	ctx, span := startSpan(ctx, "usecase.GameService.List")
	defer span.End()

	games, err := s.gameRepo.List(ctx, filter)
	if err != nil {
		return GameListing{}, fmt.Errorf("list games: %w", err)
	}

	if err := s.annotateGames(ctx, games); err != nil {
		return GameListing{}, err
	}

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return GameListing{}, fmt.Errorf("list leagues: %w", err)
	}

	seasons, err := s.gameRepo.DistinctSeasons(ctx)
	if err != nil {
		return GameListing{}, fmt.Errorf("list distinct seasons: %w", err)
	}

	types, err := s.gameRepo.DistinctTypes(ctx)
	if err != nil {
		return GameListing{}, fmt.Errorf("list distinct game types: %w", err)
	}

	return GameListing{Games: games, Leagues: leagues, Seasons: seasons, Types: types}, nil
}

func (s *GameService) Get(ctx context.Context, id int64) (GameDetail, error) {
	ctx, span := startSpan(ctx, "usecase.GameService.Get")
	defer span.End()

	g, found, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		return GameDetail{}, fmt.Errorf("get game %d: %w", id, err)
	}
	if !found {
		return GameDetail{}, fmt.Errorf("%w: game %d", ErrNotFound, id)
	}

	games := []game.Game{g}
	if err := s.annotateGames(ctx, games); err != nil {
		return GameDetail{}, err
	}

	lines, err := s.statsRepo.ListByGame(ctx, id)
	if err != nil {
		return GameDetail{}, fmt.Errorf("list stat lines for game %d: %w", id, err)
	}

	playerIDs := make([]int64, 0, len(lines))
	for _, line := range lines {
		playerIDs = append(playerIDs, line.PlayerID)
	}
	playerNames, err := s.playerRepo.NamesByIDs(ctx, playerIDs)
	if err != nil {
		return GameDetail{}, fmt.Errorf("resolve player names: %w", err)
	}

	detail := GameDetail{Game: games[0], Lines: make([]GameLine, 0, len(lines))}
	for _, line := range lines {
		if name, ok := playerNames[line.PlayerID]; ok {
			line.PlayerName = name
		}
		detail.Lines = append(detail.Lines, GameLine{Line: line, Points: line.Points()})
	}

	return detail, nil
}

// annotateGames resolves display names for every participant of a page of
// games in two bulk lookups, plus league/championship names. Collecting ids
// across the whole batch first keeps this off an N+1 access pattern.
func (s *GameService) annotateGames(ctx context.Context, games []game.Game) error {
	ctx, span := startSpan(ctx, "usecase.GameService.annotateGames")
	defer span.End()

	clubIDs := make(map[int64]struct{})
	teamIDs := make(map[int64]struct{})
	leagueIDs := make(map[int64]struct{})
	championshipIDs := make(map[int64]struct{})
	for _, g := range games {
		for _, participant := range g.Participants {
			switch participant.Ref.Kind {
			case game.KindClub:
				clubIDs[participant.Ref.ID] = struct{}{}
			case game.KindNational:
				teamIDs[participant.Ref.ID] = struct{}{}
			}
		}
		if g.LeagueID != nil {
			leagueIDs[*g.LeagueID] = struct{}{}
		}
		if g.ChampionshipID != nil {
			championshipIDs[*g.ChampionshipID] = struct{}{}
		}
	}

	clubNames, err := s.clubRepo.NamesByIDs(ctx, setToSlice(clubIDs))
	if err != nil {
		return fmt.Errorf("resolve club names: %w", err)
	}
	teamCountries, err := s.teamRepo.CountriesByIDs(ctx, setToSlice(teamIDs))
	if err != nil {
		return fmt.Errorf("resolve national team countries: %w", err)
	}
	leagueNames, err := s.leagueRepo.NamesByIDs(ctx, setToSlice(leagueIDs))
	if err != nil {
		return fmt.Errorf("resolve league names: %w", err)
	}
	championshipNames, err := s.championshipRepo.NamesByIDs(ctx, setToSlice(championshipIDs))
	if err != nil {
		return fmt.Errorf("resolve championship names: %w", err)
	}

	for gi := range games {
		g := &games[gi]
		for pi := range g.Participants {
			participant := &g.Participants[pi]
			name := ""
			switch participant.Ref.Kind {
			case game.KindClub:
				name = clubNames[participant.Ref.ID]
			case game.KindNational:
				name = teamCountries[participant.Ref.ID]
			}
			if name == "" {
				name = participant.Ref.FallbackLabel()
			}
			participant.DisplayName = name
		}
		if g.LeagueID != nil {
			g.LeagueName = leagueNames[*g.LeagueID]
		}
		if g.ChampionshipID != nil {
			g.ChampionshipName = championshipNames[*g.ChampionshipID]
		}
	}

	return nil
}

func setToSlice(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
