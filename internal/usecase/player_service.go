package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/courtdesk/basketref/internal/domain/club"
	"github.com/courtdesk/basketref/internal/domain/nationalteam"
	"github.com/courtdesk/basketref/internal/domain/player"
	"github.com/courtdesk/basketref/internal/domain/stats"
)

type PlayerService struct {
	playerRepo player.Repository
	clubRepo   club.Repository
	teamRepo   nationalteam.Repository
	statsRepo  stats.Repository
}

func NewPlayerService(
	playerRepo player.Repository,
	clubRepo club.Repository,
	teamRepo nationalteam.Repository,
	statsRepo stats.Repository,
) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		clubRepo:   clubRepo,
		teamRepo:   teamRepo,
		statsRepo:  statsRepo,
	}
}

// PlayerRow is one listing row with the club name already resolved.
type PlayerRow struct {
	player.Player
	ClubName string
}

// PlayerListing carries the filtered page plus the distinct values that
// populate the filter dropdowns.
type PlayerListing struct {
	Players        []PlayerRow
	Clubs          []club.Club
	Citizenships   []string
	Confederations []string
}

// GameLine is one stat line with its derived points.
type GameLine struct {
	stats.Line
	Points int
}

// PlayerDetail is a player page: master data plus recomputed career totals
// and the per-game lines behind them.
type PlayerDetail struct {
	Player   player.Player
	ClubName string
	Career   stats.CareerTotals
	Lines    []GameLine
}

// PlayerInput is a validated-at-the-boundary mutation payload.
type PlayerInput struct {
	Code        string
	Name        string
	DateOfBirth time.Time
	Height      *float64
	Citizenship string
	ClubID      *int64
}

func (s *PlayerService) List(ctx context.Context, filter player.Filter) (PlayerListing, error) {
	ctx, span := startSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	players, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return PlayerListing{}, fmt.Errorf("list players: %w", err)
	}

	clubs, err := s.clubRepo.List(ctx)
	if err != nil {
		return PlayerListing{}, fmt.Errorf("list clubs: %w", err)
	}
	clubNameByID := make(map[int64]string, len(clubs))
	for _, c := range clubs {
		clubNameByID[c.ID] = c.Name
	}

	citizenships, err := s.playerRepo.DistinctCitizenships(ctx)
	if err != nil {
		return PlayerListing{}, fmt.Errorf("list distinct citizenships: %w", err)
	}

	confederations, err := s.teamRepo.DistinctConfederations(ctx)
	if err != nil {
		return PlayerListing{}, fmt.Errorf("list distinct confederations: %w", err)
	}

	rows := make([]PlayerRow, 0, len(players))
	for _, p := range players {
		row := PlayerRow{Player: p}
		if p.ClubID != nil {
			row.ClubName = clubNameByID[*p.ClubID]
		}
		rows = append(rows, row)
	}

	return PlayerListing{
		Players:        rows,
		Clubs:          clubs,
		Citizenships:   citizenships,
		Confederations: confederations,
	}, nil
}

// Clubs lists every club, for the assignment dropdown on player forms.
func (s *PlayerService) Clubs(ctx context.Context) ([]club.Club, error) {
	clubs, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	return clubs, nil
}

func (s *PlayerService) Get(ctx context.Context, id int64) (PlayerDetail, error) {
	ctx, span := startSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	p, found, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("get player %d: %w", id, err)
	}
	if !found {
		return PlayerDetail{}, fmt.Errorf("%w: player %d", ErrNotFound, id)
	}

	lines, err := s.statsRepo.ListByPlayer(ctx, id)
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("list stat lines for player %d: %w", id, err)
	}

	detail := PlayerDetail{
		Player: p,
		Career: stats.Career(lines),
		Lines:  make([]GameLine, 0, len(lines)),
	}
	for _, line := range lines {
		detail.Lines = append(detail.Lines, GameLine{Line: line, Points: line.Points()})
	}

	if p.ClubID != nil {
		names, err := s.clubRepo.NamesByIDs(ctx, []int64{*p.ClubID})
		if err != nil {
			return PlayerDetail{}, fmt.Errorf("resolve club name: %w", err)
		}
		detail.ClubName = names[*p.ClubID]
	}

	return detail, nil
}

func (s *PlayerService) Create(ctx context.Context, input PlayerInput) (int64, error) {
	ctx, span := startSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	p := player.Player{
		Code:        input.Code,
		Name:        input.Name,
		DateOfBirth: input.DateOfBirth,
		Height:      input.Height,
		Citizenship: input.Citizenship,
		ClubID:      input.ClubID,
	}
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	id, err := s.playerRepo.Create(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("create player: %w", err)
	}

	return id, nil
}

func (s *PlayerService) Update(ctx context.Context, id int64, input PlayerInput) error {
	ctx, span := startSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	existing, found, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get player %d: %w", id, err)
	}
	if !found {
		return fmt.Errorf("%w: player %d", ErrNotFound, id)
	}

	updated := player.Player{
		ID:          existing.ID,
		Code:        input.Code,
		Name:        input.Name,
		DateOfBirth: input.DateOfBirth,
		Height:      input.Height,
		Citizenship: input.Citizenship,
		ClubID:      input.ClubID,
	}
	if err := updated.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Update(ctx, updated); err != nil {
		return fmt.Errorf("update player %d: %w", id, err)
	}

	return nil
}
