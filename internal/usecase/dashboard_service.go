package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/courtdesk/basketref/internal/domain/club"
	"github.com/courtdesk/basketref/internal/domain/game"
	"github.com/courtdesk/basketref/internal/domain/league"
	"github.com/courtdesk/basketref/internal/domain/player"
	"github.com/courtdesk/basketref/internal/domain/stats"
)

const (
	dashboardLeaderboardSize = 5
	dashboardUpcomingSize    = 5
)

type DashboardService struct {
	playerRepo player.Repository
	clubRepo   club.Repository
	leagueRepo league.Repository
	gameRepo   game.Repository
	statsRepo  stats.Repository
	games      *GameService
	now        func() time.Time
}

func NewDashboardService(
	playerRepo player.Repository,
	clubRepo club.Repository,
	leagueRepo league.Repository,
	gameRepo game.Repository,
	statsRepo stats.Repository,
	games *GameService,
) *DashboardService {
	return &DashboardService{
		playerRepo: playerRepo,
		clubRepo:   clubRepo,
		leagueRepo: leagueRepo,
		gameRepo:   gameRepo,
		statsRepo:  statsRepo,
		games:      games,
		now:        time.Now,
	}
}

// Counts are the headline entity tallies.
type Counts struct {
	Players int
	Clubs   int
	Games   int
	Leagues int
}

// Dashboard is everything the landing page shows, recomputed per request.
type Dashboard struct {
	Counts       Counts
	Leaderboard  []stats.LeaderboardEntry
	Upcoming     []game.Game
	Distribution []stats.CategoryCount
}

func (s *DashboardService) Get(ctx context.Context) (Dashboard, error) {
	ctx, span := startSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	counts, err := s.loadCounts(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	leaderboard, err := s.statsRepo.Leaderboard(ctx, dashboardLeaderboardSize)
	if err != nil {
		return Dashboard{}, fmt.Errorf("compute leaderboard: %w", err)
	}

	today := s.now().Truncate(24 * time.Hour)
	upcoming, err := s.gameRepo.Upcoming(ctx, today, dashboardUpcomingSize)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list upcoming games: %w", err)
	}
	if err := s.games.annotateGames(ctx, upcoming); err != nil {
		return Dashboard{}, err
	}

	distribution, err := s.statsRepo.CitizenshipDistribution(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("compute citizenship distribution: %w", err)
	}

	return Dashboard{
		Counts:       counts,
		Leaderboard:  leaderboard,
		Upcoming:     upcoming,
		Distribution: distribution,
	}, nil
}

// loadCounts fans the four count queries out over a small worker pool.
func (s *DashboardService) loadCounts(ctx context.Context) (Counts, error) {
	ctx, span := startSpan(ctx, "usecase.DashboardService.loadCounts")
	defer span.End()

	type countTask struct {
		name  string
		count func(context.Context) (int, error)
		dest  *int
	}

	var counts Counts
	tasks := []countTask{
		{name: "players", count: s.playerRepo.Count, dest: &counts.Players},
		{name: "clubs", count: s.clubRepo.Count, dest: &counts.Clubs},
		{name: "games", count: s.gameRepo.Count, dest: &counts.Games},
		{name: "leagues", count: s.leagueRepo.Count, dest: &counts.Leagues},
	}

	pool, err := ants.NewPool(len(tasks))
	if err != nil {
		return Counts{}, fmt.Errorf("create count worker pool: %w", err)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, task := range tasks {
		task := task
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()

			value, countErr := task.count(ctx)
			mu.Lock()
			defer mu.Unlock()
			if countErr != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("count %s: %w", task.name, countErr)
				}
				return
			}
			*task.dest = value
		}); submitErr != nil {
			wg.Done()
			return Counts{}, fmt.Errorf("submit %s count: %w", task.name, submitErr)
		}
	}
	wg.Wait()

	if firstErr != nil {
		return Counts{}, firstErr
	}

	return counts, nil
}
