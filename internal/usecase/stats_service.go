package usecase

import (
	"context"
	"fmt"

	"github.com/courtdesk/basketref/internal/domain/stats"
)

// StatsService is the aggregation engine entry point: every result is
// recomputed from raw stat lines on each call.
type StatsService struct {
	statsRepo stats.Repository
}

func NewStatsService(statsRepo stats.Repository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// CareerTotals sums a player's lines and derives per-game averages.
func (s *StatsService) CareerTotals(ctx context.Context, playerID int64) (stats.CareerTotals, error) {
	ctx, span := startSpan(ctx, "usecase.StatsService.CareerTotals")
	defer span.End()

	lines, err := s.statsRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return stats.CareerTotals{}, fmt.Errorf("list stat lines for player %d: %w", playerID, err)
	}

	return stats.Career(lines), nil
}

// Leaderboard ranks players by summed career points, descending, ties broken
// by player name ascending.
func (s *StatsService) Leaderboard(ctx context.Context, limit int) ([]stats.LeaderboardEntry, error) {
	ctx, span := startSpan(ctx, "usecase.StatsService.Leaderboard")
	defer span.End()

	if limit <= 0 {
		return nil, fmt.Errorf("%w: leaderboard limit must be positive", ErrInvalidInput)
	}

	entries, err := s.statsRepo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("compute leaderboard: %w", err)
	}

	return entries, nil
}

// CitizenshipDistribution groups players by citizenship for chart rendering.
// Players without a citizenship are excluded.
func (s *StatsService) CitizenshipDistribution(ctx context.Context) ([]stats.CategoryCount, error) {
	ctx, span := startSpan(ctx, "usecase.StatsService.CitizenshipDistribution")
	defer span.End()

	buckets, err := s.statsRepo.CitizenshipDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("compute citizenship distribution: %w", err)
	}

	return buckets, nil
}
