package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/courtdesk/basketref/internal/domain/stats"
)

// StatsRepository keeps raw stat lines and leans on the player repository
// for names and citizenships, mirroring the SQL joins of the real store.
type StatsRepository struct {
	mu      sync.RWMutex
	lines   []stats.Line
	players *PlayerRepository
}

func NewStatsRepository(lines []stats.Line, players *PlayerRepository) *StatsRepository {
	return &StatsRepository{lines: lines, players: players}
}

func (r *StatsRepository) ListByPlayer(_ context.Context, playerID int64) ([]stats.Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []stats.Line
	for _, line := range r.lines {
		if line.PlayerID == playerID {
			out = append(out, line)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GameID < out[j].GameID })
	return out, nil
}

func (r *StatsRepository) ListByGame(_ context.Context, gameID int64) ([]stats.Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []stats.Line
	for _, line := range r.lines {
		if line.GameID == gameID {
			out = append(out, line)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

func (r *StatsRepository) Leaderboard(ctx context.Context, limit int) ([]stats.LeaderboardEntry, error) {
	r.mu.RLock()
	totals := make(map[int64]int)
	for _, line := range r.lines {
		totals[line.PlayerID] += line.Points()
	}
	r.mu.RUnlock()

	ids := make([]int64, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	names, err := r.players.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]stats.LeaderboardEntry, 0, len(totals))
	for id, total := range totals {
		out = append(out, stats.LeaderboardEntry{
			PlayerID:    id,
			PlayerName:  names[id],
			TotalPoints: total,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *StatsRepository) CitizenshipDistribution(_ context.Context) ([]stats.CategoryCount, error) {
	r.players.mu.RLock()
	defer r.players.mu.RUnlock()

	counts := make(map[string]int)
	for _, p := range r.players.items {
		if p.Citizenship == "" {
			continue
		}
		counts[p.Citizenship]++
	}

	out := make([]stats.CategoryCount, 0, len(counts))
	for citizenship, count := range counts {
		out = append(out, stats.CategoryCount{Category: citizenship, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})

	return out, nil
}
