package stats

import "context"

// Repository describes stat line persistence needs from use cases.
type Repository interface {
	ListByPlayer(ctx context.Context, playerID int64) ([]Line, error)
	ListByGame(ctx context.Context, gameID int64) ([]Line, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	CitizenshipDistribution(ctx context.Context) ([]CategoryCount, error)
}
