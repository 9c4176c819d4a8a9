package stats

import "math"

// Line is one player's box score for one game. PlayerName is filled by use
// cases when the caller needs it for display.
type Line struct {
	GameID     int64
	PlayerID   int64
	PlayerName string
	Made2Pt    int
	Att2Pt     int
	Made3Pt    int
	Att3Pt     int
	MadeFT     int
	AttFT      int
	Assists    int
	Rebounds   int
	Blocks     int
}

// Points derives the scoring total from successful shots. Attempts never
// contribute.
func (l Line) Points() int {
	return 2*l.Made2Pt + 3*l.Made3Pt + l.MadeFT
}

// CareerTotals aggregates every stat line a player has. Averages are per
// game played, rounded half-up to one decimal.
type CareerTotals struct {
	Games       int
	Points      int
	Assists     int
	Rebounds    int
	Blocks      int
	AvgPoints   float64
	AvgAssists  float64
	AvgRebounds float64
	AvgBlocks   float64
}

// Career folds a player's stat lines into career totals. A player with no
// lines has zero averages rather than a division error.
func Career(lines []Line) CareerTotals {
	totals := CareerTotals{Games: len(lines)}
	for _, line := range lines {
		totals.Points += line.Points()
		totals.Assists += line.Assists
		totals.Rebounds += line.Rebounds
		totals.Blocks += line.Blocks
	}

	if totals.Games == 0 {
		return totals
	}

	games := float64(totals.Games)
	totals.AvgPoints = roundHalfUp(float64(totals.Points) / games)
	totals.AvgAssists = roundHalfUp(float64(totals.Assists) / games)
	totals.AvgRebounds = roundHalfUp(float64(totals.Rebounds) / games)
	totals.AvgBlocks = roundHalfUp(float64(totals.Blocks) / games)
	return totals
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// LeaderboardEntry is one ranked row of the career points leaderboard.
type LeaderboardEntry struct {
	PlayerID    int64
	PlayerName  string
	TotalPoints int
}

// CategoryCount is one bucket of a grouped count, e.g. players per
// citizenship.
type CategoryCount struct {
	Category string
	Count    int
}
