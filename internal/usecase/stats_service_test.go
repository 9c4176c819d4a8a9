package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/courtdesk/basketref/internal/domain/player"
	"github.com/courtdesk/basketref/internal/domain/stats"
	"github.com/courtdesk/basketref/internal/infrastructure/repository/memory"
)

func seedStatsFixture() (*memory.PlayerRepository, *memory.StatsRepository) {
	players := []player.Player{
		{ID: 1, Code: "P1", Name: "Ann Walker", DateOfBirth: time.Date(1995, 3, 1, 0, 0, 0, 0, time.UTC), Citizenship: "France"},
		{ID: 2, Code: "P2", Name: "Bea Moreno", DateOfBirth: time.Date(1997, 7, 12, 0, 0, 0, 0, time.UTC), Citizenship: "Spain"},
		{ID: 3, Code: "P3", Name: "Cara Silva", DateOfBirth: time.Date(1994, 1, 5, 0, 0, 0, 0, time.UTC), Citizenship: "France"},
		{ID: 4, Code: "P4", Name: "Dee Novak", DateOfBirth: time.Date(1999, 9, 9, 0, 0, 0, 0, time.UTC)},
	}
	playerRepo := memory.NewPlayerRepository(players, nil)

	lines := []stats.Line{
		// Ann: 10 + 5 points.
		{GameID: 1, PlayerID: 1, Made2Pt: 5},
		{GameID: 2, PlayerID: 1, Made3Pt: 1, MadeFT: 2},
		// Bea: 15 points, ties Ann.
		{GameID: 1, PlayerID: 2, Made3Pt: 5},
		// Cara: 4 points.
		{GameID: 2, PlayerID: 3, Made2Pt: 2},
	}
	statsRepo := memory.NewStatsRepository(lines, playerRepo)

	return playerRepo, statsRepo
}

func TestStatsServiceLeaderboard(t *testing.T) {
	_, statsRepo := seedStatsFixture()
	svc := NewStatsService(statsRepo)

	entries, err := svc.Leaderboard(context.Background(), 10)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	// Ann and Bea both have 15 points; the tie breaks on name ascending.
	if entries[0].PlayerName != "Ann Walker" || entries[0].TotalPoints != 15 {
		t.Fatalf("entries[0] = %+v, want Ann Walker with 15", entries[0])
	}
	if entries[1].PlayerName != "Bea Moreno" || entries[1].TotalPoints != 15 {
		t.Fatalf("entries[1] = %+v, want Bea Moreno with 15", entries[1])
	}
	if entries[2].PlayerName != "Cara Silva" || entries[2].TotalPoints != 4 {
		t.Fatalf("entries[2] = %+v, want Cara Silva with 4", entries[2])
	}
}

func TestStatsServiceLeaderboardRejectsNonPositiveLimit(t *testing.T) {
	_, statsRepo := seedStatsFixture()
	svc := NewStatsService(statsRepo)

	if _, err := svc.Leaderboard(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestStatsServiceCitizenshipDistribution(t *testing.T) {
	_, statsRepo := seedStatsFixture()
	svc := NewStatsService(statsRepo)

	buckets, err := svc.CitizenshipDistribution(context.Background())
	if err != nil {
		t.Fatalf("CitizenshipDistribution: %v", err)
	}

	// Dee has no citizenship and must not appear.
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2: %+v", len(buckets), buckets)
	}
	if buckets[0].Category != "France" || buckets[0].Count != 2 {
		t.Fatalf("buckets[0] = %+v, want France with 2", buckets[0])
	}
	if buckets[1].Category != "Spain" || buckets[1].Count != 1 {
		t.Fatalf("buckets[1] = %+v, want Spain with 1", buckets[1])
	}
}

func TestStatsServiceCareerTotals(t *testing.T) {
	_, statsRepo := seedStatsFixture()
	svc := NewStatsService(statsRepo)

	totals, err := svc.CareerTotals(context.Background(), 1)
	if err != nil {
		t.Fatalf("CareerTotals: %v", err)
	}
	if totals.Games != 2 || totals.Points != 15 {
		t.Fatalf("totals = %+v, want 2 games and 15 points", totals)
	}
	if totals.AvgPoints != 7.5 {
		t.Fatalf("AvgPoints = %v, want 7.5", totals.AvgPoints)
	}

	// A player with no lines has zero averages, not an error.
	totals, err = svc.CareerTotals(context.Background(), 4)
	if err != nil {
		t.Fatalf("CareerTotals: %v", err)
	}
	if totals.Games != 0 || totals.AvgPoints != 0 {
		t.Fatalf("totals = %+v, want zero value", totals)
	}
}
