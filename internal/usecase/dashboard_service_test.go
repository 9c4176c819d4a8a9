package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/courtdesk/basketref/internal/domain/championship"
	"github.com/courtdesk/basketref/internal/domain/club"
	"github.com/courtdesk/basketref/internal/domain/game"
	"github.com/courtdesk/basketref/internal/domain/league"
	"github.com/courtdesk/basketref/internal/domain/nationalteam"
	"github.com/courtdesk/basketref/internal/domain/player"
	"github.com/courtdesk/basketref/internal/domain/stats"
	"github.com/courtdesk/basketref/internal/infrastructure/repository/memory"
)

func TestDashboardServiceGet(t *testing.T) {
	now := time.Date(2024, 11, 5, 15, 0, 0, 0, time.UTC)

	teams := memory.NewNationalTeamRepository([]nationalteam.NationalTeam{
		{ID: 1, Code: "FRA", Country: "France", Confederation: "Europe"},
	})
	players := memory.NewPlayerRepository([]player.Player{
		{ID: 1, Code: "P1", Name: "Ann Walker", DateOfBirth: time.Date(1995, 3, 1, 0, 0, 0, 0, time.UTC), Citizenship: "France"},
		{ID: 2, Code: "P2", Name: "Bea Moreno", DateOfBirth: time.Date(1997, 7, 12, 0, 0, 0, 0, time.UTC), Citizenship: "Spain"},
	}, teams)
	clubs := memory.NewClubRepository([]club.Club{
		{ID: 1, Code: "C1", Name: "Lyon Basket", City: "Lyon"},
	})
	leagues := memory.NewLeagueRepository([]league.League{
		{ID: 1, Code: "L1", Name: "Pro A", Country: "France", Level: "1"},
	})
	championships := memory.NewChampionshipRepository([]championship.Championship{})

	games := memory.NewGameRepository([]game.Game{
		{
			ID: 1, Code: "G1", Date: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
			Participants: []game.Participant{
				{Ref: game.ParticipantRef{Kind: game.KindClub, ID: 1}, Score: 80},
			},
		},
		{
			ID: 2, Code: "G2", Date: time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC),
			Participants: []game.Participant{
				{Ref: game.ParticipantRef{Kind: game.KindClub, ID: 1}, Score: 0},
			},
		},
		{
			ID: 3, Code: "G3", Date: time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
			Participants: []game.Participant{
				{Ref: game.ParticipantRef{Kind: game.KindNational, ID: 1}, Score: 0},
			},
		},
	})
	statsRepo := memory.NewStatsRepository([]stats.Line{
		{GameID: 1, PlayerID: 1, Made2Pt: 5},
		{GameID: 1, PlayerID: 2, Made3Pt: 1},
	}, players)

	gameSvc := NewGameService(games, clubs, teams, leagues, championships, players, statsRepo)
	svc := NewDashboardService(players, clubs, leagues, games, statsRepo, gameSvc)
	svc.now = func() time.Time { return now }

	dashboard, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	want := Counts{Players: 2, Clubs: 1, Games: 3, Leagues: 1}
	if dashboard.Counts != want {
		t.Fatalf("Counts = %+v, want %+v", dashboard.Counts, want)
	}

	if len(dashboard.Leaderboard) != 2 || dashboard.Leaderboard[0].PlayerName != "Ann Walker" {
		t.Fatalf("Leaderboard = %+v, want Ann Walker first", dashboard.Leaderboard)
	}

	// Game 1 is in the past; games 2 and 3 are upcoming, soonest first,
	// with participant names resolved.
	if len(dashboard.Upcoming) != 2 {
		t.Fatalf("got %d upcoming games, want 2", len(dashboard.Upcoming))
	}
	if dashboard.Upcoming[0].ID != 2 || dashboard.Upcoming[1].ID != 3 {
		t.Fatalf("upcoming order = [%d %d], want [2 3]", dashboard.Upcoming[0].ID, dashboard.Upcoming[1].ID)
	}
	if dashboard.Upcoming[0].Participants[0].DisplayName != "Lyon Basket" {
		t.Fatalf("upcoming[0] participant = %+v, want Lyon Basket", dashboard.Upcoming[0].Participants[0])
	}
	if dashboard.Upcoming[1].Participants[0].DisplayName != "France" {
		t.Fatalf("upcoming[1] participant = %+v, want France", dashboard.Upcoming[1].Participants[0])
	}

	if len(dashboard.Distribution) != 2 {
		t.Fatalf("Distribution = %+v, want two buckets", dashboard.Distribution)
	}
}
