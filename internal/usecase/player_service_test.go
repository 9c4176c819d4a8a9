package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/courtdesk/basketref/internal/domain/club"
	"github.com/courtdesk/basketref/internal/domain/nationalteam"
	"github.com/courtdesk/basketref/internal/domain/player"
	"github.com/courtdesk/basketref/internal/domain/stats"
	"github.com/courtdesk/basketref/internal/infrastructure/repository/memory"
)

func int64Ptr(v int64) *int64 { return &v }

func newPlayerServiceFixture() (*PlayerService, *memory.PlayerRepository) {
	teams := memory.NewNationalTeamRepository([]nationalteam.NationalTeam{
		{ID: 1, Code: "FRA", Country: "France", Confederation: "Europe"},
		{ID: 2, Code: "ESP", Country: "Spain", Confederation: "Europe"},
		{ID: 3, Code: "USA", Country: "United States", Confederation: "Americas"},
	})
	players := memory.NewPlayerRepository([]player.Player{
		{ID: 1, Code: "P1", Name: "Ann Walker", DateOfBirth: time.Date(1995, 3, 1, 0, 0, 0, 0, time.UTC), Citizenship: "France", ClubID: int64Ptr(1)},
		{ID: 2, Code: "P2", Name: "Bea Moreno", DateOfBirth: time.Date(1997, 7, 12, 0, 0, 0, 0, time.UTC), Citizenship: "Spain"},
		{ID: 3, Code: "P3", Name: "Cara Hill", DateOfBirth: time.Date(1994, 1, 5, 0, 0, 0, 0, time.UTC), Citizenship: "United States", ClubID: int64Ptr(1)},
	}, teams)
	clubs := memory.NewClubRepository([]club.Club{
		{ID: 1, Code: "C1", Name: "Lyon Basket", City: "Lyon"},
	})
	statsRepo := memory.NewStatsRepository([]stats.Line{
		{GameID: 1, PlayerID: 1, Made2Pt: 4, MadeFT: 1, Assists: 3},
	}, players)

	return NewPlayerService(players, clubs, teams, statsRepo), players
}

func TestPlayerServiceListAnnotatesClubNames(t *testing.T) {
	svc, _ := newPlayerServiceFixture()

	listing, err := svc.List(context.Background(), player.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(listing.Players) != 3 {
		t.Fatalf("got %d players, want 3", len(listing.Players))
	}
	if listing.Players[0].Name != "Ann Walker" || listing.Players[0].ClubName != "Lyon Basket" {
		t.Fatalf("players[0] = %+v, want Ann Walker at Lyon Basket", listing.Players[0])
	}
	if listing.Players[1].ClubName != "" {
		t.Fatalf("players[1].ClubName = %q, want empty", listing.Players[1].ClubName)
	}
	if len(listing.Citizenships) != 3 {
		t.Fatalf("got %d citizenships, want 3", len(listing.Citizenships))
	}
	if len(listing.Confederations) != 2 {
		t.Fatalf("got %d confederations, want 2", len(listing.Confederations))
	}
}

func TestPlayerServiceListContinentFilter(t *testing.T) {
	svc, _ := newPlayerServiceFixture()

	listing, err := svc.List(context.Background(), player.Filter{Confederation: "Americas"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(listing.Players) != 1 || listing.Players[0].Name != "Cara Hill" {
		t.Fatalf("players = %+v, want only Cara Hill", listing.Players)
	}
}

func TestPlayerServiceGet(t *testing.T) {
	svc, _ := newPlayerServiceFixture()

	detail, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.ClubName != "Lyon Basket" {
		t.Fatalf("ClubName = %q, want Lyon Basket", detail.ClubName)
	}
	if detail.Career.Games != 1 || detail.Career.Points != 9 {
		t.Fatalf("Career = %+v, want 1 game with 9 points", detail.Career)
	}
	if len(detail.Lines) != 1 || detail.Lines[0].Points != 9 {
		t.Fatalf("Lines = %+v, want one line worth 9 points", detail.Lines)
	}

	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPlayerServiceCreateRejectsInvalidInput(t *testing.T) {
	svc, repo := newPlayerServiceFixture()

	before, _ := repo.Count(context.Background())

	// Missing date of birth must fail validation before any write.
	_, err := svc.Create(context.Background(), PlayerInput{Code: "P9", Name: "New Player"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	after, _ := repo.Count(context.Background())
	if after != before {
		t.Fatalf("count changed from %d to %d on invalid input", before, after)
	}
}

func TestPlayerServiceCreateAndUpdate(t *testing.T) {
	svc, repo := newPlayerServiceFixture()

	id, err := svc.Create(context.Background(), PlayerInput{
		Code:        "P9",
		Name:        "New Player",
		DateOfBirth: time.Date(2000, 5, 20, 0, 0, 0, 0, time.UTC),
		Citizenship: "France",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created, found, _ := repo.GetByID(context.Background(), id)
	if !found || created.Name != "New Player" {
		t.Fatalf("created player not stored: %+v", created)
	}

	err = svc.Update(context.Background(), id, PlayerInput{
		Code:        "P9",
		Name:        "Renamed Player",
		DateOfBirth: created.DateOfBirth,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	updated, _, _ := repo.GetByID(context.Background(), id)
	if updated.Name != "Renamed Player" {
		t.Fatalf("Name = %q, want Renamed Player", updated.Name)
	}

	if err := svc.Update(context.Background(), 99, PlayerInput{
		Code:        "P9",
		Name:        "Ghost",
		DateOfBirth: created.DateOfBirth,
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
