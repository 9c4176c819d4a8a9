package game

import (
	"fmt"
	"strings"
	"time"
)

// ParticipantKind discriminates what a participant id points at.
type ParticipantKind string

const (
	KindClub     ParticipantKind = "club"
	KindNational ParticipantKind = "national"
	KindUnknown  ParticipantKind = "unknown"
)

// ParseParticipantKind maps the stored discriminator (case-insensitive) onto
// a kind. Anything unrecognized becomes KindUnknown so rendering can still
// synthesize a label instead of failing the page.
func ParseParticipantKind(raw string) ParticipantKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "club":
		return KindClub
	case "national":
		return KindNational
	default:
		return KindUnknown
	}
}

// ParticipantRef is the tagged reference behind the polymorphic
// (participant_type, participant_id) pair.
type ParticipantRef struct {
	Kind ParticipantKind
	ID   int64
}

// FallbackLabel is the display name used when the referenced entity cannot
// be resolved.
func (r ParticipantRef) FallbackLabel() string {
	switch r.Kind {
	case KindClub:
		return fmt.Sprintf("Club #%d", r.ID)
	case KindNational:
		return fmt.Sprintf("Selection #%d", r.ID)
	default:
		return fmt.Sprintf("Participant #%d", r.ID)
	}
}

// Participant is one side of a game. DisplayName is request-scoped, filled
// by batch name resolution and never persisted.
type Participant struct {
	Ref         ParticipantRef
	Score       int
	Role        string
	DisplayName string
}

// Game is a recorded fixture. At most one of LeagueID/ChampionshipID is set
// in practice; the schema does not enforce it.
type Game struct {
	ID               int64
	Code             string
	Date             time.Time
	Location         string
	Type             string
	Season           string
	LeagueID         *int64
	ChampionshipID   *int64
	LeagueName       string
	ChampionshipName string
	Participants     []Participant
}

// Filter narrows game listings. Zero-value fields leave the dimension open.
type Filter struct {
	SeasonContains string
	TypeContains   string
	LeagueID       *int64
}
