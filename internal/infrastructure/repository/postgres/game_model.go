package postgres

import (
	"database/sql"
	"time"
)

type gameTableModel struct {
	ID             int64          `db:"id_gam"`
	Code           string         `db:"game_id"`
	Date           time.Time      `db:"game_date"`
	Location       string         `db:"location"`
	Type           string         `db:"game_type"`
	Season         sql.NullString `db:"season"`
	LeagueID       sql.NullInt64  `db:"id_lea"`
	ChampionshipID sql.NullInt64  `db:"id_cha"`
}

type gameParticipantTableModel struct {
	GameID          int64          `db:"id_gam"`
	ParticipantID   int64          `db:"participant_id"`
	ParticipantType string         `db:"participant_type"`
	Score           sql.NullInt64  `db:"score"`
	Role            sql.NullString `db:"role"`
}
