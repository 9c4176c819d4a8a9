package postgres

import (
	"database/sql"
	"time"
)

type playerTableModel struct {
	ID          int64           `db:"id_pla"`
	Code        string          `db:"player_id"`
	Name        string          `db:"name"`
	DateOfBirth time.Time       `db:"date_of_birth"`
	Height      sql.NullFloat64 `db:"height"`
	Citizenship sql.NullString  `db:"citizenship"`
	ClubID      sql.NullInt64   `db:"current_club_id"`
}
