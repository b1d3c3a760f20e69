package postgres

import (
	"database/sql"
	"time"
)

type transferTableModel struct {
	ID           string    `db:"id"`
	PlayerID     string    `db:"player_id"`
	FromTeamID   string    `db:"from_team_id"`
	ToTeamID     string    `db:"to_team_id"`
	TransferDate time.Time `db:"transfer_date"`
	TransferFee  float64   `db:"transfer_fee"`
	Season       string    `db:"season"`
}

// transferRowModel is one transfer joined with its player and both teams.
type transferRowModel struct {
	ID           string    `db:"id"`
	TransferDate time.Time `db:"transfer_date"`
	TransferFee  float64   `db:"transfer_fee"`
	Season       string    `db:"season"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`

	PlayerID          string         `db:"player_id"`
	PlayerName        string         `db:"player_name"`
	PlayerPhoto       sql.NullString `db:"player_photo"`
	PlayerPosition    sql.NullString `db:"player_position"`
	PlayerNationality sql.NullString `db:"player_nationality"`
	PlayerAge         sql.NullInt64  `db:"player_age"`

	FromTeamID      string         `db:"from_team_id"`
	FromTeamName    string         `db:"from_team_name"`
	FromTeamLogo    sql.NullString `db:"from_team_logo"`
	FromTeamCountry sql.NullString `db:"from_team_country"`

	ToTeamID      string         `db:"to_team_id"`
	ToTeamName    string         `db:"to_team_name"`
	ToTeamLogo    sql.NullString `db:"to_team_logo"`
	ToTeamCountry sql.NullString `db:"to_team_country"`
}

var transferRowColumns = []string{
	"t.id",
	"t.transfer_date",
	"t.transfer_fee",
	"t.season",
	"t.created_at",
	"t.updated_at",
	"p.id AS player_id",
	"p.name AS player_name",
	"p.photo AS player_photo",
	"p.position AS player_position",
	"p.nationality AS player_nationality",
	"p.age AS player_age",
	"ft.id AS from_team_id",
	"ft.name AS from_team_name",
	"ft.logo AS from_team_logo",
	"ft.country AS from_team_country",
	"tt.id AS to_team_id",
	"tt.name AS to_team_name",
	"tt.logo AS to_team_logo",
	"tt.country AS to_team_country",
}
