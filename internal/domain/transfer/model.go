package transfer

import (
	"errors"
	"time"
)

var (
	// ErrUnknownReference is returned when a transfer points at a player or team that does not exist.
	ErrUnknownReference = errors.New("transfer references unknown player or team")
	// ErrConstraint is returned when a stored transfer would break a table constraint,
	// such as both teams being the same.
	ErrConstraint = errors.New("transfer violates a constraint")
)

type Player struct {
	ID          string
	Name        string
	Photo       string
	Position    string
	Nationality string
	Age         int
}

type Team struct {
	ID      string
	Name    string
	Logo    string
	Country string
}

// Transfer is the persisted transfer with its player and teams loaded.
type Transfer struct {
	ID           string
	Player       Player
	FromTeam     Team
	ToTeam       Team
	TransferDate time.Time
	TransferFee  float64
	Season       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Record is the flat row written to the store.
type Record struct {
	ID           string
	PlayerID     string
	FromTeamID   string
	ToTeamID     string
	TransferDate time.Time
	TransferFee  float64
	Season       string
}

// Patch holds the fields of a partial update; nil fields are left untouched.
type Patch struct {
	PlayerID     *string
	FromTeamID   *string
	ToTeamID     *string
	TransferDate *time.Time
	TransferFee  *float64
	Season       *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.PlayerID == nil &&
		p.FromTeamID == nil &&
		p.ToTeamID == nil &&
		p.TransferDate == nil &&
		p.TransferFee == nil &&
		p.Season == nil
}

type ListOptions struct {
	Limit  int
	Offset int
}

// DefaultTopLimit is the number of transfers returned by the fee ranking when no limit is given.
const DefaultTopLimit = 10
