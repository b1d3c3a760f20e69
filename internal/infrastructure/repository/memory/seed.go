package memory

import (
	"strconv"
	"time"

	"github.com/riskibarqy/infootball/internal/domain/transfer"
)

// Seed mirrors the rows loaded by the seed migration so the in-memory store serves the
// same catalog as a freshly migrated database.
type Seed struct {
	Players   []transfer.Player
	Teams     []transfer.Team
	Transfers []transfer.Record
}

const (
	teamIDPrefix   = "0b6f6a52-1d0e-4c1a-9a55-"
	playerIDPrefix = "5d1c7a8e-3f4b-4e2a-8c61-"
)

func DefaultSeed() Seed {
	return Seed{
		Teams:     SeedTeams(),
		Players:   SeedPlayers(),
		Transfers: SeedTransfers(),
	}
}

func SeedTeams() []transfer.Team {
	return []transfer.Team{
		seedTeam("000000000541", 541, "Real Madrid", "Spain"),
		seedTeam("000000000529", 529, "Barcelona", "Spain"),
		seedTeam("000000000530", 530, "Atletico Madrid", "Spain"),
		seedTeam("000000000050", 50, "Manchester City", "England"),
		seedTeam("000000000033", 33, "Manchester United", "England"),
		seedTeam("000000000040", 40, "Liverpool", "England"),
		seedTeam("000000000042", 42, "Arsenal", "England"),
		seedTeam("000000000047", 47, "Tottenham", "England"),
		seedTeam("000000000489", 489, "AC Milan", "Italy"),
		seedTeam("000000000492", 492, "Napoli", "Italy"),
		seedTeam("000000000496", 496, "Juventus", "Italy"),
		seedTeam("000000000157", 157, "Bayern Munich", "Germany"),
		seedTeam("000000000165", 165, "Borussia Dortmund", "Germany"),
		seedTeam("000000000085", 85, "Paris Saint Germain", "France"),
	}
}

func SeedPlayers() []transfer.Player {
	return []transfer.Player{
		seedPlayer("000000000278", 278, "Kylian Mbappé", "Attacker", "France", 25),
		seedPlayer("000000129718", 129718, "Jude Bellingham", "Midfielder", "England", 21),
		seedPlayer("000000000184", 184, "Harry Kane", "Attacker", "England", 31),
		seedPlayer("000000000153", 153, "Ousmane Dembélé", "Attacker", "France", 27),
	}
}

func SeedTransfers() []transfer.Record {
	return []transfer.Record{
		{
			ID:           "9a7e2c41-6b3d-4f85-a0d2-000000000001",
			PlayerID:     playerIDPrefix + "000000000278",
			FromTeamID:   teamIDPrefix + "000000000085",
			ToTeamID:     teamIDPrefix + "000000000541",
			TransferDate: seedDate(2024, time.July, 1),
			Season:       "2024",
		},
		{
			ID:           "9a7e2c41-6b3d-4f85-a0d2-000000000002",
			PlayerID:     playerIDPrefix + "000000129718",
			FromTeamID:   teamIDPrefix + "000000000165",
			ToTeamID:     teamIDPrefix + "000000000541",
			TransferDate: seedDate(2023, time.July, 1),
			TransferFee:  103000000,
			Season:       "2023",
		},
		{
			ID:           "9a7e2c41-6b3d-4f85-a0d2-000000000003",
			PlayerID:     playerIDPrefix + "000000000184",
			FromTeamID:   teamIDPrefix + "000000000047",
			ToTeamID:     teamIDPrefix + "000000000157",
			TransferDate: seedDate(2023, time.August, 12),
			TransferFee:  100000000,
			Season:       "2023",
		},
		{
			ID:           "9a7e2c41-6b3d-4f85-a0d2-000000000004",
			PlayerID:     playerIDPrefix + "000000000153",
			FromTeamID:   teamIDPrefix + "000000000529",
			ToTeamID:     teamIDPrefix + "000000000085",
			TransferDate: seedDate(2023, time.August, 12),
			TransferFee:  50400000,
			Season:       "2023",
		},
	}
}

func seedTeam(suffix string, externalID int, name, country string) transfer.Team {
	return transfer.Team{
		ID:      teamIDPrefix + suffix,
		Name:    name,
		Logo:    "https://media.api-sports.io/football/teams/" + strconv.Itoa(externalID) + ".png",
		Country: country,
	}
}

func seedPlayer(suffix string, externalID int, name, position, nationality string, age int) transfer.Player {
	return transfer.Player{
		ID:          playerIDPrefix + suffix,
		Name:        name,
		Photo:       "https://media.api-sports.io/football/players/" + strconv.Itoa(externalID) + ".png",
		Position:    position,
		Nationality: nationality,
		Age:         age,
	}
}

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
