package fixture

import "testing"

func TestPhaseFromStatus(t *testing.T) {
	t.Parallel()

	cases := map[string]Phase{
		"NS":   PhaseScheduled,
		"TBD":  PhaseScheduled,
		"":     PhaseScheduled,
		"1H":   PhaseLive,
		"ht":   PhaseLive,
		"P":    PhaseLive,
		"FT":   PhaseFinished,
		"PEN":  PhaseFinished,
		"PST":  PhaseCancelled,
		"CANC": PhaseCancelled,
	}
	for status, want := range cases {
		if got := PhaseFromStatus(status); got != want {
			t.Fatalf("status %q: expected phase %s, got %s", status, want, got)
		}
	}
}

func TestQueryParams(t *testing.T) {
	t.Parallel()

	upcoming := Query{LeagueID: "39", Season: "2023", Next: 10}.Params()
	if len(upcoming) != 3 || upcoming["league"] != "39" || upcoming["season"] != "2023" || upcoming["next"] != "10" {
		t.Fatalf("unexpected upcoming params: %v", upcoming)
	}

	live := Query{Live: true}.Params()
	if len(live) != 1 || live["live"] != "all" {
		t.Fatalf("unexpected live params: %v", live)
	}

	byDate := Query{Date: "2024-05-19"}.Params()
	if len(byDate) != 1 || byDate["date"] != "2024-05-19" {
		t.Fatalf("unexpected date params: %v", byDate)
	}
}
