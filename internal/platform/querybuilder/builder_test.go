package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Select("t.id", "p.name").
		From("transfers t").
		Join("players p", "p.id = t.player_id").
		LeftJoin("teams ft", "ft.id = t.from_team_id").
		Where(Eq("t.season", "2024"), Eq("t.player_id", "p1")).
		OrderBy("t.transfer_fee DESC", "t.id").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT t.id, p.name FROM transfers t JOIN players p ON p.id = t.player_id LEFT JOIN teams ft ON ft.id = t.from_team_id WHERE t.season = $1 AND t.player_id = $2 ORDER BY t.transfer_fee DESC, t.id LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "2024" || args[1] != "p1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresColumnsAndTable(t *testing.T) {
	t.Parallel()

	if _, _, err := Select().From("transfers").ToSQL(); err == nil {
		t.Fatalf("expected error without columns")
	}
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
}

func TestUpdateBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := Update("transfers").
		Set("season", "2025").
		SetExpr("updated_at", "NOW()").
		Set("transfer_fee", 1.5).
		Where(Eq("id", "tr-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE transfers SET season = $1, updated_at = NOW(), transfer_fee = $2 WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "2025" || args[1] != 1.5 || args[2] != "tr-1" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := Update("transfers").Where(Eq("id", "tr-1")).ToSQL(); err == nil {
		t.Fatalf("expected error for update without assignments")
	}
}

func TestDeleteBuilder(t *testing.T) {
	t.Parallel()

	query, args, err := DeleteFrom("transfers").
		Where(Eq("id", "tr-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM transfers WHERE id = $1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "tr-1" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("transfers").ToSQL(); err == nil {
		t.Fatalf("expected error for unscoped delete")
	}
}

func TestInsertModel(t *testing.T) {
	t.Parallel()

	type row struct {
		ID     string `db:"id"`
		Season string `db:"season,omitempty"`
		Skip   string `db:"-"`
		hidden string
	}

	query, args, err := InsertModel("transfers", &row{ID: "tr-1", Season: "2024", Skip: "x", hidden: "y"}, "created_at")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO transfers (id, season) VALUES ($1, $2) RETURNING created_at"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "tr-1" || args[1] != "2024" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	t.Parallel()

	var nilRow *struct {
		ID string `db:"id"`
	}
	for name, model := range map[string]any{"nil pointer": nilRow, "string": "x", "no columns": struct{ A int }{}} {
		if _, _, err := InsertModel("transfers", model); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
