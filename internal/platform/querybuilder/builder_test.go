package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("players").
		Where(Eq("active", true)).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM players WHERE active = $1 ORDER BY name, id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != true {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_ExprAndGroupBy(t *testing.T) {
	query, args, err := Select("m.id", "COUNT(g.id) AS games").
		From("matches m LEFT JOIN games g ON g.match_id = m.id").
		Where(
			EqLiteral("m.match_status", "COMPLETED"),
			Expr("(m.player1_id = ? OR m.player2_id = ?)", int64(7), int64(7)),
			In("m.tournament_id", []any{int64(1), int64(2)}),
		).
		GroupBy("m.id").
		OrderBy("m.id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT m.id, COUNT(g.id) AS games FROM matches m LEFT JOIN games g ON g.match_id = m.id " +
		"WHERE m.match_status = 'COMPLETED' AND (m.player1_id = $1 OR m.player2_id = $2) AND m.tournament_id IN ($3, $4) " +
		"GROUP BY m.id ORDER BY m.id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("players").
		Columns("name", "email").
		Values("Alice", "alice@example.com").
		Suffix("ON CONFLICT (name) DO NOTHING RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO players (name, email) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Alice" || args[1] != "alice@example.com" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	row := struct {
		Name    string `db:"name"`
		Active  bool   `db:"active"`
		Ignored string `db:"-"`
		hidden  string
	}{Name: "Alice", Active: true, Ignored: "x", hidden: "y"}

	query, args, err := InsertModel("players", row, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}
	if query != "INSERT INTO players (name, active) VALUES ($1, $2) RETURNING id" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 || args[0] != "Alice" || args[1] != true {
		t.Fatalf("unexpected args: %+v", args)
	}
	_ = row.hidden
}

func TestInsertBuilder_ValueCountMismatch(t *testing.T) {
	if _, _, err := InsertInto("players").Columns("name", "email").Values("Alice").ToSQL(); err == nil {
		t.Fatalf("expected error for mismatched values")
	}
}

func TestInBuilder_EmptyMatchesNothing(t *testing.T) {
	query, args, err := Select("id").From("games").Where(In("match_id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM games WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query %q args %+v", query, args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("tournaments").
		Set("name", "new").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(1))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE tournaments SET name = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "new" || args[1] != int64(1) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("games").Where(Eq("id", int64(3))).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM games WHERE id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("games").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditioned delete")
	}
}
