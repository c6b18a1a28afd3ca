package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("*").
		From("matches").
		Where(Eq("team_public_id", "ravens-u12-2026"), IsNull("deleted_at")).
		OrderBy("played_at DESC", "id DESC").
		Limit(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM matches WHERE team_public_id = $1 AND deleted_at IS NULL ORDER BY played_at DESC, id DESC LIMIT 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "ravens-u12-2026" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("*").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("public_id", "name").
		Values("ravens-u12-2026", "Ravens U12").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (public_id, name) VALUES ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "ravens-u12-2026" || args[1] != "Ravens U12" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RejectsRaggedRow(t *testing.T) {
	_, _, err := InsertInto("teams").
		Columns("public_id", "name").
		Values("only-one").
		ToSQL()
	if err == nil {
		t.Fatalf("expected error for value count mismatch")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("matches").
		Set("notes", "windy second half").
		SetExpr("updated_at", "NOW()").
		Where(Eq("public_id", "m-1"), IsNull("deleted_at")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE matches SET notes = $1, updated_at = NOW() WHERE public_id = $2 AND deleted_at IS NULL"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "windy second half" || args[1] != "m-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_SetExprRewritesPlaceholders(t *testing.T) {
	query, args, err := Update("matches").
		SetExpr("raw_stats", "raw_stats || ?::jsonb", `{"Corner Kicks":5}`).
		Where(Eq("public_id", "m-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE matches SET raw_stats = raw_stats || $1::jsonb WHERE public_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
