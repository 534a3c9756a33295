package db

import (
	"testing"
)

func TestCreateTables(t *testing.T) {
	Open(":memory:")
	defer Close()

	_, err := DB.Exec("INSERT INTO users (id, language, timezone, created) VALUES ('123', 'en', 'UTC', 0)")
	if err != nil {
		t.Fatalf("users table not created: %v", err)
	}

	_, err = DB.Exec(`INSERT INTO reminders (user_id, channel_id, text, timezone, anchor, next_fire, created)
		VALUES ('123', 'chan', 'water plants', 'UTC', 100, 100, 0)`)
	if err != nil {
		t.Fatalf("reminders table not created: %v", err)
	}

	var kind string
	var active, interval int
	err = DB.QueryRow("SELECT repeat_kind, active, interval FROM reminders WHERE user_id = '123'").Scan(&kind, &active, &interval)
	if err != nil {
		t.Fatalf("select reminder: %v", err)
	}
	if kind != "none" || active != 1 || interval != 1 {
		t.Errorf("defaults: got kind=%q active=%d interval=%d", kind, active, interval)
	}
}

func TestCreateTablesIdempotent(t *testing.T) {
	Open(":memory:")
	defer Close()

	// A second pass over an existing schema must not fail.
	createTables()
}
