package prefs

import (
	"testing"
)

// testDB is a helper that creates an in-memory DB for testing.
func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetStringAbsent(t *testing.T) {
	db := testDB(t)

	_, ok, err := db.GetString("missing")
	if err != nil {
		t.Fatalf("GetString: %v", err)
	}
	if ok {
		t.Error("expected ok=false for absent key")
	}
}

func TestSetGetString(t *testing.T) {
	db := testDB(t)

	if err := db.SetString("last_purge_date", "2026-08-16T09:30:00Z"); err != nil {
		t.Fatalf("SetString: %v", err)
	}

	v, ok, err := db.GetString("last_purge_date")
	if err != nil {
		t.Fatalf("GetString: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after set")
	}
	if v != "2026-08-16T09:30:00Z" {
		t.Errorf("value = %q, want 2026-08-16T09:30:00Z", v)
	}
}

func TestSetStringReplaces(t *testing.T) {
	db := testDB(t)

	db.SetString("k", "old")
	if err := db.SetString("k", "new"); err != nil {
		t.Fatalf("SetString replace: %v", err)
	}

	v, _, _ := db.GetString("k")
	if v != "new" {
		t.Errorf("value = %q, want new", v)
	}
}

func TestGetStringListAbsent(t *testing.T) {
	db := testDB(t)

	values, err := db.GetStringList("notes")
	if err != nil {
		t.Fatalf("GetStringList: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("expected empty list for absent key, got %d items", len(values))
	}
}

func TestSetGetStringListOrder(t *testing.T) {
	db := testDB(t)

	want := []string{"first", "second", "third"}
	if err := db.SetStringList("notes", want); err != nil {
		t.Fatalf("SetStringList: %v", err)
	}

	got, err := db.GetStringList("notes")
	if err != nil {
		t.Fatalf("GetStringList: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSetStringListReplacesWhole(t *testing.T) {
	db := testDB(t)

	db.SetStringList("notes", []string{"a", "b", "c"})
	if err := db.SetStringList("notes", []string{"x"}); err != nil {
		t.Fatalf("SetStringList replace: %v", err)
	}

	got, _ := db.GetStringList("notes")
	if len(got) != 1 || got[0] != "x" {
		t.Errorf("list = %v, want [x]", got)
	}
}

func TestSetStringListEmptyClears(t *testing.T) {
	db := testDB(t)

	db.SetStringList("notes", []string{"a", "b"})
	if err := db.SetStringList("notes", nil); err != nil {
		t.Fatalf("SetStringList nil: %v", err)
	}

	got, _ := db.GetStringList("notes")
	if len(got) != 0 {
		t.Errorf("expected cleared list, got %v", got)
	}
}

func TestListsIsolatedByKey(t *testing.T) {
	db := testDB(t)

	db.SetStringList("notes", []string{"n1"})
	db.SetStringList("archive", []string{"a1", "a2"})

	notes, _ := db.GetStringList("notes")
	archive, _ := db.GetStringList("archive")
	if len(notes) != 1 {
		t.Errorf("notes len = %d, want 1", len(notes))
	}
	if len(archive) != 2 {
		t.Errorf("archive len = %d, want 2", len(archive))
	}
}
