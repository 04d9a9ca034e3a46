package logging

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// #region helpers
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE extraction_log (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		version_id  TEXT NOT NULL,
		source      TEXT NOT NULL,
		patch_json  TEXT,
		summary     TEXT,
		created_at  TEXT NOT NULL
	)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}
// #endregion helpers

// #region log-extraction-tests
func TestLogExtraction(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := ExtractionEntry{
		VersionID: "v1",
		Source:    "heuristic",
		PatchJSON: `{"place":"the cafe"}`,
		Summary:   `place: "" → "the cafe"`,
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := LogExtraction(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var count int
	db.QueryRow("SELECT COUNT(*) FROM extraction_log").Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 row, got %d", count)
	}

	var versionID, source string
	db.QueryRow("SELECT version_id, source FROM extraction_log").Scan(&versionID, &source)
	if versionID != "v1" {
		t.Errorf("expected version_id 'v1', got %q", versionID)
	}
	if source != "heuristic" {
		t.Errorf("expected source 'heuristic', got %q", source)
	}
}

func TestLogExtraction_ZeroCreatedAt(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := ExtractionEntry{
		VersionID: "v2",
		Source:    "manual",
	}

	before := time.Now().UTC()
	if err := LogExtraction(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var createdAtStr string
	db.QueryRow("SELECT created_at FROM extraction_log").Scan(&createdAtStr)
	createdAt, err := time.Parse(time.RFC3339Nano, createdAtStr)
	if err != nil {
		t.Fatalf("parse created_at: %v", err)
	}
	if createdAt.Before(before) {
		t.Error("expected auto-filled created_at to be >= test start time")
	}
}

func TestLogExtraction_EmptyOptionalFields(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	entry := ExtractionEntry{
		VersionID: "v3",
		Source:    "remote",
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := LogExtraction(db, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var patchJSON, summary sql.NullString
	db.QueryRow("SELECT patch_json, summary FROM extraction_log").Scan(&patchJSON, &summary)
	if patchJSON.Valid {
		t.Error("expected NULL patch_json for empty string")
	}
	if summary.Valid {
		t.Error("expected NULL summary for empty string")
	}
}

func TestLogExtraction_Error(t *testing.T) {
	db := setupDB(t)
	db.Close() // close to force error

	entry := ExtractionEntry{
		VersionID: "v4",
		Source:    "heuristic",
	}

	if err := LogExtraction(db, entry); err == nil {
		t.Fatal("expected error on closed db")
	}
}
// #endregion log-extraction-tests

// #region list-extractions-tests
func TestListExtractions(t *testing.T) {
	db := setupDB(t)
	defer db.Close()

	for _, v := range []string{"v1", "v2", "v3"} {
		entry := ExtractionEntry{VersionID: v, Source: "heuristic"}
		if err := LogExtraction(db, entry); err != nil {
			t.Fatalf("log %s: %v", v, err)
		}
	}

	entries, err := ListExtractions(db, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].VersionID != "v3" {
		t.Errorf("expected newest entry first, got %q", entries[0].VersionID)
	}
}
// #endregion list-extractions-tests

// #region null-if-empty-tests
func TestNullIfEmpty_Empty(t *testing.T) {
	if result := nullIfEmpty(""); result != nil {
		t.Errorf("expected nil for empty string, got %v", result)
	}
}

func TestNullIfEmpty_NonEmpty(t *testing.T) {
	if result := nullIfEmpty("hello"); result != "hello" {
		t.Errorf("expected 'hello', got %v", result)
	}
}
// #endregion null-if-empty-tests
