package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-extraction
// LogExtraction writes an extraction record to the extraction_log table.
func LogExtraction(db *sql.DB, entry ExtractionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO extraction_log (version_id, source, patch_json, summary, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.VersionID,
		entry.Source,
		nullIfEmpty(entry.PatchJSON),
		nullIfEmpty(entry.Summary),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log extraction: %w", err)
	}
	return nil
}
// #endregion log-extraction

// #region list-extractions
// ListExtractions returns the most recent extraction records.
func ListExtractions(db *sql.DB, limit int) ([]ExtractionEntry, error) {
	rows, err := db.Query(
		`SELECT version_id, source, patch_json, summary, created_at
		 FROM extraction_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list extractions: %w", err)
	}
	defer rows.Close()

	var entries []ExtractionEntry
	for rows.Next() {
		var e ExtractionEntry
		var patchJSON, summary sql.NullString
		var createdStr string
		if err := rows.Scan(&e.VersionID, &e.Source, &patchJSON, &summary, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if patchJSON.Valid {
			e.PatchJSON = patchJSON.String
		}
		if summary.Valid {
			e.Summary = summary.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
// #endregion list-extractions

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
