package logging

import "time"

// #region extraction-entry
// ExtractionEntry is a single row in the extraction_log table.
type ExtractionEntry struct {
	VersionID string
	Source    string // "heuristic" | "remote" | "manual"
	PatchJSON string
	Summary   string
	CreatedAt time.Time
}
// #endregion extraction-entry
