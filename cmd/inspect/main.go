package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/scene-state/go-engine/internal/logging"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/scene"
	"github.com/danielpatrickdp/scene-state/go-engine/internal/store"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to scene_state.db")
	last := flag.Int("last", 20, "show N most recent versions")
	version := flag.String("version", "", "show single version detail")
	showLog := flag.Bool("log", false, "show the extraction log instead of versions")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/scene_state.db [--last N] [--version id] [--log] [--json]")
		os.Exit(2)
	}

	st, err := store.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	switch {
	case *version != "":
		err = runDetailMode(st, *version, *jsonOut)
	case *showLog:
		err = runLogMode(st, *last, *jsonOut)
	default:
		err = runListMode(st, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	VersionID string `json:"version_id"`
	ParentID  string `json:"parent_id,omitempty"`
	Active    bool   `json:"active"`
	DateTime  string `json:"dateTime,omitempty"`
	Place     string `json:"place,omitempty"`
	Mood      string `json:"mood,omitempty"`
	Weather   string `json:"weather,omitempty"`
	CreatedAt string `json:"created_at"`
}

func runListMode(st *store.Store, last int, jsonOut bool) error {
	records, err := st.ListVersions(last)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no versions found")
		return nil
	}

	activeID := ""
	if cur, err := st.GetCurrent(); err == nil {
		activeID = cur.VersionID
	}

	// Store returns DESC, reverse for chronological
	rows := make([]listRow, len(records))
	for i, rec := range records {
		rows[len(records)-1-i] = listRow{
			VersionID: rec.VersionID,
			ParentID:  rec.ParentID,
			Active:    rec.VersionID == activeID,
			DateTime:  rec.Scene.DateTime,
			Place:     rec.Scene.Place,
			Mood:      rec.Scene.Mood,
			Weather:   rec.Scene.Weather,
			CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-10s %-2s %-22s %-18s %-10s %-8s %s\n",
		"Version", "", "DateTime", "Place", "Mood", "Weather", "Time")
	for _, r := range rows {
		marker := ""
		if r.Active {
			marker = "*"
		}
		fmt.Printf("%-10s %-2s %-22s %-18s %-10s %-8s %s\n",
			shortID(r.VersionID), marker,
			orDash(r.DateTime), orDash(r.Place), orDash(r.Mood), orDash(r.Weather),
			r.CreatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	VersionID string      `json:"version_id"`
	ParentID  string      `json:"parent_id,omitempty"`
	CreatedAt string      `json:"created_at"`
	Scene     scene.State `json:"scene"`
	Log       []logDetail `json:"log,omitempty"`
}

type logDetail struct {
	Source    string `json:"source"`
	PatchJSON string `json:"patch_json,omitempty"`
	Summary   string `json:"summary,omitempty"`
	CreatedAt string `json:"created_at"`
}

func runDetailMode(st *store.Store, versionID string, jsonOut bool) error {
	rec, err := st.GetVersion(versionID)
	if err != nil {
		return err
	}

	out := detailOutput{
		VersionID: rec.VersionID,
		ParentID:  rec.ParentID,
		CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Scene:     rec.Scene,
	}
	for _, e := range versionLog(st.DB(), versionID) {
		out.Log = append(out.Log, logDetail{
			Source:    e.Source,
			PatchJSON: e.PatchJSON,
			Summary:   e.Summary,
			CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Version: %s\n", out.VersionID)
	fmt.Printf("Parent:  %s\n", orDash(out.ParentID))
	fmt.Printf("Created: %s\n", out.CreatedAt)
	fmt.Printf("\n%s\n", scene.StateBlock("SCENE_STATE", rec.Scene))

	if len(out.Log) > 0 {
		fmt.Printf("\nExtraction log:\n")
		for _, e := range out.Log {
			fmt.Printf("  [%s] %s\n", e.Source, e.CreatedAt)
			if e.Summary != "" {
				fmt.Printf("    %s\n", e.Summary)
			}
		}
	}
	return nil
}

// versionLog filters the extraction log down to one version.
func versionLog(db *sql.DB, versionID string) []logging.ExtractionEntry {
	entries, err := logging.ListExtractions(db, 1000)
	if err != nil {
		return nil
	}
	var out []logging.ExtractionEntry
	for _, e := range entries {
		if e.VersionID == versionID {
			out = append(out, e)
		}
	}
	return out
}

// #endregion detail-mode

// #region log-mode

func runLogMode(st *store.Store, last int, jsonOut bool) error {
	entries, err := logging.ListExtractions(st.DB(), last)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "no extraction log entries found")
		return nil
	}

	if jsonOut {
		rows := make([]logDetail, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, logDetail{
				Source:    e.Source,
				PatchJSON: e.PatchJSON,
				Summary:   e.Summary,
				CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z"),
			})
		}
		return printJSON(rows)
	}

	fmt.Printf("%-10s %-10s %-22s %s\n", "Version", "Source", "Time", "Summary")
	for _, e := range entries {
		summary := e.Summary
		if summary == "" {
			summary = "—"
		}
		fmt.Printf("%-10s %-10s %-22s %s\n",
			shortID(e.VersionID), e.Source,
			e.CreatedAt.Format("2006-01-02T15:04:05Z"), summary)
	}
	return nil
}

// #endregion log-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// #endregion output
