package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/scene-state/go-engine/internal/scene"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS scene_versions (
	version_id  TEXT PRIMARY KEY,
	parent_id   TEXT,
	date_time   TEXT NOT NULL DEFAULT '',
	place       TEXT NOT NULL DEFAULT '',
	mood        TEXT NOT NULL DEFAULT '',
	weather     TEXT NOT NULL DEFAULT '',
	notes       TEXT NOT NULL DEFAULT '',
	created_at  TEXT NOT NULL,
	FOREIGN KEY (parent_id) REFERENCES scene_versions(version_id)
);

CREATE TABLE IF NOT EXISTS extraction_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	version_id  TEXT NOT NULL,
	source      TEXT NOT NULL,
	patch_json  TEXT,
	summary     TEXT,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (version_id) REFERENCES scene_versions(version_id)
);

CREATE TABLE IF NOT EXISTS active_scene (
	id          INTEGER PRIMARY KEY CHECK (id = 1),
	version_id  TEXT NOT NULL,
	FOREIGN KEY (version_id) REFERENCES scene_versions(version_id)
);
`
// #endregion schema

// #region store-struct
// Store manages versioned scene state in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion db-accessor

// #region create-initial
// CreateInitialScene creates an empty initial scene version and points the
// active pointer at it.
func (s *Store) CreateInitialScene() (SceneRecord, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	rec := SceneRecord{
		VersionID: id,
		ParentID:  "",
		Scene:     scene.State{},
		CreatedAt: now,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return SceneRecord{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO scene_versions (version_id, parent_id, date_time, place, mood, weather, notes, created_at)
		 VALUES (?, ?, '', '', '', '', '', ?)`,
		id, nil, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return SceneRecord{}, fmt.Errorf("insert version: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO active_scene (id, version_id) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET version_id = excluded.version_id`,
		id,
	)
	if err != nil {
		return SceneRecord{}, fmt.Errorf("set active: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return SceneRecord{}, fmt.Errorf("commit: %w", err)
	}

	return rec, nil
}
// #endregion create-initial

// #region get-current

// ErrNoActiveScene reports that the store holds no active scene yet. Any
// other GetCurrent error means the store is unreadable, not empty.
var ErrNoActiveScene = errors.New("no active scene")

// GetCurrent reads the active scene version.
func (s *Store) GetCurrent() (SceneRecord, error) {
	var versionID string
	err := s.db.QueryRow(`SELECT version_id FROM active_scene WHERE id = 1`).Scan(&versionID)
	if errors.Is(err, sql.ErrNoRows) {
		return SceneRecord{}, ErrNoActiveScene
	}
	if err != nil {
		return SceneRecord{}, fmt.Errorf("get active: %w", err)
	}
	return s.GetVersion(versionID)
}
// #endregion get-current

// #region get-version
// GetVersion retrieves a specific scene version by ID.
func (s *Store) GetVersion(id string) (SceneRecord, error) {
	var rec SceneRecord
	var parentID sql.NullString
	var createdStr string

	err := s.db.QueryRow(
		`SELECT version_id, parent_id, date_time, place, mood, weather, notes, created_at
		 FROM scene_versions WHERE version_id = ?`, id,
	).Scan(&rec.VersionID, &parentID,
		&rec.Scene.DateTime, &rec.Scene.Place, &rec.Scene.Mood,
		&rec.Scene.Weather, &rec.Scene.Notes, &createdStr)
	if err != nil {
		return SceneRecord{}, fmt.Errorf("get version %s: %w", id, err)
	}

	if parentID.Valid {
		rec.ParentID = parentID.String
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)

	return rec, nil
}
// #endregion get-version

// #region commit-scene
// CommitScene inserts a new version and updates the active pointer atomically.
func (s *Store) CommitScene(rec SceneRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var parentPtr interface{}
	if rec.ParentID != "" {
		parentPtr = rec.ParentID
	}

	_, err = tx.Exec(
		`INSERT INTO scene_versions (version_id, parent_id, date_time, place, mood, weather, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.VersionID, parentPtr,
		rec.Scene.DateTime, rec.Scene.Place, rec.Scene.Mood,
		rec.Scene.Weather, rec.Scene.Notes,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert version: %w", err)
	}

	_, err = tx.Exec(
		`UPDATE active_scene SET version_id = ? WHERE id = 1`, rec.VersionID,
	)
	if err != nil {
		return fmt.Errorf("update active: %w", err)
	}

	return tx.Commit()
}
// #endregion commit-scene

// #region rollback
// Rollback sets the active pointer to a previous version.
func (s *Store) Rollback(targetVersionID string) error {
	// Verify the target version exists
	var exists int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM scene_versions WHERE version_id = ?`, targetVersionID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check version: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("version %s not found", targetVersionID)
	}

	_, err = s.db.Exec(`UPDATE active_scene SET version_id = ? WHERE id = 1`, targetVersionID)
	if err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}
// #endregion rollback

// #region list-versions
// ListVersions returns the most recent scene versions.
func (s *Store) ListVersions(limit int) ([]SceneRecord, error) {
	rows, err := s.db.Query(
		`SELECT version_id, parent_id, date_time, place, mood, weather, notes, created_at
		 FROM scene_versions ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var records []SceneRecord
	for rows.Next() {
		var rec SceneRecord
		var parentID sql.NullString
		var createdStr string

		if err := rows.Scan(&rec.VersionID, &parentID,
			&rec.Scene.DateTime, &rec.Scene.Place, &rec.Scene.Mood,
			&rec.Scene.Weather, &rec.Scene.Notes, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if parentID.Valid {
			rec.ParentID = parentID.String
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}
// #endregion list-versions
