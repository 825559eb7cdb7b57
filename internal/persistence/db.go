// Package persistence provides a SQLite ledger of generation runs.
// Maps are deterministic from their seed and config, so a run records only
// those plus a summary; hexes are never stored.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hexregions/internal/world"
)

// DB wraps a SQLite connection for the run ledger.
type DB struct {
	conn *sqlx.DB
}

// Run is one recorded map generation.
type Run struct {
	ID           string `db:"id" json:"id"`
	Seed         int64  `db:"seed" json:"seed"`
	Width        int    `db:"width" json:"width"`
	Height       int    `db:"height" json:"height"`
	Regions      int    `db:"regions" json:"regions"`
	Passes       int    `db:"passes" json:"passes"`
	EmptyRegions int    `db:"empty_regions" json:"empty_regions"`
	TerrainJSON  string `db:"terrain_json" json:"-"`
	CreatedUnix  int64  `db:"created_unix" json:"-"`
}

// CreatedAt returns when the run was recorded.
func (r Run) CreatedAt() time.Time {
	return time.Unix(r.CreatedUnix, 0)
}

// TerrainCounts decodes the per-terrain hex counts.
func (r Run) TerrainCounts() (map[string]int, error) {
	counts := make(map[string]int)
	if err := json.Unmarshal([]byte(r.TerrainJSON), &counts); err != nil {
		return nil, fmt.Errorf("decode terrain counts for run %s: %w", r.ID, err)
	}
	return counts, nil
}

// GenConfig returns the parameters that regenerate this run's map.
func (r Run) GenConfig(variants int) world.GenConfig {
	return world.GenConfig{
		Width:    r.Width,
		Height:   r.Height,
		Regions:  r.Regions,
		Passes:   r.Passes,
		Seed:     r.Seed,
		Variants: variants,
	}
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		regions INTEGER NOT NULL,
		passes INTEGER NOT NULL,
		empty_regions INTEGER NOT NULL,
		terrain_json TEXT NOT NULL,
		created_unix INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS ledger_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_unix);
	CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(seed);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// RecordRun stores a summary of m and returns the stored run.
func (db *DB) RecordRun(m *world.Map) (Run, error) {
	counts := make(map[string]int)
	for t, c := range world.TerrainCounts(m) {
		counts[t.String()] = c
	}
	terrainJSON, err := json.Marshal(counts)
	if err != nil {
		return Run{}, fmt.Errorf("encode terrain counts: %w", err)
	}

	run := Run{
		ID:           uuid.NewString(),
		Seed:         m.Seed,
		Width:        m.Grid.Width(),
		Height:       m.Grid.Height(),
		Regions:      m.Regions.NumRegions,
		Passes:       m.Passes,
		EmptyRegions: m.Regions.EmptyRegions(),
		TerrainJSON:  string(terrainJSON),
		CreatedUnix:  time.Now().Unix(),
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return Run{}, err
	}
	defer tx.Rollback()

	_, err = tx.NamedExec(`INSERT INTO runs
		(id, seed, width, height, regions, passes, empty_regions, terrain_json, created_unix)
		VALUES (:id, :seed, :width, :height, :regions, :passes, :empty_regions, :terrain_json, :created_unix)`,
		run,
	)
	if err != nil {
		return Run{}, fmt.Errorf("insert run %s: %w", run.ID, err)
	}
	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO ledger_meta (key, value) VALUES (?, ?)",
		"last_run", run.ID,
	); err != nil {
		return Run{}, fmt.Errorf("save meta: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Run{}, err
	}

	slog.Info("run recorded", "id", run.ID, "seed", run.Seed, "empty_regions", run.EmptyRegions)
	return run, nil
}

// GetRun loads a run by id.
func (db *DB) GetRun(id string) (Run, error) {
	var run Run
	err := db.conn.Get(&run, "SELECT * FROM runs WHERE id = ?", id)
	if err != nil {
		return Run{}, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, nil
}

// RecentRuns returns the most recent N runs, newest first.
func (db *DB) RecentRuns(limit int) ([]Run, error) {
	var runs []Run
	err := db.conn.Select(&runs,
		"SELECT * FROM runs ORDER BY created_unix DESC, rowid DESC LIMIT ?",
		limit,
	)
	return runs, err
}

// SaveMeta stores a key-value pair in ledger metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO ledger_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM ledger_meta WHERE key = ?", key)
	return value, err
}
