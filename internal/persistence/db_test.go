package persistence

import (
	"database/sql"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/talgya/hexregions/internal/world"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func generate(t *testing.T, seed int64) *world.Map {
	t.Helper()
	cfg := world.DefaultGenConfig()
	cfg.Seed = seed
	m, err := world.Generate(cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return m
}

func TestRecordAndGetRun(t *testing.T) {
	db := openTestDB(t)
	m := generate(t, 314)

	run, err := db.RecordRun(m)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if run.ID == "" {
		t.Fatalf("expected a run id")
	}

	got, err := db.GetRun(run.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != run {
		t.Fatalf("expected %+v, got %+v", run, got)
	}

	counts, err := got.TerrainCounts()
	if err != nil {
		t.Fatalf("terrain counts: %v", err)
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != m.HexCount() {
		t.Fatalf("expected counts to sum to %d, got %d", m.HexCount(), total)
	}

	last, err := db.GetMeta("last_run")
	if err != nil || last != run.ID {
		t.Fatalf("expected last_run %s, got %q (%v)", run.ID, last, err)
	}
}

func TestRunRegeneratesSameMap(t *testing.T) {
	db := openTestDB(t)
	m := generate(t, 9001)
	run, err := db.RecordRun(m)
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	again, err := world.Generate(run.GenConfig(1))
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if !reflect.DeepEqual(again.Terrain, m.Terrain) || !reflect.DeepEqual(again.Regions, m.Regions) {
		t.Fatalf("ledger entry did not reproduce the map")
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	db := openTestDB(t)
	var ids []string
	for seed := int64(1); seed <= 3; seed++ {
		run, err := db.RecordRun(generate(t, seed))
		if err != nil {
			t.Fatalf("record: %v", err)
		}
		ids = append(ids, run.ID)
	}

	runs, err := db.RecentRuns(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != ids[2] || runs[1].ID != ids[1] {
		t.Fatalf("expected %s then %s, got %s then %s", ids[2], ids[1], runs[0].ID, runs[1].ID)
	}
}

func TestGetRunMissing(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.GetRun("missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestMetaRoundTrip(t *testing.T) {
	db := openTestDB(t)
	if err := db.SaveMeta("note", "first"); err != nil {
		t.Fatalf("save meta: %v", err)
	}
	if err := db.SaveMeta("note", "second"); err != nil {
		t.Fatalf("save meta: %v", err)
	}
	v, err := db.GetMeta("note")
	if err != nil || v != "second" {
		t.Fatalf("expected second, got %q (%v)", v, err)
	}
}
