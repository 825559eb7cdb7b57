// Command mapgen partitions a hex grid into regions, assigns terrains, and
// prints the result as an ASCII map.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/talgya/hexregions/internal/config"
	"github.com/talgya/hexregions/internal/persistence"
	"github.com/talgya/hexregions/internal/render"
	"github.com/talgya/hexregions/internal/world"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults built in)")
	seedFlag := flag.Int64("seed", 0, "random seed, overrides config (0 = keep config)")
	dbPath := flag.String("db", "", "run ledger path, overrides config")
	history := flag.Int("history", 0, "list the N most recent runs and exit")
	showAdjacency := flag.Bool("adjacency", false, "print the region adjacency list")
	flag.Parse()

	// ── Config ────────────────────────────────────────────────────────
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seedFlag != 0 {
		cfg.Map.Seed = *seedFlag
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// ── Run Ledger ────────────────────────────────────────────────────
	var db *persistence.DB
	if cfg.Database.Path != "" {
		if dir := filepath.Dir(cfg.Database.Path); dir != "." {
			os.MkdirAll(dir, 0755)
		}
		db, err = persistence.Open(cfg.Database.Path)
		if err != nil {
			slog.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Debug("database opened", "path", cfg.Database.Path)
	}

	if *history > 0 {
		if db == nil {
			slog.Error("history needs a run ledger (-db or database.path)")
			os.Exit(1)
		}
		if err := printHistory(db, *history); err != nil {
			slog.Error("failed to list runs", "error", err)
			os.Exit(1)
		}
		return
	}

	// ── Generate ──────────────────────────────────────────────────────
	gc := cfg.GenConfig()
	m, err := world.Generate(gc)
	if err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("map generated",
		"size", fmt.Sprintf("%dx%d", gc.Width, gc.Height),
		"hexes", humanize.Comma(int64(m.HexCount())),
		"regions", gc.Regions,
		"empty_regions", m.Regions.EmptyRegions(),
		"seed", m.Seed,
	)
	for t, c := range world.TerrainCounts(m) {
		slog.Debug("terrain", "type", t, "count", c)
	}

	// ── Render ────────────────────────────────────────────────────────
	text := render.NewText(gc.Width, gc.Height)
	tally := render.NewTally()
	render.Draw(m, render.Multi{text, tally})
	fmt.Print(text.String())
	fmt.Println(render.Legend())
	slog.Info("tiles placed", "fills", m.HexCount(), "edges", tally.EdgeCount())

	if *showAdjacency {
		printAdjacency(m.Adjacency, m.RegionTerrain)
	}

	if db != nil {
		if _, err := db.RecordRun(m); err != nil {
			slog.Error("failed to record run", "error", err)
			os.Exit(1)
		}
	}
}

func printAdjacency(adj world.AdjacencyList, terrain []world.Terrain) {
	for r, neighbors := range adj {
		ids := make([]string, len(neighbors))
		for i, n := range neighbors {
			ids[i] = fmt.Sprint(n)
		}
		fmt.Printf("%d (%s): %s\n", r, terrain[r], strings.Join(ids, ","))
	}
}

func printHistory(db *persistence.DB, limit int) error {
	runs, err := db.RecentRuns(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}
	for _, r := range runs {
		fmt.Printf("%s  seed=%-20d %dx%d regions=%d empty=%d  %s\n",
			r.ID, r.Seed, r.Width, r.Height, r.Regions, r.EmptyRegions,
			humanize.Time(r.CreatedAt()))
	}
	return nil
}
