// Package main is the entry point for DungeonEscape.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonescape/internal/game"
	"github.com/samdwyer/dungeonescape/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg := configFromEnv()

	levels := flag.String("levels", strings.Join(cfg.Levels, ","), "Comma-separated level files (default: bundled levels)")
	noMonsters := flag.Bool("no-monsters", !cfg.Monsters, "Keep monsters from moving")
	dump := flag.Bool("dump", false, "Print the first level's layout and exit")
	flag.Parse()

	cfg.Levels = splitList(*levels)
	cfg.Monsters = !*noMonsters

	ctx := context.Background()

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	if *dump {
		if err := dumpFirstLevel(ctx, cfg); err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
		return
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}

	s := g.Session()
	fmt.Printf("%s after %d turns on level %d with %d treasure.\n",
		s.State(), s.Turns(), s.Level(), s.Player().Treasure)
}

// configFromEnv reads DUNGEON_* variables on top of the defaults.
func configFromEnv() game.Config {
	cfg := game.DefaultConfig()
	cfg.Levels = splitList(os.Getenv("DUNGEON_LEVELS"))

	if v := os.Getenv("DUNGEON_MONSTERS"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("Note: ignoring DUNGEON_MONSTERS=%q: %v", v, err)
		} else {
			cfg.Monsters = enabled
		}
	}
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// dumpFirstLevel loads the first configured level and prints its tiles.
func dumpFirstLevel(ctx context.Context, cfg game.Config) error {
	src := game.LevelsFromConfig(cfg)
	if src.Len() == 0 {
		return game.ErrNoLevels
	}
	lvl, err := src.Open(ctx, 0)
	if err != nil {
		return err
	}
	defer lvl.Grid.Release()

	fmt.Printf("%d %d\n%d %d\n", lvl.Grid.Rows(), lvl.Grid.Cols(), lvl.Spawn.Row, lvl.Spawn.Col)
	_, err = lvl.Grid.WriteTo(os.Stdout)
	return err
}

// setupOTelEnv maps our Honeycomb variables onto the standard OTEL_* ones and
// reports whether an exporter should be started.
func setupOTelEnv() bool {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return true
	}

	apiKey := os.Getenv("HONEYCOMB_DUNGEONESCAPE_API_KEY")
	if apiKey == "" {
		return false
	}
	dataset := os.Getenv("HONEYCOMB_DUNGEONESCAPE_DATASET")
	if dataset == "" {
		dataset = "dungeonescape"
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
