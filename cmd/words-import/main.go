// cmd/words-import
//
// Bulk-imports a newline-delimited word list into the corpus database.
// Words shorter than four letters or containing anything outside a-z are
// dropped, everything else is lowercased; duplicate rows are ignored, so
// re-running an import is harmless.

package main

import (
	"bufio"
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lettergrid/beehive/internal/corpus"
	"github.com/lettergrid/beehive/internal/storage"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(envOr("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var (
		file  = flag.String("file", "", "word list file, one word per line (default: embedded dev list)")
		dbdsn = flag.String("db", envOr("DATABASE_PATH", "./data/beehive.db"), "SQLite database path")
		batch = flag.Int("batch", 1000, "insert batch size")
	)
	flag.Parse()

	db, err := storage.Open(*dbdsn)
	if err != nil {
		log.Fatal().Err(err).Str("db", *dbdsn).Msg("failed to open database")
	}
	if err := storage.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	store := corpus.NewStore(db)

	lines, err := readLines(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("failed to read word list")
	}

	ctx := context.Background()
	pending := make([]string, 0, *batch)
	var imported, skipped int
	for _, line := range lines {
		word, ok := corpus.Normalize(line)
		if !ok {
			skipped++
			continue
		}
		pending = append(pending, word)
		if len(pending) == *batch {
			if err := store.AddWords(ctx, pending); err != nil {
				log.Fatal().Err(err).Msg("failed to insert word batch")
			}
			imported += len(pending)
			pending = pending[:0]
			log.Info().Int("imported", imported).Msg("progress")
		}
	}
	if len(pending) > 0 {
		if err := store.AddWords(ctx, pending); err != nil {
			log.Fatal().Err(err).Msg("failed to insert word batch")
		}
		imported += len(pending)
	}

	total, err := store.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to count words")
	}
	log.Info().Int("imported", imported).Int("skipped", skipped).Int("total", total).Msg("done")
}

func readLines(path string) ([]string, error) {
	if path == "" {
		return corpus.DefaultWords(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
