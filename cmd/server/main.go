package main

import (
	"database/sql"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/lettergrid/beehive/internal/corpus"
	"github.com/lettergrid/beehive/internal/daily"
	"github.com/lettergrid/beehive/internal/generator"
	"github.com/lettergrid/beehive/internal/httpserver"
	"github.com/lettergrid/beehive/internal/storage"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	db, err := storage.Open(getEnv("DATABASE_PATH", "./data/beehive.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := storage.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	if err := seedAdmin(db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}

	store := corpus.NewStore(db)

	// Generation defaults to the database corpus; WORDS_FILE switches it to
	// an in-memory word list (management endpoints stay database-backed).
	var lex corpus.Lexicon = store
	if path := os.Getenv("WORDS_FILE"); path != "" {
		mem, err := corpus.LoadMemory(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to load word list")
		}
		log.Info().Int("words", mem.Len()).Str("path", path).Msg("generating from in-memory corpus")
		lex = mem
	}

	puzzles := daily.NewProvider(generator.New(lex).Generate)
	srv := httpserver.New(puzzles, store, db)

	port := getEnv("PORT", "3000")
	log.Info().Str("port", port).Msg("starting beehive server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// seedAdmin creates the management account from ADMIN_USERNAME and
// ADMIN_PASSWORD if it does not exist yet. Without both set, the management
// API stays locked (no account to log in with).
func seedAdmin(db *sql.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Warn().Msg("ADMIN_USERNAME/ADMIN_PASSWORD unset, word management disabled")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = db.Exec(
		`INSERT OR IGNORE INTO admins (username, password_hash, created_at) VALUES (?,?,?)`,
		username, string(hash), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
