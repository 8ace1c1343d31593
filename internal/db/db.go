package db

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/sukalov/lyricsfmt/internal/utils"
)

// Store keeps a record of processing runs in a libsql database.
type Store struct {
	database *sql.DB
}

// Open connects using TURSO_DATABASE_URL and TURSO_AUTH_TOKEN from the
// environment and makes sure the history table exists.
func Open() (*Store, error) {
	env, err := utils.LoadEnv([]string{"TURSO_DATABASE_URL", "TURSO_AUTH_TOKEN"})
	if err != nil {
		return nil, fmt.Errorf("failed to load db env: %w", err)
	}
	url := fmt.Sprintf("%s?authToken=%s", env["TURSO_DATABASE_URL"], env["TURSO_AUTH_TOKEN"])

	database, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	database.SetMaxOpenConns(25)
	database.SetMaxIdleConns(25)
	database.SetConnMaxLifetime(5 * time.Minute)

	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &Store{database: database}
	if err := store.migrate(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) migrate() error {
	_, err := s.database.Exec(`CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		chat_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		input_lines INTEGER NOT NULL,
		output_lines INTEGER NOT NULL,
		max_line_length INTEGER NOT NULL,
		processed_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}
	return nil
}

// Close closes the database connection safely.
func (s *Store) Close() {
	if s.database != nil {
		if err := s.database.Close(); err != nil {
			log.Printf("error closing database: %v", err)
		}
	}
}
