package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/watchearn/watchearn/internal/config"
)

// Applies every *.up.sql migration in lexical order, or a single named one
// when a name is given as the first argument.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DatabaseURL())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	basePath := filepath.Join(".", "internal", "adapters", "repository", "postgres", "migrations")

	var only string
	if len(os.Args) > 1 {
		only = os.Args[1]
	}

	applied, err := applyMigrations(db, basePath, only)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d migration(s) executed successfully.\n", applied)
}

func applyMigrations(db *sql.DB, basePath, only string) (int, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	applied := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}
		if only != "" && !strings.Contains(entry.Name(), only) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(basePath, entry.Name()))
		if err != nil {
			return applied, fmt.Errorf("failed to read migration %s: %w", entry.Name(), err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return applied, fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
		applied++
	}

	if only != "" && applied == 0 {
		return 0, fmt.Errorf("migration file not found: %s", only)
	}

	return applied, nil
}
