package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"approvals/internal/config"
	"approvals/internal/database"
	"approvals/internal/logger"

	"github.com/golang-migrate/migrate/v4"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(os.Args[1:]); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: migrate <up|down|version> [N]")
	}

	// Loads .env so DB_* settings are visible to database.NewConfig.
	if _, err := config.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.Named("migrate")

	return database.Migrate(database.NewConfig(), func(m *migrate.Migrate) error {
		switch command := args[0]; command {
		case "up":
			if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("migration up failed: %w", err)
			}
			log.Info("Migrations applied successfully")

		case "down":
			steps := 1
			if len(args) > 1 {
				n, err := strconv.Atoi(args[1])
				if err != nil || n < 1 {
					return fmt.Errorf("invalid step count: %q", args[1])
				}
				steps = n
			}
			if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("migration down failed: %w", err)
			}
			log.Infof("Rolled back %d migration(s)", steps)

		case "version":
			version, dirty, err := m.Version()
			if err != nil {
				return fmt.Errorf("failed to get version: %w", err)
			}
			log.Infof("Version: %d, Dirty: %v", version, dirty)

		default:
			return fmt.Errorf("unknown command: %s (use up, down, or version)", command)
		}
		return nil
	})
}
