package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"

	"github.com/rajshah0904/Liquicity-sub002/internal/config"
	"github.com/rajshah0904/Liquicity-sub002/internal/database"
)

const usage = `usage: migrate [-path db/migrations] <command>

commands:
  up            apply all pending migrations
  down [-steps] revert the given number of migrations (default 1)
  version       print the current schema version
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("migration error", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	path := fs.String("path", "db/migrations", "directory holding the SQL migrations")
	steps := fs.Int("steps", 1, "number of migrations to revert with down")
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one command")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	runner := database.NewMigrationRunner(db).WithPath(*path)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return err
	}

	switch command := fs.Arg(0); command {
	case "up":
		return runner.RunMigrations()
	case "down":
		if err := runner.RollbackMigrations(*steps); err != nil {
			return err
		}
		slog.Info("rolled back migrations", "steps", *steps)
		return nil
	case "version":
		version, dirty, err := runner.GetMigrationStatus()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("version %d (dirty: %t)\n", version, dirty)
		return nil
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}
