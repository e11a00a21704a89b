package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"bookproject/internal/config"
	"bookproject/internal/platform/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	config.LoadEnvFiles()
	logging.Setup(os.Getenv("LOG_LEVEL"))

	if err := run(*command, *name); err != nil {
		slog.Error("migrate failed", "command", *command, "error", err)
		os.Exit(1)
	}
}

func run(command, name string) error {
	dir := migrationsDir()
	if command == "create" {
		if name == "" {
			return errMissingName
		}
		if err := goose.Create(nil, dir, name, "sql"); err != nil {
			return err
		}
		slog.Info("migration created", "name", name, "dir", dir)
		return nil
	}

	dsn := databaseDSN()
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	slog.Info("running migrations", "command", command, "dir", dir, "db", config.RedactDSN(dsn))
	switch command {
	case "up":
		err = goose.UpContext(ctx, db, dir)
	case "down":
		err = goose.DownContext(ctx, db, dir)
	case "status":
		err = goose.StatusContext(ctx, db, dir)
	default:
		return errUnknownCommand(command)
	}
	if err != nil {
		return err
	}
	slog.Info("migrations done", "command", command)
	return nil
}
