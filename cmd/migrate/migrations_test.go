package main

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pressly/goose/v3"
)

// testMigrationsDir resolves db/migrations from cmd/migrate.
func testMigrationsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "db", "migrations")
}

func TestCollectMigrations_StartsWithInit(t *testing.T) {
	migrations, err := goose.CollectMigrations(testMigrationsDir(t), 0, goose.MaxVersion)
	if err != nil {
		t.Fatalf("collect migrations: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatal("no migrations found")
	}
	if got := filepath.Base(migrations[0].Source); got != "00001_init.sql" {
		t.Fatalf("first migration = %s, want 00001_init.sql", got)
	}
	if migrations[0].Version != 1 {
		t.Fatalf("first version = %d, want 1", migrations[0].Version)
	}
}
