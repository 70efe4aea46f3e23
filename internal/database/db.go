package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

// Connect opens the MySQL pool and verifies it with a ping.
func Connect(dsn string) (*sql.DB, error) {
	dsn, err := withFoundRows(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	logrus.Info("mysql connected")
	return db, nil
}

// withFoundRows rewrites the DSN so UPDATE reports matched rows rather
// than changed rows. Without it an update that re-sends identical text
// affects zero rows and is indistinguishable from a missing id.
func withFoundRows(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	cfg.ClientFoundRows = true
	return cfg.FormatDSN(), nil
}

// RunMigrations executes every .sql file in migrationsDir in sorted
// order, one statement per file. A missing or empty directory is fine.
func RunMigrations(db *sql.DB, migrationsDir string) error {
	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	// ensure files run in order: 001 -> 002 -> 003
	sort.Strings(files)

	for _, file := range files {
		if err := applyMigration(db, file); err != nil {
			return err
		}
		logrus.Infof("migration applied: %s", file)
	}

	return nil
}

func applyMigration(db *sql.DB, file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read migration %s: %w", file, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, string(b)); err != nil {
		return fmt.Errorf("migration %s failed: %w", file, err)
	}
	return nil
}
