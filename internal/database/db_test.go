package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func TestWithFoundRowsRewritesDSN(t *testing.T) {
	out, err := withFoundRows("user:pass@tcp(localhost:3306)/chirp?parseTime=true")
	if err != nil {
		t.Fatalf("rewrite dsn: %v", err)
	}

	cfg, err := mysql.ParseDSN(out)
	if err != nil {
		t.Fatalf("parse rewritten dsn: %v", err)
	}
	if !cfg.ClientFoundRows {
		t.Fatal("expected clientFoundRows to be set")
	}
	if !cfg.ParseTime {
		t.Fatal("existing DSN params must survive the rewrite")
	}
	if cfg.DBName != "chirp" {
		t.Fatalf("unexpected db name %q", cfg.DBName)
	}
}

func TestRunMigrationsAppliesFilesInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	dir := t.TempDir()
	write := func(name, stmt string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(stmt), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("002_second.sql", "CREATE TABLE second (id INT)")
	write("001_first.sql", "CREATE TABLE first (id INT)")

	mock.ExpectExec("CREATE TABLE first.*").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE second.*").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := RunMigrations(db, dir); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRunMigrationsMissingDirIsFine(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	if err := RunMigrations(db, filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Fatalf("expected no error for missing dir, got %v", err)
	}
}
