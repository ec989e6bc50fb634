package repository

import (
	"database/sql"
	"errors"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/limbo/goalkeeper/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies every embedded migration that db has not seen yet.
func RunMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.New("setting goose dialect error: " + err.Error())
	}
	if err := goose.Up(db, "."); err != nil {
		return errors.New("running migrations error: " + err.Error())
	}
	slog.Info("migrations completed successfully")
	return nil
}

// MigrateConnString opens a short-lived database/sql connection through the
// pgx driver and migrates it.
func MigrateConnString(connStr string) error {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return errors.New("opening migrations connection error: " + err.Error())
	}
	defer db.Close()
	return RunMigrations(db)
}
