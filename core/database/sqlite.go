package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"meetpoll-api/core/constants"
	"meetpoll-api/core/logger"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type IDatabase interface {
	ExecContext(ctx context.Context, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	WithTransaction(ctx context.Context, fn TransactionFunc) error
	SQLx() *sqlx.DB
}

// TransactionFunc runs inside a database transaction. A returned error rolls
// the transaction back.
type TransactionFunc func(tx *sqlx.Tx) error

type Database struct {
	db   *sql.DB
	sqlx *sqlx.DB
}

type DatabaseConfig struct {
	Path string
}

func InitDB(config DatabaseConfig) (Database, error) {
	logger.Info("Initializing database...", "path", config.Path)

	// Pragmas ride on the DSN so that every pooled connection gets them;
	// foreign_keys and synchronous are per-connection settings.
	pragmas := fmt.Sprintf("_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(1)",
		constants.DatabaseBusyTimeout)
	dsn := config.Path + "?" + pragmas
	if config.Path == ":memory:" {
		dsn = "file::memory:?" + pragmas
	}

	sqlxDB, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		return Database{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB := sqlxDB.DB
	if config.Path == ":memory:" {
		// A shared pool over :memory: would hand each connection its own
		// empty database.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(constants.DatabaseMaxOpenConns)
		sqlDB.SetMaxIdleConns(constants.DatabaseMaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Duration(constants.DatabaseConnMaxLifetime) * time.Minute)
	}

	db := Database{
		db:   sqlDB,
		sqlx: sqlxDB,
	}

	if err := db.Migrate(context.Background()); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		return Database{}, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database initialized successfully", "path", config.Path)
	return db, nil
}

// Migrate creates the schema idempotently at startup.
func (d *Database) Migrate(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			creator TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS event_dates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			event_id TEXT,
			date TEXT NOT NULL,
			FOREIGN KEY (event_id) REFERENCES events(id)
		);

		CREATE TABLE IF NOT EXISTS event_time_slots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			event_id TEXT,
			time_slot TEXT NOT NULL,
			FOREIGN KEY (event_id) REFERENCES events(id)
		);

		CREATE TABLE IF NOT EXISTS responses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			event_id TEXT,
			participant_name TEXT NOT NULL,
			date TEXT NOT NULL,
			time_slot TEXT NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (event_id) REFERENCES events(id)
		);

		CREATE TABLE IF NOT EXISTS participant_passwords (
			event_id TEXT,
			participant_name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (event_id, participant_name),
			FOREIGN KEY (event_id) REFERENCES events(id)
		);
	`
	if _, err := d.db.ExecContext(ctx, schema); err != nil {
		return err
	}
	return nil
}

func (d *Database) ExecContext(ctx context.Context, query string, args ...any) error {
	_, err := d.sqlx.ExecContext(ctx, query, args...)
	return err
}

func (d *Database) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.sqlx.GetContext(ctx, dest, query, args...)
}

func (d *Database) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.sqlx.SelectContext(ctx, dest, query, args...)
}

func (d *Database) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return d.db.QueryRowContext(ctx, query, args...)
}

func (d *Database) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.db.QueryContext(ctx, query, args...)
}

// WithTransaction executes fn inside a transaction, rolling back on error or
// panic and committing otherwise.
func (d *Database) WithTransaction(ctx context.Context, fn TransactionFunc) error {
	tx, err := d.sqlx.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction failed (rollback error: %v): %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (d *Database) SQLx() *sqlx.DB {
	return d.sqlx
}

func (d *Database) Close() error {
	return d.sqlx.Close()
}
