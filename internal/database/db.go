package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/config"
)

// DB wraps the sql handle so the open/close lifecycle stays explicit:
// opened once at startup, closed on shutdown, injected everywhere else.
type DB struct {
	conn   *sql.DB
	driver string
}

// Open connects to the configured database engine and verifies the
// connection with a ping.
func Open(cfg config.Config) (*DB, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch cfg.DBDriver {
	case "postgres":
		connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
		conn, err = sql.Open("postgres", connStr)
	case "sqlite":
		conn, err = sql.Open("sqlite", cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.DBMaxOpenConns)
	conn.SetMaxIdleConns(cfg.DBMaxIdleConns)
	conn.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleMinutes) * time.Minute)
	conn.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeMinutes) * time.Minute)

	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{conn: conn, driver: cfg.DBDriver}, nil
}

// FromConn wraps an already-open connection. Used by tests to inject a
// mock database.
func FromConn(conn *sql.DB, driver string) *DB {
	return &DB{conn: conn, driver: driver}
}

// Conn exposes the underlying handle.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Driver reports which engine the handle was opened against.
func (db *DB) Driver() string {
	return db.driver
}

// Stats reports connection pool statistics.
func (db *DB) Stats() sql.DBStats {
	return db.conn.Stats()
}

// Ping checks connection liveness.
func (db *DB) Ping() error {
	return db.conn.Ping()
}

// Close releases the connection pool.
func (db *DB) Close() error {
	if db == nil || db.conn == nil {
		return nil
	}
	return db.conn.Close()
}
