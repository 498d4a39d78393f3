package database

import "fmt"

// CreateTables creates all required tables when they are absent. DDL is
// per-dialect because the auto-increment syntax differs.
func (db *DB) CreateTables() error {
	if err := db.createUsersTable(); err != nil {
		return err
	}
	return db.createTarefasTable()
}

func (db *DB) createUsersTable() error {
	var query string
	switch db.driver {
	case "sqlite":
		query = `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL
	);
	`
	default:
		query = `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(80) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL
	);
	`
	}

	if _, err := db.conn.Exec(query); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (db *DB) createTarefasTable() error {
	var query string
	switch db.driver {
	case "sqlite":
		query = `
	CREATE TABLE IF NOT EXISTS tarefas (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		titulo TEXT,
		descricao TEXT,
		status TEXT NOT NULL DEFAULT 'pendente'
	);
	`
	default:
		query = `
	CREATE TABLE IF NOT EXISTS tarefas (
		id SERIAL PRIMARY KEY,
		titulo VARCHAR(120),
		descricao VARCHAR(255),
		status VARCHAR(50) NOT NULL DEFAULT 'pendente'
	);
	`
	}

	if _, err := db.conn.Exec(query); err != nil {
		return fmt.Errorf("create tarefas table: %w", err)
	}
	return nil
}
