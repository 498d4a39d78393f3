package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/models"
)

// CreateUser persists a new account and returns its id. The username is
// checked before the insert, but the unique constraint can still race, so
// constraint violations also map to ErrDuplicateUser.
func (s *Store) CreateUser(username, passwordHash string) (int, error) {
	var existing int
	err := s.db.Conn().QueryRow(`SELECT id FROM users WHERE username = $1`, username).Scan(&existing)
	if err == nil {
		return 0, ErrDuplicateUser
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("lookup user: %w", err)
	}

	var id int
	err = s.db.Conn().
		QueryRow(`INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id`, username, passwordHash).
		Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateUser
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}

// UserByUsername loads an account for credential verification.
func (s *Store) UserByUsername(username string) (models.User, error) {
	var user models.User
	err := s.db.Conn().
		QueryRow(`SELECT id, username, password_hash FROM users WHERE username = $1`, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err == sql.ErrNoRows {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("query user: %w", err)
	}
	return user, nil
}

// CountUsers reports the total number of accounts.
func (s *Store) CountUsers() (int64, error) {
	var total int64
	if err := s.db.Conn().QueryRow(`SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}

// isUniqueViolation matches the duplicate-key error text of both
// supported drivers.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || // lib/pq
		strings.Contains(msg, "UNIQUE constraint failed") // sqlite
}
