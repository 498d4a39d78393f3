// Package store is the persistence layer for users and tarefas. It owns
// every SQL statement in the application; handlers only see typed records
// and the sentinel errors below.
package store

import (
	"errors"

	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/database"
)

var (
	// ErrDuplicateUser is returned when a username is already taken.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrUserNotFound is returned when no account matches a username.
	ErrUserNotFound = errors.New("user not found")
	// ErrTaskNotFound is returned when no tarefa matches an id.
	ErrTaskNotFound = errors.New("tarefa not found")
)

// Store runs queries against an injected database handle.
type Store struct {
	db *database.DB
}

// New builds a Store around an open handle.
func New(db *database.DB) *Store {
	return &Store{db: db}
}
