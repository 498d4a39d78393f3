package store

import (
	"database/sql"
	"fmt"

	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/models"
)

// Field carries one optional update value. Set reports whether the
// client sent the field at all; Value may be nil to clear a nullable
// column. The distinction matters: an omitted field keeps its stored
// value, an explicit null erases it.
type Field struct {
	Set   bool
	Value *string
}

// TaskPatch carries a partial update: only fields with Set are applied.
type TaskPatch struct {
	Titulo    Field
	Descricao Field
	Status    Field
}

// ListTasks returns all tarefas in insertion order (ascending id).
func (s *Store) ListTasks() ([]models.Task, error) {
	rows, err := s.db.Conn().Query(`SELECT id, titulo, descricao, status FROM tarefas ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query tarefas: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tarefas: %w", err)
	}

	return tasks, nil
}

// CreateTask persists a new tarefa and returns it with its assigned id.
func (s *Store) CreateTask(titulo, descricao *string, status string) (models.Task, error) {
	var id int
	err := s.db.Conn().
		QueryRow(`INSERT INTO tarefas (titulo, descricao, status) VALUES ($1, $2, $3) RETURNING id`,
			titulo, descricao, status).
		Scan(&id)
	if err != nil {
		return models.Task{}, fmt.Errorf("insert tarefa: %w", err)
	}

	return models.Task{ID: id, Titulo: titulo, Descricao: descricao, Status: status}, nil
}

// TaskByID loads a single tarefa.
func (s *Store) TaskByID(id int) (models.Task, error) {
	row := s.db.Conn().QueryRow(`SELECT id, titulo, descricao, status FROM tarefas WHERE id = $1`, id)
	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask applies the set fields of patch to an existing tarefa and
// returns the full updated record. A set field with a nil value clears
// the column; status is NOT NULL, so a null status is ignored.
func (s *Store) UpdateTask(id int, patch TaskPatch) (models.Task, error) {
	task, err := s.TaskByID(id)
	if err != nil {
		return models.Task{}, err
	}

	if patch.Titulo.Set {
		task.Titulo = patch.Titulo.Value
	}
	if patch.Descricao.Set {
		task.Descricao = patch.Descricao.Value
	}
	if patch.Status.Set && patch.Status.Value != nil {
		task.Status = *patch.Status.Value
	}

	result, err := s.db.Conn().Exec(`UPDATE tarefas SET titulo = $1, descricao = $2, status = $3 WHERE id = $4`,
		task.Titulo, task.Descricao, task.Status, id)
	if err != nil {
		return models.Task{}, fmt.Errorf("update tarefa: %w", err)
	}

	// The row can vanish between the SELECT and the UPDATE.
	affected, err := result.RowsAffected()
	if err != nil {
		return models.Task{}, fmt.Errorf("update tarefa: %w", err)
	}
	if affected == 0 {
		return models.Task{}, ErrTaskNotFound
	}

	return task, nil
}

// DeleteTask removes a tarefa permanently.
func (s *Store) DeleteTask(id int) error {
	result, err := s.db.Conn().Exec(`DELETE FROM tarefas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tarefa: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete tarefa: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// CountTasks reports the total number of tarefas.
func (s *Store) CountTasks() (int64, error) {
	var total int64
	if err := s.db.Conn().QueryRow(`SELECT COUNT(*) FROM tarefas`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count tarefas: %w", err)
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		task      models.Task
		titulo    sql.NullString
		descricao sql.NullString
	)

	err := row.Scan(&task.ID, &titulo, &descricao, &task.Status)
	if err == sql.ErrNoRows {
		return models.Task{}, err
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("scan tarefa: %w", err)
	}

	if titulo.Valid {
		task.Titulo = &titulo.String
	}
	if descricao.Valid {
		task.Descricao = &descricao.String
	}

	return task, nil
}
