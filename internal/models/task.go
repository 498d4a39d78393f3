package models

// Task is a tarefa record. Titulo and Descricao are nullable columns and
// marshal as null when unset, matching what clients already expect.
type Task struct {
	ID        int     `json:"id"`
	Titulo    *string `json:"titulo"`
	Descricao *string `json:"descricao"`
	Status    string  `json:"status"`
}

// DefaultStatus is assigned when a task is created without one.
const DefaultStatus = "pendente"
