// Package handlers contains the HTTP surface: registration, login and the
// tarefas CRUD operations.
package handlers

import (
	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/monitoring"
	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/store"
)

// Handler carries the injected collaborators; all endpoints hang off it.
type Handler struct {
	store   *store.Store
	monitor *monitoring.Service
}

func New(st *store.Store, monitor *monitoring.Service) *Handler {
	return &Handler{store: st, monitor: monitor}
}
