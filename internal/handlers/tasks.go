package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/models"
	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/store"
)

// optionalString records whether a JSON key was present at all, so an
// explicit null is distinguishable from an omitted field. encoding/json
// calls UnmarshalJSON even for a literal null on value-typed fields.
type optionalString struct {
	Set   bool
	Value *string
}

func (o *optionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// taskRequest is used for both create and partial update. An update only
// touches the keys the client sent; a key sent as null clears its column.
type taskRequest struct {
	Titulo    optionalString `json:"titulo"`
	Descricao optionalString `json:"descricao"`
	Status    optionalString `json:"status"`
}

func (r taskRequest) patch() store.TaskPatch {
	return store.TaskPatch{
		Titulo:    store.Field{Set: r.Titulo.Set, Value: r.Titulo.Value},
		Descricao: store.Field{Set: r.Descricao.Set, Value: r.Descricao.Value},
		Status:    store.Field{Set: r.Status.Set, Value: r.Status.Value},
	}
}

// ListTasks returns every tarefa in insertion order.
func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.store.ListTasks()
	if err != nil {
		log.Printf("Error listing tarefas: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao listar tarefas"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask persists a new tarefa and returns it with its assigned id.
// All fields are optional; an empty body creates a task with defaults.
func (h *Handler) CreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Corpo da requisição inválido"})
		return
	}

	status := models.DefaultStatus
	if req.Status.Value != nil {
		status = *req.Status.Value
	}

	task, err := h.store.CreateTask(req.Titulo.Value, req.Descricao.Value, status)
	if err != nil {
		log.Printf("Error creating tarefa: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao criar tarefa"})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTask returns a single tarefa by id.
func (h *Handler) GetTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.store.TaskByID(id)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Tarefa não encontrada"})
			return
		}
		log.Printf("Error fetching tarefa %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao buscar tarefa"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask applies the fields present in the body and returns the full
// updated record. Omitted fields keep their prior value.
func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Corpo da requisição inválido"})
		return
	}

	task, err := h.store.UpdateTask(id, req.patch())
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Tarefa não encontrada"})
			return
		}
		log.Printf("Error updating tarefa %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao atualizar tarefa"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a tarefa permanently.
func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteTask(id); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Tarefa não encontrada"})
			return
		}
		log.Printf("Error deleting tarefa %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao deletar tarefa"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Tarefa deletada com sucesso"})
}

// taskID rejects only non-numeric ids; 0 and negatives fall through to
// the lookup, which answers 404 like any other unknown id.
func taskID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "ID inválido"})
		return 0, false
	}
	return id, true
}
