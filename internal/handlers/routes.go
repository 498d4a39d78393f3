package handlers

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/middleware"
)

// RegisterRoutes wires all endpoints. When authEnabled is false the task
// routes are exposed without the bearer-token gate (open deployment).
func RegisterRoutes(router *gin.Engine, h *Handler, authEnabled bool, staticDir string) {
	router.GET("/health", h.HealthCheck)
	router.GET("/api/status", h.Status)

	if staticDir != "" {
		router.StaticFile("/", filepath.Join(staticDir, "index.html"))
		router.Static("/static", staticDir)
	}

	router.POST("/register", h.Register)
	router.POST("/login", h.Login)

	tarefas := router.Group("/tarefas")
	if authEnabled {
		tarefas.Use(middleware.AuthRequired())
	}
	tarefas.GET("", h.ListTasks)
	tarefas.POST("", h.CreateTask)
	tarefas.GET("/:id", h.GetTask)
	tarefas.PUT("/:id", h.UpdateTask)
	tarefas.DELETE("/:id", h.DeleteTask)
}
