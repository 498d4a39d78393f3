package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/config"
	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/database"
	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/handlers"
	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/middleware"
	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/monitoring"
	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/store"
	"github.com/jacksonrcmachado/ldm-CRUD-Tarefas/internal/utils"
)

func main() {
	startedAt := time.Now()
	cfg := config.Load()

	if cfg.AuthEnabled {
		if err := utils.EnsureJWTReady(); err != nil {
			log.Fatal("JWT configuration error: ", err)
		}
	} else {
		log.Println("AUTH_ENABLED=false: task routes are open")
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer db.Close()
	log.Printf("Connected to %s database", cfg.DBDriver)

	if err := db.CreateTables(); err != nil {
		log.Fatal("Failed to create tables: ", err)
	}

	st := store.New(db)
	monitor := monitoring.NewService(startedAt, db, st)
	h := handlers.New(st, monitor)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(monitoring.RequestMetricsMiddleware())

	handlers.RegisterRoutes(router, h, cfg.AuthEnabled, cfg.StaticDir)

	log.Printf("Tarefas API starting on %s", cfg.ServerAddr)
	if err := router.Run(cfg.ServerAddr); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
